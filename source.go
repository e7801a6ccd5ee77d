// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"io"
	"math/big"
)

var bigOne = big.NewInt(1)

// Source buffers a raw octet provider into bit-addressable reads and builds
// unbiased values on top of them.  A Source exclusively owns its provider;
// reading from the provider elsewhere while a Source holds buffered bits
// loses those bits.
//
// Source methods are not safe for concurrent access.
type Source struct {
	r        io.Reader
	pool     byte
	poolBits uint8
}

// NewSource returns a Source drawing octets from the given provider.  The
// provider may be any reader: an entropy device, a cipher keystream, or a
// remote batch fetcher.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// GetBits returns n random bits packed low-bit first into a byte slice of
// length ceil(n/8).  When n is not a multiple of eight, the unused high-order
// bits of the final byte are zero.  Bits left over from the final octet are
// retained and served to subsequent calls, so from a byte-aligned state
// exactly ceil(n/8) octets are pulled from the provider.
//
// The returned error has kind ErrInvalidArgument when n is negative and kind
// ErrSourceFailure when the provider cannot supply the required octets.
func (s *Source) GetBits(n int) ([]byte, error) {
	if n < 0 {
		return nil, makeError(ErrInvalidArgument, "negative bit count")
	}

	var buf []byte
	if need := n - int(s.poolBits); need > 0 {
		buf = make([]byte, (need+7)/8)
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return nil, sourceError("provider cannot supply "+
				"requested octets", err)
		}
	}

	out := make([]byte, (n+7)/8)
	acc := uint32(s.pool)
	accBits := int(s.poolBits)
	bi := 0
	for i, remaining := 0, n; remaining > 0; i++ {
		take := remaining
		if take > 8 {
			take = 8
		}
		for accBits < take {
			acc |= uint32(buf[bi]) << accBits
			accBits += 8
			bi++
		}
		out[i] = byte(acc & (1<<take - 1))
		acc >>= take
		accBits -= take
		remaining -= take
	}
	s.pool = byte(acc)
	s.poolBits = uint8(accBits)
	return out, nil
}

// GetOctet returns eight random bits read as a single byte.
func (s *Source) GetOctet() (byte, error) {
	b, err := s.GetBits(8)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// bigFromBits interprets a GetBits result as an unsigned integer, low octet
// first.
func bigFromBits(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev)
}

// GetInt returns a uniform random integer in [0, limit) for any limit > 0.
//
// The value is produced by drawing ceil(log2(limit)) bits and redrawing
// whenever the result is limit or greater.  Rejected draws consume entropy
// but carry no information into the accepted draw, so the output is exactly
// uniform regardless of how many rejections occur; the expected number of
// draws is below two.
//
// The returned error has kind ErrInvalidArgument when limit is not positive
// and kind ErrSourceFailure when the provider fails.
func (s *Source) GetInt(limit *big.Int) (*big.Int, error) {
	if limit == nil || limit.Sign() <= 0 {
		return nil, makeError(ErrInvalidArgument, "limit must be positive")
	}
	k := new(big.Int).Sub(limit, bigOne).BitLen()
	for {
		b, err := s.GetBits(k)
		if err != nil {
			return nil, err
		}
		v := bigFromBits(b)
		if v.Cmp(limit) < 0 {
			return v, nil
		}
	}
}

// getIntN is a convenience form of GetInt for machine-width limits.  It is
// the same arbitrary-precision code path, not a separate sampler.
func (s *Source) getIntN(limit int64) (int64, error) {
	v, err := s.GetInt(big.NewInt(limit))
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// GetBoolWeighted returns true with probability exactly b/(a+b).  Both
// weights must be non-negative and at least one must be positive; weights of
// arbitrary magnitude are handled exactly.
func (s *Source) GetBoolWeighted(a, b *big.Int) (bool, error) {
	if a == nil || b == nil || a.Sign() < 0 || b.Sign() < 0 {
		return false, makeError(ErrInvalidArgument, "negative weight")
	}
	total := new(big.Int).Add(a, b)
	if total.Sign() == 0 {
		return false, makeError(ErrInvalidArgument, "both weights are zero")
	}
	v, err := s.GetInt(total)
	if err != nil {
		return false, err
	}
	return v.Cmp(b) < 0, nil
}
