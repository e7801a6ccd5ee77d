// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"math"
	"math/big"
)

// maxFixBits is the largest precision RandFix can honor without rounding: a
// float64 carries 52 explicit fraction bits plus the implicit leading bit, so
// any integer below 2^53 scales to a multiple of 2^-53 exactly.
const maxFixBits = 53

// RandBits returns n random bits from the source, packed low-bit first with
// the unused high-order bits of the final byte zero.  It is the validated
// public form of the bit extractor.
func (s *Source) RandBits(n int) ([]byte, error) {
	return s.GetBits(n)
}

// RandInt returns a uniform random integer in [0, limit) for any limit > 0.
func (s *Source) RandInt(limit *big.Int) (*big.Int, error) {
	return s.GetInt(limit)
}

// RandProb returns a random index into weights, selecting index i with
// probability exactly weights[i] divided by the sum of all weights.
//
// The weights must be non-negative with at least one positive; otherwise the
// returned error has kind ErrInvalidArgument.  Selection proceeds by
// sequential elimination from the last index toward the first, so a single
// weighted boolean is drawn per rejected index and no summed draw ever
// exceeds the total weight.
func (s *Source) RandProb(weights []*big.Int) (int, error) {
	if len(weights) == 0 {
		return 0, makeError(ErrInvalidArgument, "empty weight sequence")
	}
	remaining := new(big.Int)
	for _, w := range weights {
		if w == nil || w.Sign() < 0 {
			return 0, makeError(ErrInvalidArgument, "negative weight")
		}
		remaining.Add(remaining, w)
	}
	if remaining.Sign() == 0 {
		return 0, makeError(ErrInvalidArgument, "all weights are zero")
	}
	for i := len(weights) - 1; ; i-- {
		remaining.Sub(remaining, weights[i])
		hit, err := s.GetBoolWeighted(remaining, weights[i])
		if err != nil {
			return 0, err
		}
		if hit {
			return i, nil
		}
	}
}

// RandFix returns a uniform random multiple of 2^-nbits in [0, 1).
//
// The fraction is assembled from chunks of at most 24 bits, each scaled by
// the appropriate negative power of two and summed, so that every partial sum
// stays within the exact integer range of a float64 and the result carries no
// rounding error.  nbits must be in [0, 53]; requesting more precision than a
// float64 can represent losslessly fails with kind ErrInvalidArgument.
func (s *Source) RandFix(nbits int) (float64, error) {
	if nbits < 0 || nbits > maxFixBits {
		return 0, makeError(ErrInvalidArgument, "precision out of range")
	}
	var f float64
	var shift int
	for nbits > 0 {
		c := nbits
		if c > 24 {
			c = 24
		}
		b, err := s.GetBits(c)
		if err != nil {
			return 0, err
		}
		var v uint32
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint32(b[i])
		}
		shift += c
		f += math.Ldexp(float64(v), -shift)
		nbits -= c
	}
	return f, nil
}

// Rand returns RandFix(48) scaled by limit, with a zero limit treated as one.
//
// It exists solely to reproduce the output distribution of the legacy 48-bit
// generators behind the classic rand interfaces, for drop-in replacement.
// New code should use RandFix or RandFloat instead.
func (s *Source) Rand(limit float64) (float64, error) {
	f, err := s.RandFix(48)
	if err != nil {
		return 0, err
	}
	if limit == 0 {
		limit = 1
	}
	return f * limit, nil
}

// Pick returns a uniformly chosen element of items.  An empty sequence fails
// with kind ErrInvalidArgument.
func Pick[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, makeError(ErrInvalidArgument, "empty sequence")
	}
	i, err := s.getIntN(int64(len(items)))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Choose returns k of the n input items as an exactly uniform random
// combination, preserving the relative input order.  A single forward scan
// keeps each remaining item with probability (still needed)/(still
// unscanned), which requires only constant extra state.  k outside [0, n]
// fails with kind ErrInvalidArgument.
func Choose[T any](s *Source, k int, items []T) ([]T, error) {
	if k < 0 || k > len(items) {
		return nil, makeError(ErrInvalidArgument, "choose count out of range")
	}
	out := make([]T, 0, k)
	toChoose := int64(k)
	unscanned := int64(len(items))
	for i := 0; toChoose > 0; i++ {
		keep, err := s.GetBoolWeighted(big.NewInt(unscanned-toChoose),
			big.NewInt(toChoose))
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, items[i])
			toChoose--
		}
		unscanned--
	}
	return out, nil
}

// Shuffle returns a uniformly random permutation of items as a new slice,
// leaving the input unmodified.  It is the Fisher-Yates shuffle driven by
// exact bounded draws.
func Shuffle[T any](s *Source, items []T) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)
	for i := int64(len(out)); i > 1; i-- {
		j, err := s.getIntN(i)
		if err != nil {
			return nil, err
		}
		out[i-1], out[j] = out[j], out[i-1]
	}
	return out, nil
}
