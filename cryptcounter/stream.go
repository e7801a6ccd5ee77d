// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptcounter

import (
	"crypto/cipher"
	"io"
	"math/big"
)

// Stream reads the keystream of a block cipher driven in counter mode.  It
// implements io.Reader, io.ByteReader, io.ByteScanner, and io.Seeker.
//
// Stream methods are not safe for concurrent access.
type Stream struct {
	blk  cipher.Block
	size int

	ctr       []byte // little-endian block counter
	cache     []byte // keystream for ctr, nil when stale
	cur       int    // next octet within the block
	exhausted bool
}

// New returns a Stream positioned at the start of the keystream of blk, with
// an all-zero counter.  It panics if blk is nil or reports a non-positive
// block size.
func New(blk cipher.Block) *Stream {
	if blk == nil {
		panic("cryptcounter: nil cipher")
	}
	size := blk.BlockSize()
	if size <= 0 {
		panic("cryptcounter: cipher block size must be positive")
	}
	return &Stream{blk: blk, size: size, ctr: make([]byte, size)}
}

// BlockSize returns the block size of the underlying cipher.
func (s *Stream) BlockSize() int {
	return s.size
}

// block returns the keystream block for the current counter, encrypting it
// lazily.
func (s *Stream) block() []byte {
	if s.cache == nil {
		s.cache = make([]byte, s.size)
		s.blk.Encrypt(s.cache, s.ctr)
	}
	return s.cache
}

// inc advances the counter by one with carry across all bytes, reporting
// false on wraparound past the maximum counter value.
func (s *Stream) inc() bool {
	for i := range s.ctr {
		s.ctr[i]++
		if s.ctr[i] != 0 {
			return true
		}
	}
	return false
}

// dec steps the counter back by one with borrow across all bytes.  The
// counter must not be zero.
func (s *Stream) dec() {
	for i := range s.ctr {
		s.ctr[i]--
		if s.ctr[i] != 0xFF {
			return
		}
	}
}

// ctrZero reports whether the counter is all zero.
func (s *Stream) ctrZero() bool {
	for _, b := range s.ctr {
		if b != 0 {
			return false
		}
	}
	return true
}

// ReadByte returns the next keystream octet, or io.EOF once the counter
// space has been fully consumed.
func (s *Stream) ReadByte() (byte, error) {
	if s.exhausted {
		return 0, io.EOF
	}
	b := s.block()[s.cur]
	s.cur++
	if s.cur == s.size {
		s.cur = 0
		s.cache = nil
		if !s.inc() {
			s.exhausted = true
		}
	}
	return b, nil
}

// UnreadByte steps the stream back one octet, the exact inverse of ReadByte.
// Stepping back from the exhausted state restores the final octet position.
// Pushing back at the very start of the stream is a no-op.
func (s *Stream) UnreadByte() error {
	if s.exhausted {
		for i := range s.ctr {
			s.ctr[i] = 0xFF
		}
		s.cur = s.size - 1
		s.cache = nil
		s.exhausted = false
		return nil
	}
	if s.cur > 0 {
		s.cur--
		return nil
	}
	if s.ctrZero() {
		return nil
	}
	s.dec()
	s.cur = s.size - 1
	s.cache = nil
	return nil
}

// Read fills p with successive keystream octets, returning the count
// actually produced.  io.EOF is reported only when the stream is exhausted
// and no octets were produced.
func (s *Stream) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		b, err := s.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// sizeBig returns the total octet count of the stream,
// 2^(8*blockSize)*blockSize.
func (s *Stream) sizeBig() *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), uint(8*s.size))
	return n.Mul(n, big.NewInt(int64(s.size)))
}

// offset returns the current octet offset.
func (s *Stream) offset() *big.Int {
	if s.exhausted {
		return s.sizeBig()
	}
	ctr := make([]byte, s.size)
	for i, b := range s.ctr {
		ctr[s.size-1-i] = b
	}
	off := new(big.Int).SetBytes(ctr)
	off.Mul(off, big.NewInt(int64(s.size)))
	return off.Add(off, big.NewInt(int64(s.cur)))
}

// setOffset positions the stream at the given octet offset, which must be in
// [0, size].
func (s *Stream) setOffset(target *big.Int) {
	q, r := new(big.Int).DivMod(target, big.NewInt(int64(s.size)), new(big.Int))
	qb := q.Bytes()
	s.cache = nil
	if len(qb) > s.size {
		// Only the end-of-stream offset divides to a counter wider
		// than the block.
		s.cur = 0
		s.exhausted = true
		return
	}
	for i := range s.ctr {
		s.ctr[i] = 0
	}
	for i, b := range qb {
		s.ctr[len(qb)-1-i] = b
	}
	s.cur = int(r.Int64())
	s.exhausted = false
}

// Seek implements io.Seeker over the keystream.  The target offset is
// decomposed into a block counter and an in-block cursor.
//
// Fixed-width offsets only address the leading int64-representable portion
// of the stream; a seek whose target, or whose required current position,
// falls outside that portion fails with kind ErrNotRepresentable.  Pos and
// SetPos remain valid over the entire address space.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var target *big.Int
	switch whence {
	case io.SeekStart:
		target = big.NewInt(offset)
	case io.SeekCurrent:
		cur := s.offset()
		if !cur.IsInt64() {
			return 0, makeError(ErrNotRepresentable, "current "+
				"position exceeds the fixed-width offset range")
		}
		target = cur.Add(cur, big.NewInt(offset))
	case io.SeekEnd:
		target = new(big.Int).Add(s.sizeBig(), big.NewInt(offset))
	default:
		return 0, makeError(ErrBadOffset, "unknown seek whence")
	}
	if target.Sign() < 0 {
		return 0, makeError(ErrBadOffset, "negative stream position")
	}
	if target.Cmp(s.sizeBig()) > 0 {
		return 0, makeError(ErrBadOffset, "position beyond end of stream")
	}
	if !target.IsInt64() {
		return 0, makeError(ErrNotRepresentable, "target position "+
			"exceeds the fixed-width offset range")
	}
	s.setOffset(target)
	return target.Int64(), nil
}

// Position is an opaque stream position: the block counter plus the octet
// cursor within the block.  Unlike fixed-width seek offsets, positions are
// valid across the entire address space of the stream.
type Position struct {
	Counter   []byte // little-endian block counter
	Cursor    int    // octet index within the block
	Exhausted bool
}

// Pos captures the current stream position.
func (s *Stream) Pos() Position {
	ctr := make([]byte, s.size)
	copy(ctr, s.ctr)
	return Position{Counter: ctr, Cursor: s.cur, Exhausted: s.exhausted}
}

// SetPos restores a position previously captured by Pos on a stream of the
// same cipher geometry.
func (s *Stream) SetPos(p Position) error {
	if p.Exhausted {
		s.cur = 0
		s.cache = nil
		s.exhausted = true
		return nil
	}
	if len(p.Counter) != s.size || p.Cursor < 0 || p.Cursor >= s.size {
		return makeError(ErrBadPosition, "position does not match "+
			"the cipher block geometry")
	}
	copy(s.ctr, p.Counter)
	s.cur = p.Cursor
	s.cache = nil
	s.exhausted = false
	return nil
}

// Exhausted reports whether the counter space has been fully consumed.
func (s *Stream) Exhausted() bool {
	return s.exhausted
}
