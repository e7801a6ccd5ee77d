// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xofsource provides a seekable octet provider backed by the BLAKE3
// extendable output function under a caller-supplied key.  Like cryptcounter
// it is a reproducible pseudorandom tape carrying only the entropy of its
// key, but derived from a keyed hash rather than a block cipher.
package xofsource

import (
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// KeySize is the required key length in octets.
const KeySize = 32

// Stream reads the BLAKE3 extendable output of a keyed hasher.  It
// implements io.Reader and io.Seeker; seeking is supported relative to the
// start of the stream and the current position.
//
// Stream methods are not safe for concurrent access.
type Stream struct {
	xof *blake3.OutputReader
}

// New returns a Stream positioned at the start of the extendable output
// keyed by key, which must be KeySize octets.
func New(key []byte) (*Stream, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key length is %d, want %d", len(key),
			KeySize)
	}
	h := blake3.New(64, key)
	return &Stream{xof: h.XOF()}, nil
}

// Read fills p with successive output octets.  It never errors.
func (s *Stream) Read(p []byte) (int, error) {
	return s.xof.Read(p)
}

// Seek repositions the stream.  The output has no end, so io.SeekEnd is
// rejected.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart, io.SeekCurrent:
	default:
		return 0, fmt.Errorf("unsupported seek whence %d", whence)
	}
	return s.xof.Seek(offset, whence)
}
