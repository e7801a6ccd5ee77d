// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cryptcounter exposes a keyed block cipher run in counter mode as a
// seekable virtual file of keystream octets.
//
// The octet at logical position p is encrypt(counter(p/blockSize))[p%
// blockSize], where the counter is the block index as a little-endian byte
// string of the cipher's block width.  The stream addresses
// 2^(8*blockSize)*blockSize octets without ever materializing them; once the
// counter space is fully consumed the stream is permanently exhausted, a
// terminal state rather than an error.
//
// Seekability makes the keystream a reproducible, resumable pseudorandom
// tape keyed by a single secret, carrying only the entropy actually present
// in the key.  Any cipher.Block qualifies; the cipher is borrowed, never
// owned.
package cryptcounter
