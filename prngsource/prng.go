// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prngsource provides a fast userspace octet provider backed by a
// ChaCha20 keystream that is periodically rekeyed with entropy from the
// operating system.  It trades the exact unpredictability of a hardware
// source for speed, which makes it a good default provider for sampling.
package prngsource

import (
	cryptorand "crypto/rand"

	"golang.org/x/crypto/chacha20"
)

// reseedInterval is the number of octets generated before the keystream is
// rekeyed with fresh operating system entropy.
const reseedInterval = 1 << 20 // 1 MiB

// Source generates octets from a periodically rekeyed ChaCha20 keystream.
// It implements io.Reader and never fails after successful creation.
//
// Source methods are not safe for concurrent access.
type Source struct {
	key    [chacha20.KeySize]byte
	nonce  [chacha20.NonceSize]byte
	cipher *chacha20.Cipher
	n      int
	seeded bool
}

// New returns a Source seeded from the operating system entropy pool.
func New() (*Source, error) {
	s := new(Source)
	if err := s.reseed(); err != nil {
		return nil, err
	}
	return s, nil
}

// reseed rekeys the keystream.  Fresh operating system entropy is mixed into
// the existing keystream, so a pool read failure after the initial seeding
// degrades to continued keystream output rather than an error.
func (s *Source) reseed() error {
	_, err := cryptorand.Read(s.key[:])
	if err != nil && !s.seeded {
		return err
	}
	if s.seeded {
		s.cipher.XORKeyStream(s.key[:], s.key[:])
	}

	// Advance the nonce so a repeated pool read cannot replay an earlier
	// keystream under the same key.
	for i := range s.nonce {
		s.nonce[i]++
		if s.nonce[i] != 0 {
			break
		}
	}

	// Never errors with correct key and nonce sizes.
	cipher, _ := chacha20.NewUnauthenticatedCipher(s.key[:], s.nonce[:])
	s.cipher = cipher
	s.n = 0
	s.seeded = true
	return nil
}

// Read fills b entirely with keystream octets.  It never errors.
func (s *Source) Read(b []byte) (n int, err error) {
	for s.n+len(b) > reseedInterval {
		l := reseedInterval - s.n
		keystream(s.cipher, b[:l])
		s.reseed()
		n += l
		b = b[l:]
	}
	keystream(s.cipher, b)
	s.n += len(b)
	n += len(b)
	return n, nil
}

// keystream overwrites b with cipher keystream regardless of its previous
// contents.
func keystream(c *chacha20.Cipher, b []byte) {
	for i := range b {
		b[i] = 0
	}
	c.XORKeyStream(b, b)
}
