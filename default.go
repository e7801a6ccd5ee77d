// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import "math/big"

// RandBits returns n random bits from the current source.
func RandBits(n int) ([]byte, error) {
	return Current().RandBits(n)
}

// RandInt returns a uniform random integer in [0, limit) from the current
// source.
func RandInt(limit *big.Int) (*big.Int, error) {
	return Current().RandInt(limit)
}

// RandProb returns a weighted random index from the current source.
func RandProb(weights []*big.Int) (int, error) {
	return Current().RandProb(weights)
}

// RandFix returns a uniform random multiple of 2^-nbits in [0, 1) from the
// current source.
func RandFix(nbits int) (float64, error) {
	return Current().RandFix(nbits)
}

// Rand returns RandFix(48) scaled by limit from the current source, for
// drop-in replacement of legacy 48-bit generators.
func Rand(limit float64) (float64, error) {
	return Current().Rand(limit)
}

// RandFloat returns a random float64 from the current source, distributed as
// a uniform real over [min, max] rounded to representable values.
func RandFloat(min, max float64) (float64, error) {
	return Current().RandFloat(min, max)
}
