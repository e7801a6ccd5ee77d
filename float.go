// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import "math"

const (
	// minBinade is the lowest float64 exponent band.  Subnormal values and
	// zero share its 2^-1074 grid spacing, so the band walk treats them as
	// one merged bottom band.
	minBinade = -1022

	// satIdx saturates unit-index conversions well outside the live
	// window of any draw, so clamped indices compare correctly without
	// risking integer overflow.
	satIdx = int64(1) << 54
)

// decompose splits a finite float64 into its binade exponent and integer
// significand: |f| == m * 2^(e-52), with 2^52 <= m < 2^53 for normal values
// and e == minBinade, m < 2^52 for subnormal values and zero.
func decompose(f float64) (e int, m int64) {
	bits := math.Float64bits(f)
	exp := int(bits >> 52 & 0x7FF)
	frac := int64(bits & (1<<52 - 1))
	if exp == 0 {
		return minBinade, frac
	}
	return exp - 1023, frac | 1<<52
}

// unitFloor returns floor(f / 2^(e-52)) for a bound decomposed as
// (neg, m, eb), saturating once the magnitude cannot matter to any draw.
func unitFloor(neg bool, m int64, eb, e int) int64 {
	if m == 0 {
		return 0
	}
	if eb >= e {
		shift := uint(eb - e)
		if shift > 63 || m > satIdx>>shift {
			if neg {
				return -satIdx
			}
			return satIdx
		}
		if neg {
			return -(m << shift)
		}
		return m << shift
	}
	shift := uint(e - eb)
	if shift >= 54 {
		// |f| is far below one unit at this band.
		if neg {
			return -1
		}
		return 0
	}
	if neg {
		return -((m + int64(1)<<shift - 1) >> shift)
	}
	return m >> shift
}

// unitCeil returns ceil(f / 2^(e-52)) with the same saturation rules.
func unitCeil(neg bool, m int64, eb, e int) int64 {
	return -unitFloor(!neg, m, eb, e)
}

// RandFloat returns a random float64 distributed as if a real number had
// been drawn uniformly from [min, max] with infinite precision and then
// rounded to a representable value: each representable value in the range is
// selected with probability exactly proportional to the width of its rounding
// neighborhood, and both bounds are always reachable.  No infinite-precision
// value is ever materialized.
//
// The selection walks exponent bands downward from the bound of larger
// magnitude.  Each band partitions the remaining range into equal-width cells
// counted with exact integer arithmetic; a uniform draw either accepts a cell
// whose floor is representable in the band, or descends one band and redraws
// at twice the resolution.  Cells that extend past a bound only exist at
// resolutions coarser than that bound's own band; selecting one restarts the
// walk, which is the bounded rejection step that keeps the distribution exact
// despite the coarse counting.  An accepted cell floor is finally promoted to
// the cell's upper edge by a fair coin flip.
//
// Both bounds must be finite and min must not exceed max; otherwise the
// returned error has kind ErrInvalidArgument.  A range collapsing to a
// positive and negative zero yields a zero of uniformly random sign.
func (s *Source) RandFloat(min, max float64) (float64, error) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) ||
		math.IsNaN(min) || math.IsNaN(max) {

		return 0, makeError(ErrInvalidArgument, "bounds must be finite")
	}
	if min > max {
		return 0, makeError(ErrInvalidArgument, "min exceeds max")
	}
	if min == max {
		if math.Signbit(min) != math.Signbit(max) {
			b, err := s.GetBits(1)
			if err != nil {
				return 0, err
			}
			if b[0] == 1 {
				return math.Copysign(0, -1), nil
			}
			return 0, nil
		}
		return min, nil
	}

	minNeg, maxNeg := math.Signbit(min), math.Signbit(max)
	minE, minM := decompose(min)
	maxE, maxM := decompose(max)
	pe := maxE
	if math.Abs(min) > math.Abs(max) {
		pe = minE
	}

	topLo := unitFloor(minNeg, minM, minE, pe)
	topHi := unitCeil(maxNeg, maxM, maxE, pe)
	e, lo, hi := pe, topLo, topHi
	for {
		j, err := s.getIntN(hi - lo)
		if err != nil {
			return 0, err
		}
		k := lo + j

		// Reject cells that dip outside [min, max); such slivers only
		// arise at resolutions coarser than the offending bound's own
		// band, so the walk from an exact-band window terminates.
		if k < unitFloor(minNeg, minM, minE, e) ||
			k >= unitCeil(maxNeg, maxM, maxE, e) {

			e, lo, hi = pe, topLo, topHi
			continue
		}

		if e == minBinade || k >= 1<<52 || k < -(1<<52) {
			f := math.Ldexp(float64(k), e-52)
			b, err := s.GetBits(1)
			if err != nil {
				return 0, err
			}
			if b[0] == 1 {
				f = math.Nextafter(f, math.Inf(1))
			}
			return f, nil
		}

		// Descend one binade: the region of the window below this
		// band refines to two cells per cell.
		if lo < -(1 << 52) {
			lo = -(1 << 52)
		}
		if hi > 1<<52 {
			hi = 1 << 52
		}
		lo, hi, e = lo*2, hi*2, e-1
	}
}
