// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"errors"
	"math"
	"testing"
)

// TestRandFloatDegenerate ensures a collapsed range always returns its single
// value exactly, without consuming entropy.
func TestRandFloatDegenerate(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.5, 1.5e-3,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		1e-310, // subnormal
	}
	s := NewSource(errReader{})
	for _, v := range values {
		got, err := s.RandFloat(v, v)
		if err != nil {
			t.Fatalf("[%v, %v]: unexpected error: %v", v, v, err)
		}
		if got != v || math.Signbit(got) != math.Signbit(v) {
			t.Errorf("[%v, %v]: got %v", v, v, got)
		}
	}
}

// TestRandFloatSignedZero ensures the [-0, 0] range yields both zero signs.
func TestRandFloatSignedZero(t *testing.T) {
	s, _ := testSource(t)
	negZero := math.Copysign(0, -1)
	var sawPos, sawNeg bool
	for i := 0; i < 256; i++ {
		got, err := s.RandFloat(negZero, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Fatalf("got %v, want a zero", got)
		}
		if math.Signbit(got) {
			sawNeg = true
		} else {
			sawPos = true
		}
	}
	if !sawPos || !sawNeg {
		t.Fatalf("zero signs not both observed: +0=%v -0=%v", sawPos,
			sawNeg)
	}
}

// TestRandFloatErrors ensures non-finite and inverted bounds are rejected.
func TestRandFloatErrors(t *testing.T) {
	s, _ := testSource(t)
	bad := []struct{ min, max float64 }{
		{math.NaN(), 1},
		{0, math.NaN()},
		{math.Inf(-1), 0},
		{0, math.Inf(1)},
		{1, 0},
		{-1, -2},
	}
	for i, test := range bad {
		_, err := s.RandFloat(test.min, test.max)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("#%d: got %v, want ErrInvalidArgument", i, err)
		}
	}
}

// TestRandFloatContainment ensures draws never escape their range across
// bands, signs, and magnitudes.
func TestRandFloatContainment(t *testing.T) {
	s, _ := testSource(t)
	ranges := []struct{ min, max float64 }{
		{0, 1},
		{-1, 1},
		{1, 2},
		{-3, -1},
		{0.1, 0.1000001},
		{1e300, 1.5e300},
		{-math.MaxFloat64, math.MaxFloat64},
		{math.SmallestNonzeroFloat64, 1e-320},
		{-1e-310, 1e-310},
		{-1e-300, 1e300},
	}
	for _, r := range ranges {
		for i := 0; i < 500; i++ {
			got, err := s.RandFloat(r.min, r.max)
			if err != nil {
				t.Fatalf("[%v, %v]: unexpected error: %v", r.min,
					r.max, err)
			}
			if got < r.min || got > r.max {
				t.Fatalf("[%v, %v]: draw %v out of range", r.min,
					r.max, got)
			}
		}
	}
}

// TestRandFloatBoundsReachable ensures both endpoints of a range spanning
// only a few representable values are actually drawn.
func TestRandFloatBoundsReachable(t *testing.T) {
	s, _ := testSource(t)

	min := 1.0
	max := min
	for i := 0; i < 3; i++ {
		max = math.Nextafter(max, math.Inf(1))
	}
	seen := make(map[float64]int)
	for i := 0; i < 2000; i++ {
		got, err := s.RandFloat(min, max)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[got]++
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d distinct values, want 4", len(seen))
	}
	if seen[min] == 0 || seen[max] == 0 {
		t.Fatalf("endpoints not both drawn: min=%d max=%d", seen[min],
			seen[max])
	}
}

// TestRandFloatSubnormalPair ensures the merged bottom band resolves the two
// values of a one-ulp subnormal range.
func TestRandFloatSubnormalPair(t *testing.T) {
	s, _ := testSource(t)
	max := math.SmallestNonzeroFloat64
	var sawZero, sawMax bool
	for i := 0; i < 512; i++ {
		got, err := s.RandFloat(0, max)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		switch got {
		case 0:
			sawZero = true
		case max:
			sawMax = true
		default:
			t.Fatalf("draw %v not an endpoint", got)
		}
	}
	if !sawZero || !sawMax {
		t.Fatalf("endpoints not both drawn: 0=%v max=%v", sawZero, sawMax)
	}
}

// TestRandFloatMean sanity checks that the unit range draw is centered.
func TestRandFloatMean(t *testing.T) {
	s, _ := testSource(t)
	const trials = 4000
	var sum float64
	for i := 0; i < trials; i++ {
		got, err := s.RandFloat(0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum += got
	}
	mean := sum / trials
	if mean < 0.45 || mean > 0.55 {
		t.Fatalf("mean %v far from 0.5", mean)
	}
}
