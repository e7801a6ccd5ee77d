// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy turns streams of raw unpredictable octets into exactly
// uniform random values: arbitrary-precision bounded integers, weighted
// booleans, fixed-point and floating-point fractions, and derived
// combinatorial operations such as weighted choice, sampling without
// replacement, and shuffling.
//
// All sampling is performed by buffering an octet provider into bit reads and
// applying rejection sampling, so every distribution is exact given a perfect
// provider, no matter the requested range.  The package makes no attempt to
// judge the quality of the provider itself; it guarantees only that it does
// not add bias of its own.
//
// Providers are plain io.Reader implementations.  The cryptcounter,
// netsource, prngsource, and xofsource packages supply ready-made providers;
// any other reader, such as an open handle to a hardware entropy device,
// works the same way.
//
// A dynamically scoped current source, manipulated with WithSource, backs the
// package-level sampling functions.  The bottom of the source stack is a fast
// keystream generator reseeded from the operating system.
package entropy
