// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"sync"

	"github.com/decred/entropy/prngsource"
)

// The current source is dynamically scoped: WithSource pushes onto a stack
// and is guaranteed to pop on every exit path, so nested scopes always
// restore their caller's source.  The stack itself is guarded, but individual
// sources carry mutable buffer state and remain unsafe for concurrent use;
// see the package documentation.
var (
	sourceMu    sync.Mutex
	sourceStack []*Source

	defaultOnce sync.Once
	defaultSrc  *Source
)

// defaultSource lazily creates the bottom-of-stack source, a fast userspace
// keystream generator reseeded from the operating system.  Creation can only
// fail when the operating system entropy pool is unreadable, which leaves
// nothing sensible to sample from.
func defaultSource() *Source {
	defaultOnce.Do(func() {
		p, err := prngsource.New()
		if err != nil {
			panic("entropy: seeding default source: " + err.Error())
		}
		defaultSrc = NewSource(p)
	})
	return defaultSrc
}

// Current returns the innermost source established by WithSource, or the
// process default source when no scope is active.
func Current() *Source {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	if n := len(sourceStack); n > 0 {
		return sourceStack[n-1]
	}
	return defaultSource()
}

// WithSource runs fn with src as the current source.  The previous current
// source is restored on every exit path, including an fn that returns an
// error or panics.  The return value is whatever fn returns.
func WithSource(src *Source, fn func() error) error {
	sourceMu.Lock()
	sourceStack = append(sourceStack, src)
	sourceMu.Unlock()

	defer func() {
		sourceMu.Lock()
		sourceStack = sourceStack[:len(sourceStack)-1]
		sourceMu.Unlock()
	}()

	return fn()
}
