// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptcounter

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrNotRepresentable, "ErrNotRepresentable"},
		{ErrBadOffset, "ErrBadOffset"},
		{ErrBadPosition, "ErrBadPosition"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrBadOffset == ErrBadOffset",
		err:       ErrBadOffset,
		target:    ErrBadOffset,
		wantMatch: true,
		wantAs:    ErrBadOffset,
	}, {
		name:      "Error.ErrBadOffset == ErrBadOffset",
		err:       makeError(ErrBadOffset, ""),
		target:    ErrBadOffset,
		wantMatch: true,
		wantAs:    ErrBadOffset,
	}, {
		name:      "Error.ErrNotRepresentable != ErrBadOffset",
		err:       makeError(ErrNotRepresentable, ""),
		target:    ErrBadOffset,
		wantMatch: false,
		wantAs:    ErrNotRepresentable,
	}, {
		name:      "Error.ErrBadPosition != io.EOF",
		err:       makeError(ErrBadPosition, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrBadPosition,
	}}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
