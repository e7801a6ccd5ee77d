// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptcounter

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNotRepresentable indicates a fixed-width seek involved a stream
	// position that does not fit the offset type.  The opaque Pos/SetPos
	// form remains valid over the entire address space.
	ErrNotRepresentable = ErrorKind("ErrNotRepresentable")

	// ErrBadOffset indicates a seek to a negative position, past the end
	// of the stream, or with an unknown whence.
	ErrBadOffset = ErrorKind("ErrBadOffset")

	// ErrBadPosition indicates an opaque position that does not match the
	// cipher's block geometry.
	ErrBadPosition = ErrorKind("ErrBadPosition")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a stream positioning error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
