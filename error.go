// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidArgument indicates a caller error such as a negative bit
	// count, a non-positive limit, negative or all-zero weights, or
	// non-finite bounds.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrSourceFailure indicates the raw octet provider could not supply
	// the octets required by an operation, either because it is exhausted
	// or because it failed outright.
	ErrSourceFailure = ErrorKind("ErrSourceFailure")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an entropy extraction or parameter error.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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

// sourceError creates an ErrSourceFailure Error that additionally wraps the
// provider failure that triggered it.
func sourceError(desc string, err error) Error {
	return Error{Err: ErrSourceFailure, Description: desc + ": " + err.Error()}
}
