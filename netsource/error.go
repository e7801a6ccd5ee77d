// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netsource

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUnexpectedStatus indicates the entropy server answered a request
	// with a status code other than 200.
	ErrUnexpectedStatus = ErrorKind("ErrUnexpectedStatus")

	// ErrBadFillLevel indicates the fill level response body did not carry
	// a percentage.
	ErrBadFillLevel = ErrorKind("ErrBadFillLevel")

	// ErrShortBatch indicates a batch fetch returned a body of the wrong
	// length.
	ErrShortBatch = ErrorKind("ErrShortBatch")

	// ErrInvalidUnread indicates an unread with no octet available to push
	// back.  Only the most recently read octet may be unread, once.
	ErrInvalidUnread = ErrorKind("ErrInvalidUnread")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an entropy server error.  It has full support for
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
