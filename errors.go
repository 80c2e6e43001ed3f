// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the errors a Decoder reports. Use errors.Is to
// check which category a failure belongs to.
var (
	// ErrInvalidJSON means the input does not conform to the JSON grammar.
	ErrInvalidJSON = errors.New("invalid JSON input")

	// ErrInvalidType means the next value in the input is well-formed but
	// does not have the type the caller asked to read.
	ErrInvalidType = errors.New("invalid value type")

	// ErrDepthOverflow means opening another container would exceed the
	// maximum nesting depth fixed at construction of the decoder.
	ErrDepthOverflow = errors.New("nesting depth exceeded")

	// ErrUnrecoverable means the decoder failed outside the JSON grammar,
	// for example because an output sink reported an error.
	ErrUnrecoverable = errors.New("unrecoverable failure")
)

// A DecodeError is the concrete type of all errors reported by the methods of
// a Decoder. It records the byte offset in the input where decoding stopped,
// and wraps the sentinel error classifying the failure.
//
// The first DecodeError a decoder encounters is latched: every subsequent
// method call on the same decoder returns the identical value without doing
// any further work.
type DecodeError struct {
	Offset int    // byte offset in the input where the error occurred
	Reason string // description of the problem

	code error // the wrapped sentinel
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s (offset %d)", e.code, e.Reason, e.Offset)
}

// Unwrap reports the sentinel category of e.
func (e *DecodeError) Unwrap() error { return e.code }
