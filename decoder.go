// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"fmt"

	"go4.org/mem"
)

// A Decoder reads JSON values one at a time from an in-memory buffer, under
// the direction of its caller. The caller asks for each value by type, in the
// order the input is expected to contain them; the decoder verifies the
// punctuation between values as it goes. It does not build a document tree.
//
// A decoder runs one session at a time: call [Decoder.Begin] to attach an
// input buffer, the read methods to consume its values, and [Decoder.End] to
// verify the input was fully consumed. A decoder whose sessions all ended
// cleanly may be reused for further sessions.
//
// The first error any method reports is latched: every later method call on
// the same decoder returns the identical error without examining further
// input, so a caller may run a straight-line sequence of reads and check only
// the error from End. A decoder that has reported an error cannot be reused;
// discard it and construct a new one.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	in    mem.RO       // borrowed input, valid while a session is open
	pos   int          // offset of the next byte to examine
	stack []levelState // grammar state per nesting level; stack[0] is the root
	level int          // current nesting depth
	open  bool         // whether a session is in progress
	fault *DecodeError // first recorded failure, nil if none
}

// levelState records the grammar position within one open container.
type levelState byte

const (
	levelRoot        levelState = iota // top level, outside any container
	levelArrayFirst                    // in an array, no separator seen yet
	levelArrayNext                     // in an array, just past a separator
	levelObjectKey                     // in an object, at a member key
	levelObjectValue                   // in an object, at a member value
)

// New constructs a Decoder that can read containers nested up to maxDepth
// levels deep. A decoder with maxDepth == 0 can read only top-level values.
// The nesting stack is allocated here, once; decoding allocates only to
// materialize the values the caller asks for. New panics if maxDepth is
// negative.
func New(maxDepth int) *Decoder {
	if maxDepth < 0 {
		panic("jpull: maxDepth is negative")
	}
	return &Decoder{stack: make([]levelState, maxDepth+1)}
}

// Begin starts a decoding session over input. The decoder borrows input for
// the duration of the session and does not copy it. Begin panics if a session
// is already open on d.
func (d *Decoder) Begin(input string) { d.begin(mem.S(input)) }

// BeginBytes is Begin for a byte slice. The caller must not modify input
// before the session ends.
func (d *Decoder) BeginBytes(input []byte) { d.begin(mem.B(input)) }

func (d *Decoder) begin(in mem.RO) {
	if d.open {
		panic("jpull: a session is already open")
	}
	d.in = in
	d.pos = 0
	d.open = true
	d.skipSpace()
}

// End finishes the current session and releases the input buffer. It reports
// nil if the input was fully consumed: every container closed and nothing but
// whitespace after the last value read. Otherwise it reports an error wrapping
// [ErrInvalidType] if containers remain open, or [ErrInvalidJSON] if unread
// input remains.
//
// If an error was latched during the session, End returns that error instead.
// Errors from End itself are not latched, so a decoder whose End failed for
// one of the reasons above may still begin a fresh session. End panics if no
// session is open and no error is latched.
func (d *Decoder) End() error {
	var err error
	if d.fault != nil {
		err = d.fault
	} else {
		if !d.open {
			panic("jpull: no session is open")
		}
		if d.level > 0 {
			err = &DecodeError{Offset: d.pos, Reason: "unclosed container", code: ErrInvalidType}
		} else if d.pos < d.in.Len() {
			err = &DecodeError{Offset: d.pos, Reason: "trailing data after value", code: ErrInvalidJSON}
		}
	}
	d.in = mem.RO{}
	d.pos = 0
	d.level = 0
	d.open = false
	return err
}

// Offset reports the byte offset in the input of the next unread byte. Its
// value is meaningful only while a session is open; after End it reports 0.
func (d *Decoder) Offset() int { return d.pos }

// More reports whether another value can be read in the current container,
// without consuming any input. Inside an array or object it reports false at
// the closing bracket; at the top level it reports false once the input is
// exhausted, and otherwise true, so multiple top-level values can be read in
// sequence. More reports false on a decoder with a latched error.
func (d *Decoder) More() bool {
	if d.fault != nil || !d.open || d.pos >= d.in.Len() {
		return false
	}
	switch d.stack[d.level] {
	case levelArrayFirst, levelArrayNext:
		return d.at(d.pos) != ']'
	case levelObjectKey, levelObjectValue:
		return d.at(d.pos) != '}'
	}
	return true
}

// OpenArray enters the array at the current position, so that subsequent
// reads consume its elements. It reports an error wrapping [ErrInvalidType]
// if the next value is not an array, or [ErrDepthOverflow] if the decoder is
// already at its maximum nesting depth.
func (d *Decoder) OpenArray() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.stack[d.level] == levelObjectKey {
		return d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	if d.at(d.pos) != '[' {
		return d.fail(ErrInvalidType, d.pos, "value is not an array")
	}
	if d.level == len(d.stack)-1 {
		return d.failf(ErrDepthOverflow, d.pos, "exceeds depth limit %d", len(d.stack)-1)
	}
	d.pos++
	d.skipSpace()
	d.level++
	d.stack[d.level] = levelArrayFirst
	return nil
}

// CloseArray consumes the closing bracket of the array the decoder is
// currently inside. It reports an error wrapping [ErrInvalidType] if the
// decoder is not inside an array, or [ErrInvalidJSON] if unread elements
// remain before the bracket.
func (d *Decoder) CloseArray() error {
	if err := d.check(); err != nil {
		return err
	}
	if st := d.stack[d.level]; st != levelArrayFirst && st != levelArrayNext {
		return d.fail(ErrInvalidType, d.pos, "not inside an array")
	}
	if b := d.at(d.pos); b != ']' {
		return d.failf(ErrInvalidJSON, d.pos, `got %q, want "]"`, b)
	}
	d.pos++
	d.level--
	return d.advance()
}

// OpenObject enters the object at the current position, so that subsequent
// reads consume its member keys and values in alternation. It reports an
// error wrapping [ErrInvalidType] if the next value is not an object,
// [ErrDepthOverflow] if the decoder is already at its maximum nesting depth,
// or [ErrInvalidJSON] if the object does not begin with a key or a closing
// brace.
func (d *Decoder) OpenObject() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.stack[d.level] == levelObjectKey {
		return d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	if d.at(d.pos) != '{' {
		return d.fail(ErrInvalidType, d.pos, "value is not an object")
	}
	if d.level == len(d.stack)-1 {
		return d.failf(ErrDepthOverflow, d.pos, "exceeds depth limit %d", len(d.stack)-1)
	}
	d.pos++
	d.skipSpace()
	if b := d.at(d.pos); b != '"' && b != '}' {
		return d.failf(ErrInvalidJSON, d.pos, "got %q, want a key string", b)
	}
	d.level++
	d.stack[d.level] = levelObjectKey
	return nil
}

// CloseObject consumes the closing brace of the object the decoder is
// currently inside. It reports an error wrapping [ErrInvalidType] if the
// decoder is not inside an object, or [ErrInvalidJSON] if unread members
// remain before the brace.
func (d *Decoder) CloseObject() error {
	if err := d.check(); err != nil {
		return err
	}
	if st := d.stack[d.level]; st != levelObjectKey && st != levelObjectValue {
		return d.fail(ErrInvalidType, d.pos, "not inside an object")
	}
	if b := d.at(d.pos); b != '}' {
		return d.failf(ErrInvalidJSON, d.pos, `got %q, want "}"`, b)
	}
	d.pos++
	d.level--
	return d.advance()
}

// advance moves the cursor from the end of a just-consumed value to the start
// of the next one, verifying the punctuation in between against the grammar
// state of the current level. It must be called exactly once after each value
// is consumed.
func (d *Decoder) advance() error {
	d.skipSpace()
	switch d.stack[d.level] {
	case levelArrayFirst:
		if d.at(d.pos) == ',' {
			d.stack[d.level] = levelArrayNext
			return d.sepArray()
		} else if d.at(d.pos) != ']' {
			return d.failf(ErrInvalidJSON, d.pos, "unexpected %q in array", d.at(d.pos))
		}

	case levelArrayNext:
		if d.at(d.pos) == ',' {
			d.stack[d.level] = levelArrayFirst
			return d.sepArray()
		} else if d.at(d.pos) == ']' {
			d.stack[d.level] = levelArrayFirst
		} else {
			return d.failf(ErrInvalidJSON, d.pos, "unexpected %q in array", d.at(d.pos))
		}

	case levelObjectKey:
		if d.at(d.pos) != ':' {
			return d.failf(ErrInvalidJSON, d.pos, `got %q, want ":"`, d.at(d.pos))
		}
		d.stack[d.level] = levelObjectValue
		d.pos++
		d.skipSpace()

	case levelObjectValue:
		if d.at(d.pos) == ',' {
			d.stack[d.level] = levelObjectKey
			d.pos++
			d.skipSpace()
			if d.at(d.pos) != '"' {
				return d.failf(ErrInvalidJSON, d.pos, "got %q, want a key string", d.at(d.pos))
			}
		} else if d.at(d.pos) != '}' {
			return d.failf(ErrInvalidJSON, d.pos, "unexpected %q in object", d.at(d.pos))
		}

	case levelRoot:
		// No separators at the top level. Whether more than one value is
		// present is settled by End, not here.
	}
	return nil
}

// sepArray consumes an array separator the cursor is at. A second separator
// directly after it is rejected; a closing bracket is not, so an array may
// end with a trailing comma.
func (d *Decoder) sepArray() error {
	d.pos++
	d.skipSpace()
	if d.at(d.pos) == ',' {
		return d.fail(ErrInvalidJSON, d.pos, `doubled "," in array`)
	}
	return nil
}

// check returns the latched fault, if any. It panics if no session is open,
// which reports a usage error in the caller rather than the input.
func (d *Decoder) check() error {
	if d.fault != nil {
		return d.fault
	}
	if !d.open {
		panic("jpull: no session is open")
	}
	return nil
}

// fail latches a DecodeError wrapping code and returns it. Once latched the
// same value is returned by every later operation on d.
func (d *Decoder) fail(code error, off int, reason string) error {
	d.fault = &DecodeError{Offset: off, Reason: reason, code: code}
	return d.fault
}

func (d *Decoder) failf(code error, off int, format string, args ...any) error {
	return d.fail(code, off, fmt.Sprintf(format, args...))
}

// at returns the byte at offset i of the input, or 0 when i lies outside it.
// No byte that can begin or extend a value is 0, so scans stop there.
func (d *Decoder) at(i int) byte {
	if i < d.in.Len() {
		return d.in.At(i)
	}
	return 0
}

func (d *Decoder) skipSpace() {
	for isSpace(d.at(d.pos)) {
		d.pos++
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
