// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"errors"
	"io"
	"strconv"

	"github.com/creachadair/jpull/internal/escape"
	"go4.org/mem"
)

// ReadNull consumes the constant null. It reports an error wrapping
// [ErrInvalidType] if the next value does not begin like null, or
// [ErrInvalidJSON] if it begins like null but does not match it.
func (d *Decoder) ReadNull() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.stack[d.level] == levelObjectKey {
		return d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	if d.at(d.pos) != 'n' {
		return d.fail(ErrInvalidType, d.pos, "value is not null")
	}
	if !mem.HasPrefix(d.in.SliceFrom(d.pos), mem.S("null")) {
		return d.fail(ErrInvalidJSON, d.pos, `invalid constant, want "null"`)
	}
	d.pos += len("null")
	return d.advance()
}

// ReadBool consumes the constant true or false and reports its value. The
// error split is as for [Decoder.ReadNull].
func (d *Decoder) ReadBool() (bool, error) {
	if err := d.check(); err != nil {
		return false, err
	}
	if d.stack[d.level] == levelObjectKey {
		return false, d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	var value bool
	var lit string
	switch d.at(d.pos) {
	case 't':
		value, lit = true, "true"
	case 'f':
		value, lit = false, "false"
	default:
		return false, d.fail(ErrInvalidType, d.pos, "value is not a bool")
	}
	if !mem.HasPrefix(d.in.SliceFrom(d.pos), mem.S(lit)) {
		return false, d.failf(ErrInvalidJSON, d.pos, "invalid constant, want %q", lit)
	}
	d.pos += len(lit)
	if err := d.advance(); err != nil {
		return false, err
	}
	return value, nil
}

// ReadUint64 consumes an unsigned decimal integer. It reports an error
// wrapping [ErrInvalidType] if the next value is not a number, is negative,
// has a fraction or exponent, or does not fit in a uint64.
func (d *Decoder) ReadUint64() (uint64, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	if d.stack[d.level] == levelObjectKey {
		return 0, d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	if d.at(d.pos) == '-' {
		return 0, d.fail(ErrInvalidType, d.pos, "value is negative")
	}
	end := d.pos
	for isDigit(d.at(end)) {
		end++
	}
	if end == d.pos {
		return 0, d.fail(ErrInvalidType, d.pos, "value is not a number")
	}
	if b := d.at(end); b == '.' || b == 'e' || b == 'E' {
		return 0, d.fail(ErrInvalidType, d.pos, "number is not an integer")
	}
	value, err := mem.ParseUint(d.in.Slice(d.pos, end), 10, 64)
	if err != nil {
		return 0, d.fail(ErrInvalidType, d.pos, "number out of range for uint64")
	}
	d.pos = end
	if err := d.advance(); err != nil {
		return 0, err
	}
	return value, nil
}

// ReadFloat64 consumes a decimal number. A value whose magnitude exceeds the
// range of a float64 is reported as an infinity, without error. ReadFloat64
// reports an error wrapping [ErrInvalidJSON] if the next value has no mantissa
// digits, whatever else it may be; unlike the other readers it does not
// distinguish a wrong type from malformed input.
func (d *Decoder) ReadFloat64() (float64, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	if d.stack[d.level] == levelObjectKey {
		return 0, d.fail(ErrInvalidType, d.pos, "object key must be a string")
	}
	end, digits := d.scanNumber(d.pos)
	if digits == 0 {
		return 0, d.fail(ErrInvalidJSON, d.pos, "value is not a number")
	}
	text := d.in.Slice(d.pos, end).StringCopy()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, d.failf(ErrInvalidJSON, d.pos, "invalid number %q", text)
	}
	d.pos = end
	if err := d.advance(); err != nil {
		return 0, err
	}
	return value, nil
}

// ReadString consumes a quoted string and reports its decoded value, with
// escape sequences resolved and surrogate pairs combined. It reports an error
// wrapping [ErrInvalidType] if the next value is not a string, or
// [ErrInvalidJSON] if the string is unterminated, contains a raw control
// byte, or contains an invalid escape. ReadString is the only reader that may
// be called at an object key.
func (d *Decoder) ReadString() (string, error) {
	if err := d.check(); err != nil {
		return "", err
	}
	if d.at(d.pos) != '"' {
		return "", d.fail(ErrInvalidType, d.pos, "value is not a string")
	}
	lo, hi, err := d.scanString()
	if err != nil {
		return "", err
	}
	dec, uerr := escape.Unquote(d.in.Slice(lo, hi))
	if uerr != nil {
		return "", d.failf(ErrInvalidJSON, d.pos, "invalid string: %v", uerr)
	}
	d.pos = hi + 1
	if err := d.advance(); err != nil {
		return "", err
	}
	return string(dec), nil
}

// CopyString consumes a quoted string as [Decoder.ReadString] does, but
// writes the decoded value to w instead of returning it. A write failure of w
// latches an error wrapping [ErrUnrecoverable]: output has been lost, and the
// session cannot usefully continue.
func (d *Decoder) CopyString(w io.Writer) error {
	if err := d.check(); err != nil {
		return err
	}
	if d.at(d.pos) != '"' {
		return d.fail(ErrInvalidType, d.pos, "value is not a string")
	}
	lo, hi, err := d.scanString()
	if err != nil {
		return err
	}
	dec, uerr := escape.Unquote(d.in.Slice(lo, hi))
	if uerr != nil {
		return d.failf(ErrInvalidJSON, d.pos, "invalid string: %v", uerr)
	}
	if _, err := w.Write(dec); err != nil {
		return d.failf(ErrUnrecoverable, d.pos, "write output: %v", err)
	}
	d.pos = hi + 1
	return d.advance()
}

// Skip consumes and discards the next value of any kind. Containers are
// skipped recursively and count against the depth limit exactly as if the
// caller had opened them. In an object, a member key counts as a value of its
// own, so skipping alternates keys and values. Skip reports an error wrapping
// [ErrInvalidType] when no value is available, at the end of a container or
// of the input.
//
// A skipped string is scanned but not decoded: its escape sequences are
// stepped over without validation. A skipped number is not parsed beyond
// finding its extent.
func (d *Decoder) Skip() error {
	if err := d.check(); err != nil {
		return err
	}
	switch d.Peek() {
	case Array:
		if err := d.OpenArray(); err != nil {
			return err
		}
		for d.More() {
			if err := d.Skip(); err != nil {
				return err
			}
		}
		return d.CloseArray()

	case Object:
		if err := d.OpenObject(); err != nil {
			return err
		}
		for d.More() {
			if err := d.Skip(); err != nil { // key
				return err
			}
			if err := d.Skip(); err != nil { // value
				return err
			}
		}
		return d.CloseObject()

	case String:
		_, hi, err := d.scanString()
		if err != nil {
			return err
		}
		d.pos = hi + 1
		return d.advance()

	case Number:
		end, digits := d.scanNumber(d.pos)
		if digits == 0 {
			return d.fail(ErrInvalidJSON, d.pos, "value is not a number")
		}
		d.pos = end
		return d.advance()

	case Bool:
		_, err := d.ReadBool()
		return err

	case Null:
		return d.ReadNull()
	}
	return d.fail(ErrInvalidType, d.pos, "no value to skip")
}

// scanString locates the closing quote of the string opening at d.pos and
// reports the bounds of the text between the quotes. The cursor does not
// move. Escaped byte pairs are stepped over without further checking; the
// escape package settles their validity during decoding.
func (d *Decoder) scanString() (lo, hi int, _ error) {
	i := d.pos + 1
	for {
		b := d.at(i)
		if b == '"' {
			return d.pos + 1, i, nil
		}
		if b < 0x20 {
			if i >= d.in.Len() {
				return 0, 0, d.fail(ErrInvalidJSON, i, "unterminated string")
			}
			return 0, 0, d.failf(ErrInvalidJSON, i, "unescaped control %q in string", b)
		}
		if b == '\\' {
			i += 2
		} else {
			i++
		}
	}
}

// scanNumber reports the offset just past the longest prefix of the input at
// pos matching a decimal number: an optional sign, mantissa digits around at
// most one decimal point, and an optional exponent. The exponent is taken
// only if at least one digit follows its marker and optional sign, so "1e+"
// scans as "1". The count of mantissa digits is reported alongside; a count
// of zero means no number was found and end is meaningless.
func (d *Decoder) scanNumber(pos int) (end, digits int) {
	if b := d.at(pos); b == '-' || b == '+' {
		pos++
	}
	for isDigit(d.at(pos)) {
		pos++
		digits++
	}
	if d.at(pos) == '.' {
		pos++
		for isDigit(d.at(pos)) {
			pos++
			digits++
		}
	}
	if b := d.at(pos); b == 'e' || b == 'E' {
		next := pos + 1
		if b := d.at(next); b == '-' || b == '+' {
			next++
		}
		if isDigit(d.at(next)) {
			pos = next
			for isDigit(d.at(pos)) {
				pos++
			}
		}
	}
	return pos, digits
}
