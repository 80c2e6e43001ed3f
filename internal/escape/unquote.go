// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unquoting of JSON string values.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, including
// surrogate pairs, which are combined into their corresponding code point.
// Unquote reports an error for an invalid, incomplete, or unpaired escape
// sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, rest, err := parseUnit(src)
			if err != nil {
				return nil, err
			}
			src = rest
			switch {
			case v >= 0xd800 && v <= 0xdbff:
				// A high surrogate is only valid when immediately followed by
				// a \u escape encoding the low half of the pair.
				if src.Len() < 2 || src.At(0) != '\\' || src.At(1) != 'u' {
					return nil, errors.New("unpaired surrogate")
				}
				lo, rest, err := parseUnit(src.SliceFrom(2))
				if err != nil {
					return nil, err
				}
				if lo < 0xdc00 || lo > 0xdfff {
					return nil, errors.New("unpaired surrogate")
				}
				src = rest
				putRune(0x10000 + (v-0xd800)<<10 + (lo - 0xdc00))
			case v >= 0xdc00 && v <= 0xdfff:
				return nil, errors.New("unpaired surrogate")
			default:
				putRune(v)
			}
		default:
			return nil, fmt.Errorf("invalid escape sequence %q", b)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// parseUnit decodes four hex digits at the front of src into a UTF-16 code
// unit, returning the unit and the unconsumed remainder of src.
func parseUnit(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, src, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, src.SliceFrom(4), nil
}
