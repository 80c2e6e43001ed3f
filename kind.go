// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

// Kind classifies the JSON value at the current position of a Decoder, based
// on its first byte alone.
type Kind byte

// Constants defining the valid Kind values.
const (
	None   Kind = iota // no value is available at this position
	Array              // an array, "[ ... ]"
	Object             // an object, "{ ... }"
	String             // a quoted string
	Number             // a number
	Bool               // a Boolean constant, true or false
	Null               // the constant null
)

var kindStr = [...]string{
	None:   "none",
	Array:  "array",
	Object: "object",
	String: "string",
	Number: "number",
	Bool:   "bool",
	Null:   "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[None]
	}
	return kindStr[v]
}

// Peek reports the kind of value at the current position, without checking
// its validity or advancing the decoder. It reports None if the decoder has
// failed, no session is open, or the byte at the cursor cannot begin a value,
// including the closing bracket of the enclosing container and the end of the
// input.
func (d *Decoder) Peek() Kind {
	if d.fault != nil || !d.open {
		return None
	}
	switch b := d.at(d.pos); {
	case b == '[':
		return Array
	case b == '{':
		return Object
	case b == '"':
		return String
	case b == '-' || (b >= '0' && b <= '9'):
		return Number
	case b == 't' || b == 'f':
		return Bool
	case b == 'n':
		return Null
	}
	return None
}
