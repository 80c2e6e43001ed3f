// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull

// An Interner is a cache of interned strings. Use it with
// [Decoder.CopyString] into a reused buffer so that repeatedly-occurring
// strings, object keys in particular, share one string value instead of
// allocating a copy per occurrence. A nil Interner is ready for use and
// interns nothing.
type Interner map[string]string

// Intern returns the contents of text as a string, reusing the interned copy
// if one is already present.
func (n Interner) Intern(text []byte) string {
	if n == nil {
		return string(text)
	}
	s, ok := n[string(text)]
	if !ok {
		s = string(text)
		n[s] = s
	}
	return s
}
