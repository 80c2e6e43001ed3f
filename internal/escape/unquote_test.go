// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jpull/internal/escape"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"no escapes here", "no escapes here"},
		{"already UTF-8: héllo ☃", "already UTF-8: héllo ☃"},
		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\/b`, "a/b"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`tail\n`, "tail\n"},
		{`\nhead`, "\nhead"},
		{`\n\n\n`, "\n\n\n"},
		{`\u0041\u0042\u0043`, "ABC"},
		{`\u00e9tude`, "étude"},
		{`\u00E9tude`, "étude"},
		{`snow \u2603 man`, "snow ☃ man"},
		{`\u0000`, "\x00"},
		{`\ud83d\ude00`, "😀"},
		{`\uD83D\uDE00`, "😀"},
		{`pair \uD83D\uDE00 end`, "pair 😀 end"},
		{`\uffff`, "\uffff"},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if diff := cmp.Diff(tc.want, string(got)); diff != "" {
			t.Errorf("Unquote(%#q): (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{
		`dangling \`,
		`\q`,
		`\x41`,
		`\u`,
		`\u12`,
		`\u123`,
		`\u123g`,
		`\ud800`,       // lone high surrogate at end of input
		`\ud800 after`, // high surrogate not followed by an escape
		`\ud800\n`,     // high surrogate followed by the wrong escape
		`\ud800A`,      // high surrogate followed by a bare letter
		`\ud800\ud801`, // high surrogate paired with another high
		`\ud83d\ude0`,  // truncated low half
		`\udc00`,       // lone low surrogate
		`low \udfff mid`,
	}
	for _, input := range tests {
		got, err := escape.Unquote(mem.S(input))
		if err == nil {
			t.Errorf("Unquote(%#q): got %#q, want error", input, string(got))
		} else {
			t.Logf("Unquote(%#q): got expected error: %v", input, err)
		}
	}
}
