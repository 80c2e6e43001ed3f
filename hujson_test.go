// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull_test

import (
	"testing"

	"github.com/creachadair/jpull"
)

func TestBeginHuJSON(t *testing.T) {
	t.Run("CommentsAndCommas", func(t *testing.T) {
		input := []byte(`{
		   // A line comment.
		   "name": "widget", /* an inline comment */
		   "count": 3,
		}`)
		d := jpull.New(1)
		if err := d.BeginHuJSON(input); err != nil {
			t.Fatalf("BeginHuJSON: %v", err)
		}
		if err := d.OpenObject(); err != nil {
			t.Fatalf("OpenObject: %v", err)
		}
		if key, err := d.ReadString(); err != nil || key != "name" {
			t.Fatalf("ReadString: got %q, %v; want "+`"name", nil`, key, err)
		}
		if v, err := d.ReadString(); err != nil || v != "widget" {
			t.Fatalf("ReadString: got %q, %v; want "+`"widget", nil`, v, err)
		}
		if key, err := d.ReadString(); err != nil || key != "count" {
			t.Fatalf("ReadString: got %q, %v; want "+`"count", nil`, key, err)
		}
		if v, err := d.ReadUint64(); err != nil || v != 3 {
			t.Fatalf("ReadUint64: got %d, %v; want 3, nil", v, err)
		}
		if err := d.CloseObject(); err != nil {
			t.Fatalf("CloseObject: %v", err)
		}
		if err := d.End(); err != nil {
			t.Errorf("End: unexpected error: %v", err)
		}
	})

	t.Run("PlainJSON", func(t *testing.T) {
		// Standard JSON is valid HuJSON and decodes unchanged.
		d := jpull.New(2)
		if err := d.BeginHuJSON([]byte(`[{"a": 1}, {"b": 2}]`)); err != nil {
			t.Fatalf("BeginHuJSON: %v", err)
		}
		if err := walk(d); err != nil {
			t.Errorf("Decode failed: %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		d := jpull.New(1)
		if err := d.BeginHuJSON([]byte(`{"a": }`)); err == nil {
			t.Error("BeginHuJSON: got nil, want error")
		} else {
			t.Logf("BeginHuJSON: got expected error: %v", err)
		}

		// The failure neither opened a session nor latched an error.
		d.Begin(`true`)
		if v, err := d.ReadBool(); err != nil || !v {
			t.Errorf("ReadBool: got %v, %v; want true, nil", v, err)
		}
		if err := d.End(); err != nil {
			t.Errorf("End: unexpected error: %v", err)
		}
	})
}
