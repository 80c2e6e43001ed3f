// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jpull implements a pull-mode JSON decoder over an in-memory
// buffer.
//
// # Decoding
//
// A Decoder does not parse a document into a tree. Instead, the caller walks
// the input by asking for each value by type, in the order the input is
// expected to contain them, mirroring the shape of the data the caller
// already knows:
//
//	d := jpull.New(4)
//	d.Begin(`{"name": "pie", "radius": 2}`)
//	d.OpenObject()
//	d.ReadString()            // "name"
//	name, _ := d.ReadString() // "pie"
//	d.ReadString()            // "radius"
//	r, _ := d.ReadUint64()    // 2
//	d.CloseObject()
//	if err := d.End(); err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// The decoder checks the punctuation between values as reads proceed, so a
// completed session certifies that the consumed input was syntactically valid
// JSON. Input whose shape is not known in advance can be probed with Peek and
// More, or discarded with Skip:
//
//	d.OpenArray()
//	for d.More() {
//	   if d.Peek() == jpull.Number {
//	      v, _ := d.ReadFloat64()
//	      total += v
//	   } else {
//	      d.Skip()
//	   }
//	}
//	d.CloseArray()
//
// # Sessions
//
// A Decoder is constructed once, with the maximum container nesting depth it
// will allow; that bound fixes its memory footprint. Each input buffer is
// decoded in one session: Begin attaches the buffer, reads consume its
// values, and End detaches it, verifying that nothing but whitespace remains
// and no container is left open. A decoder may run any number of sessions in
// sequence, but only one at a time, and it is not safe for concurrent use.
//
// # Errors
//
// Every failure is reported as a *DecodeError recording the byte offset of
// the problem and wrapping one of the sentinel errors ErrInvalidJSON,
// ErrInvalidType, ErrDepthOverflow, or ErrUnrecoverable; use errors.Is to
// classify a failure.
//
// The first error a decoder reports is latched: every subsequent method call
// returns the identical error without reading further. A straight-line
// decode can therefore omit the error check on each read and inspect only
// the result of End, which reports the latched error if any read failed:
//
//	d.Begin(input)
//	d.OpenArray()
//	a, _ := d.ReadUint64()
//	b, _ := d.ReadUint64()
//	d.CloseArray()
//	if err := d.End(); err != nil {
//	   log.Fatalf("Decode failed: %v", err) // the first error, wherever it arose
//	}
//
// A decoder with a latched error is permanently inert; discard it and
// construct a new one.
//
// # HuJSON
//
// BeginHuJSON begins a session over input in the HuJSON dialect ("human
// JSON", JWCC), standardizing comments and trailing commas away before
// decoding. See https://github.com/tailscale/hujson for the dialect.
package jpull
