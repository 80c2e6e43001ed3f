// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpull_test

import (
	"fmt"
	"log"

	"github.com/creachadair/jpull"
)

func Example() {
	d := jpull.New(4)
	d.Begin(`{"name": "pie", "radius": 2}`)

	d.OpenObject()
	d.ReadString() // "name"
	name, _ := d.ReadString()
	d.ReadString() // "radius"
	radius, _ := d.ReadUint64()
	d.CloseObject()
	if err := d.End(); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}

	fmt.Printf("a %s of radius %d\n", name, radius)
	// Output:
	// a pie of radius 2
}

func ExampleDecoder_More() {
	d := jpull.New(1)
	d.Begin(`[1, 2, 3, 5, 8]`)

	d.OpenArray()
	var sum uint64
	for d.More() {
		v, _ := d.ReadUint64()
		sum += v
	}
	d.CloseArray()
	if err := d.End(); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}

	fmt.Println("sum:", sum)
	// Output:
	// sum: 19
}

func ExampleDecoder_Peek() {
	d := jpull.New(1)
	d.Begin(`[null, true, 3.5, "four"]`)

	d.OpenArray()
	for d.More() {
		fmt.Println(d.Peek())
		d.Skip()
	}
	d.CloseArray()
	if err := d.End(); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}
	// Output:
	// null
	// bool
	// number
	// string
}

func ExampleDecoder_Skip() {
	d := jpull.New(4)
	d.Begin(`{"keep": "this value", "skip": [{"deeply": ["nested", "stuff"]}], "and": null}`)

	d.OpenObject()
	for d.More() {
		key, _ := d.ReadString()
		if key == "keep" {
			v, _ := d.ReadString()
			fmt.Println(v)
		} else {
			d.Skip()
		}
	}
	d.CloseObject()
	if err := d.End(); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}
	// Output:
	// this value
}

// A decode loop does not need to check errors at each step: the first failure
// latches, later calls return it unchanged, and End reports it at the end.
func ExampleDecoder_End() {
	d := jpull.New(1)
	d.Begin(`[1, 2 3]`)

	d.OpenArray()
	for d.More() {
		d.ReadUint64()
	}
	d.CloseArray()
	if err := d.End(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// invalid JSON input: unexpected '3' in array (offset 6)
}

func ExampleDecoder_BeginHuJSON() {
	input := []byte(`{
	   // The port the server listens on.
	   "port": 8080,
	}`)

	d := jpull.New(1)
	if err := d.BeginHuJSON(input); err != nil {
		log.Fatalf("Invalid input: %v", err)
	}
	d.OpenObject()
	d.ReadString() // "port"
	port, _ := d.ReadUint64()
	d.CloseObject()
	if err := d.End(); err != nil {
		log.Fatalf("Decode failed: %v", err)
	}

	fmt.Println("port:", port)
	// Output:
	// port: 8080
}
