// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

// Package simplejson implements a strict, specification-conformant decoder
// for JSON text.
//
// # Parsing
//
// Parse decodes a string containing exactly one JSON document into a Value,
// the closed union of JSON types:
//
//	v, err := simplejson.Parse(`{"answer": 42}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	obj := v.(simplejson.Object)
//
// Any content other than whitespace before or after the document is an
// error. All failures are reported as values of concrete type *ParseError,
// carrying the kind of failure, the offending lexeme, the unconsumed input
// from the point of failure, and the offset in Unicode scalar values at
// which the failure occurred. Parsing is strict: comments, trailing commas,
// and other common extensions of the grammar are rejected.
//
// # Numbers
//
// A Number records whether its literal is mathematically an integer. A
// literal with no fraction and a non-negative exponent always decodes to an
// exact integer of arbitrary precision, with no round trip through floating
// point; a literal whose fraction or exponent forces rounding decodes to a
// float64. In both cases the original literal text is retained on the value.
//
// # Unicode profiles
//
// A Parser selects one of two Unicode behavior profiles, ModeStrict and
// ModeUTF16, matching the two runtime models this decoder reproduces. Both
// reject escapes in the surrogate range and neither recombines surrogate
// pairs; they differ only in tolerating a byte-order mark before an opening
// brace:
//
//	p := simplejson.Parser{Mode: simplejson.ModeUTF16}
//	v, err := p.Parse(input)
//
// The engine reads immutable input and builds a fresh value tree per call,
// so a Parser may be used from multiple goroutines concurrently.
package simplejson
