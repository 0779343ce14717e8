// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

import "math/big"

// A Value is the decoded in-memory representation of a single JSON value.
// The concrete type is one of String, Number, Bool, Null, Array, or Object.
type Value interface{ isValue() }

// A String is a JSON string value, fully unescaped.
type String string

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// Null represents the JSON null constant.
type Null struct{}

// An Array is an ordered sequence of values. An empty array is a distinct
// valid value, not the absence of one.
type Array []Value

// An Object maps member keys to values. Keys are unique; when the source
// contains duplicate keys the last occurrence wins.
type Object map[string]Value

// A Number is a JSON numeric value. A number carries exactly one of two
// representations: an exact integer, when the literal is mathematically an
// integer and no rounding occurred, or an approximate floating-point value
// otherwise. Literal preserves the source text of the literal in either case.
type Number struct {
	Literal string   // the source text of the literal
	Int     *big.Int // exact integer value, or nil if the value is approximate
	Float   float64  // approximate value; meaningful only when Int is nil
}

// IsInt reports whether n carries an exact integer value.
func (n Number) IsInt() bool { return n.Int != nil }

// Int64 returns the value of n as an int64, if n is an exact integer that
// fits in 64 bits.
func (n Number) Int64() (int64, bool) {
	if n.Int == nil || !n.Int.IsInt64() {
		return 0, false
	}
	return n.Int.Int64(), true
}

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (Array) isValue()  {}
func (Object) isValue() {}
