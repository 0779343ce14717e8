// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

import "fmt"

// ErrorKind is the type of a parse failure. The set of kinds is closed.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedEnd          ErrorKind = 1 + iota // input ended while a value was incomplete
	UnexpectedCharacter                         // structurally invalid character
	InvalidCharacter                            // raw control character inside a string
	InvalidEscapeCharacter                      // unrecognized character after a backslash
	InvalidHex                                  // \uXXXX escape not decodable to a scalar value
	InvalidNumber                               // numeric literal rejected by the grammar
	NestingTooDeep                              // arrays/objects nested beyond the depth limit
)

var kindStr = [...]string{
	UnexpectedEnd:          "unexpected end of input",
	UnexpectedCharacter:    "unexpected character",
	InvalidCharacter:       "invalid character",
	InvalidEscapeCharacter: "invalid escape character",
	InvalidHex:             "invalid Unicode escape",
	InvalidNumber:          "invalid number",
	NestingTooDeep:         "nesting too deep",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v < 1 || v >= len(kindStr) {
		return "invalid error kind"
	}
	return kindStr[v]
}

// A ParseError is the concrete type of all errors reported by Parse.
// Parsing stops at the first error; no partial value is returned.
//
// Pos counts the Unicode scalar values consumed from the start of the input
// before the offending lexeme. Context holds the unconsumed remainder of the
// input starting at the offending character, so two textually identical
// offenders followed by different content produce distinguishable errors.
// The fields populated depend on Kind:
//
//	UnexpectedEnd           (none)
//	UnexpectedCharacter     Char, Pos
//	InvalidCharacter        Char, Context, Pos
//	InvalidEscapeCharacter  Char, Context, Pos
//	InvalidHex              Text, Context, Pos
//	InvalidNumber           Text, Context, Pos
//	NestingTooDeep          Pos
type ParseError struct {
	Kind    ErrorKind
	Char    rune   // the offending character
	Text    string // the offending lexeme
	Context string // unconsumed input from the offending character
	Pos     int    // scalar values consumed before the offending lexeme
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return "unexpected end of input"
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected %q (offset %d)", e.Char, e.Pos)
	case InvalidCharacter:
		return fmt.Sprintf("unescaped control %q in string (offset %d)", e.Char, e.Pos)
	case InvalidEscapeCharacter:
		return fmt.Sprintf("invalid %q after escape (offset %d)", e.Char, e.Pos)
	case InvalidHex:
		return fmt.Sprintf("invalid Unicode escape %q (offset %d)", e.Text, e.Pos)
	case InvalidNumber:
		return fmt.Sprintf("invalid number %q (offset %d)", e.Text, e.Pos)
	case NestingTooDeep:
		return fmt.Sprintf("nesting too deep (offset %d)", e.Pos)
	}
	return "invalid parse error"
}
