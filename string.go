// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

import (
	"strings"

	"go4.org/mem"

	"github.com/guillheu/simplejson/internal/escape"
)

// decodeString decodes a quoted string literal, expanding escape sequences.
// Precondition: the cursor is positioned at the opening quote.
func decodeString(c *cursor) (String, *ParseError) {
	c.next() // opening quote

	var sb strings.Builder
	for {
		pos := c.pos
		ch, ok := c.next()
		if !ok {
			return "", &ParseError{Kind: UnexpectedEnd}
		}
		switch {
		case ch == '"':
			return String(sb.String()), nil
		case ch == '\\':
			if err := decodeEscape(c, &sb); err != nil {
				return "", err
			}
		case ch < ' ':
			// Raw C0 control characters must be escaped.
			return "", &ParseError{
				Kind: InvalidCharacter, Char: ch, Context: string(ch) + c.rest(), Pos: pos,
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

// decodeEscape decodes the remainder of a backslash escape, the backslash
// itself having been consumed, and appends the replacement text to sb.
func decodeEscape(c *cursor, sb *strings.Builder) *ParseError {
	pos := c.pos
	ch, ok := c.next()
	if !ok {
		return &ParseError{Kind: UnexpectedEnd}
	}
	if r, ok := escape.Simple(ch); ok {
		sb.WriteRune(r)
		return nil
	}
	if ch != 'u' {
		return &ParseError{
			Kind: InvalidEscapeCharacter, Char: ch, Context: string(ch) + c.rest(), Pos: pos,
		}
	}

	// A \u escape carries exactly 4 hex digits encoding a 16-bit value.
	hexPos, hexCtx := c.pos, c.rest()
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		ch, ok := c.next()
		if !ok {
			return &ParseError{Kind: InvalidHex, Text: hex.String(), Context: hexCtx, Pos: hexPos}
		}
		hex.WriteRune(ch)
	}
	v, err := escape.ParseHex(mem.S(hex.String()))
	if err != nil {
		return &ParseError{Kind: InvalidHex, Text: hex.String(), Context: hexCtx, Pos: hexPos}
	}
	switch {
	case escape.IsZeroWidth(v):
		// U+FFFE and U+FFFF contribute no text.
	case escape.IsSurrogate(v):
		// Surrogates are rejected individually; properly paired surrogate
		// escapes are not recombined into a single code point.
		return &ParseError{Kind: InvalidHex, Text: hex.String(), Context: hexCtx, Pos: hexPos}
	default:
		sb.WriteRune(rune(v))
	}
	return nil
}
