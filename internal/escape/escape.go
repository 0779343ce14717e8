// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

// Package escape handles the escape sequences of JSON string literals.
package escape

import (
	"fmt"

	"go4.org/mem"
)

// Simple maps a single-character escape to its replacement. It reports false
// for characters that do not form a valid escape, including 'u', which
// introduces a hexadecimal escape instead (see ParseHex).
func Simple(ch rune) (rune, bool) {
	switch ch {
	case '"', '\\', '/':
		return ch, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// ParseHex decodes data as a string of hexadecimal digits.
func ParseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// IsSurrogate reports whether v lies in the UTF-16 surrogate range
// U+D800 through U+DFFF, which no scalar value may occupy on its own.
func IsSurrogate(v int64) bool { return v >= 0xD800 && v <= 0xDFFF }

// IsZeroWidth reports whether v is one of the two noncharacters U+FFFE and
// U+FFFF, which decode to no text at all. They appear in practice as
// byte-order-mark artifacts and are dropped rather than rejected.
func IsZeroWidth(v int64) bool { return v == 0xFFFE || v == 0xFFFF }
