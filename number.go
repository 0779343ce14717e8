// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxExponent bounds the exponent magnitude admitted on the exact-integer
// paths. A larger exponent cannot be represented and fails as InvalidNumber.
const maxExponent = 100000

// decodeNumber decodes a numeric literal. The literal is decomposed into an
// optional sign, integer digits, optional fraction digits, and an optional
// signed exponent; the decomposition then selects either an exact integer or
// an approximate floating-point representation. The re-joined literal text is
// retained on the result regardless of which representation was chosen.
//
// Precondition: the cursor is positioned at a '-' or a digit.
func decodeNumber(c *cursor) (Number, *ParseError) {
	start, ctx := c.pos, c.rest()
	fail := func() *ParseError {
		return &ParseError{Kind: InvalidNumber, Text: ctx, Context: ctx, Pos: start}
	}

	var neg bool
	if ch, _ := c.peek(); ch == '-' {
		neg = true
		c.next()
	}

	// Integer digits. At least one is required, and a leading zero is only
	// permitted when it is the sole digit: 0 and 0.1 are fine, 01 is not.
	intDigits := readDigits(c)
	if intDigits == "" {
		return Number{}, fail()
	}
	if len(intDigits) > 1 && intDigits[0] == '0' {
		return Number{}, fail()
	}

	var fracDigits string
	hasFrac := false
	if ch, ok := c.peek(); ok && ch == '.' {
		c.next()
		fracDigits = readDigits(c)
		if fracDigits == "" {
			return Number{}, fail()
		}
		hasFrac = true
	}

	var expMark, expSign rune
	var expDigits string
	hasExp := false
	if ch, ok := c.peek(); ok && (ch == 'e' || ch == 'E') {
		expMark = ch
		c.next()
		if ch, ok := c.peek(); ok && (ch == '+' || ch == '-') {
			expSign = ch
			c.next()
		}
		expDigits = readDigits(c)
		if expDigits == "" {
			return Number{}, fail()
		}
		hasExp = true
	}

	// Re-join the parsed parts into the retained literal text.
	var lit strings.Builder
	if neg {
		lit.WriteByte('-')
	}
	lit.WriteString(intDigits)
	if hasFrac {
		lit.WriteByte('.')
		lit.WriteString(fracDigits)
	}
	if hasExp {
		lit.WriteRune(expMark)
		if expSign != 0 {
			lit.WriteRune(expSign)
		}
		lit.WriteString(expDigits)
	}
	literal := lit.String()

	exact := func(digits string, shift int) (Number, *ParseError) {
		return Number{Literal: literal, Int: exactInt(neg, digits, shift)}, nil
	}
	approx := func(v float64) (Number, *ParseError) {
		if neg {
			v = -v
		}
		return Number{Literal: literal, Float: v}, nil
	}

	if !hasExp {
		if !hasFrac {
			return exact(intDigits, 0)
		}
		return approx(decimalFloat(intDigits, fracDigits))
	}

	// The exponent digits may be arbitrarily long. expInt is valid only while
	// expErr is nil; expFlt saturates to +Inf beyond the float64 range, keeping
	// the scaled results deterministic. Exponent expansion on the exact paths
	// is additionally capped by maxExponent.
	expInt, expErr := strconv.Atoi(expDigits)
	intOK := expErr == nil && expInt <= maxExponent
	expFlt, _ := strconv.ParseFloat(expDigits, 64)
	if expSign == '-' {
		expInt, expFlt = -expInt, -expFlt
	}

	if !hasFrac {
		if expSign == '-' {
			// A negative exponent still yields an exact integer when the
			// integer digits end with enough zeros to absorb it. Absorption
			// only shortens the digit string, so the expansion cap does not
			// apply; an Atoi overflow means the exponent exceeds any possible
			// zero run, so that case falls through to the float path.
			if k := -expInt; expErr == nil && trailingZeros(intDigits) >= k {
				return exact(intDigits[:len(intDigits)-k], 0)
			}
			return approx(scaledFloat(intDigits, "", expFlt, literal))
		}
		if !intOK {
			return Number{}, fail()
		}
		return exact(intDigits, expInt)
	}

	if expSign != '-' {
		// A positive exponent at least as large as the fraction absorbs the
		// fraction entirely, keeping the value exact.
		if intOK && expInt >= len(fracDigits) {
			return exact(intDigits+fracDigits, expInt-len(fracDigits))
		}
		if !intOK {
			return Number{}, fail()
		}
	}
	return approx(scaledFloat(intDigits, fracDigits, expFlt, literal))
}

// readDigits consumes a run of decimal digits, which may be empty.
func readDigits(c *cursor) string {
	var sb strings.Builder
	for {
		ch, ok := c.peek()
		if !ok || !isDigit(ch) {
			return sb.String()
		}
		sb.WriteByte(byte(ch))
		c.next()
	}
}

// exactInt builds the exact integer digits * 10^shift, negated when neg.
// The power of ten is computed by integer exponentiation, never through a
// float, so no precision is lost.
func exactInt(neg bool, digits string, shift int) *big.Int {
	if digits == "" {
		digits = "0"
	}
	z, _ := new(big.Int).SetString(digits, 10)
	if shift > 0 {
		z.Mul(z, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
	}
	if neg {
		z.Neg(z)
	}
	return z
}

// scaledFloat computes the value of int.frac scaled by 10^exp. Scaling an
// overflowed mantissa by an underflowed power (or vice versa) multiplies an
// infinity with a zero; when that degenerates to NaN, the unsigned literal is
// re-parsed whole so the two magnitudes cancel before rounding.
func scaledFloat(intDigits, fracDigits string, exp float64, literal string) float64 {
	v := decimalFloat(intDigits, fracDigits) * math.Pow(10, exp)
	if math.IsNaN(v) {
		v, _ = strconv.ParseFloat(strings.TrimPrefix(literal, "-"), 64)
	}
	return v
}

// decimalFloat parses "int.frac" directly as a decimal float literal.
func decimalFloat(intDigits, fracDigits string) float64 {
	lit := intDigits
	if fracDigits != "" {
		lit += "." + fracDigits
	}
	v, _ := strconv.ParseFloat(lit, 64)
	return v
}

// trailingZeros counts the zero digits at the end of digits.
func trailingZeros(digits string) int {
	return len(digits) - len(strings.TrimRight(digits, "0"))
}
