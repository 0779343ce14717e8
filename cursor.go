// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

import "go4.org/mem"

// A cursor is a read-only view over the unconsumed remainder of the input.
// It tracks the number of Unicode scalar values consumed so that errors can
// report exact offsets.
type cursor struct {
	src mem.RO // the complete input
	off int    // byte offset of the unconsumed remainder
	pos int    // scalar values consumed so far
}

func newCursor(input string) *cursor { return &cursor{src: mem.S(input)} }

// eof reports whether the input is exhausted.
func (c *cursor) eof() bool { return c.off >= c.src.Len() }

// peek returns the next rune of the input without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	ch, _ := mem.DecodeRune(c.src.SliceFrom(c.off))
	return ch, true
}

// next consumes and returns the next rune of the input.
func (c *cursor) next() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	ch, nb := mem.DecodeRune(c.src.SliceFrom(c.off))
	if nb == 0 {
		nb = 1
	}
	c.off += nb
	c.pos++
	return ch, true
}

// skipSpace discards a run of insignificant whitespace. Only space, carriage
// return, line feed, and tab are whitespace; anything else is significant.
func (c *cursor) skipSpace() {
	for {
		ch, ok := c.peek()
		if !ok || !isSpace(ch) {
			return
		}
		c.next()
	}
}

// skipLiteral consumes lit if the remaining input begins with it, and reports
// whether it did. lit must be ASCII.
func (c *cursor) skipLiteral(lit string) bool {
	rem := c.src.SliceFrom(c.off)
	if rem.Len() < len(lit) || !rem.SliceTo(len(lit)).Equal(mem.S(lit)) {
		return false
	}
	c.off += len(lit)
	c.pos += len(lit)
	return true
}

// rest returns a copy of the unconsumed remainder of the input.
func (c *cursor) rest() string { return c.src.SliceFrom(c.off).StringCopy() }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
