// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson

// A UnicodeMode selects one of the two supported Unicode behavior profiles.
// The profiles agree on everything except the treatment of a byte-order mark
// at the start of the input.
type UnicodeMode byte

const (
	// ModeStrict applies strict scalar-value semantics: a leading byte-order
	// mark is an unexpected character wherever a token is expected.
	ModeStrict UnicodeMode = iota

	// ModeUTF16 applies UTF-16 code-unit semantics: a leading byte-order mark
	// is ignorable when the document's first token is "{", and an unexpected
	// character otherwise.
	ModeUTF16
)

// DefaultMaxDepth is the nesting depth limit applied when a Parser does not
// set one of its own.
const DefaultMaxDepth = 1000

// A Parser holds configuration for parsing JSON documents. The zero value is
// ready to use and applies ModeStrict with DefaultMaxDepth.
type Parser struct {
	// Mode selects the Unicode behavior profile.
	Mode UnicodeMode

	// MaxDepth bounds the nesting depth of arrays and objects. Input nested
	// more deeply fails with NestingTooDeep rather than exhausting the stack.
	// If zero or negative, DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses input as a single JSON document using the default Parser.
// Exactly one value must be present; anything but whitespace before or after
// it is an error. On failure the returned error is a *ParseError.
func Parse(input string) (Value, error) { return Parser{}.Parse(input) }

// Parse parses input as a single JSON document.
func (p Parser) Parse(input string) (Value, error) {
	c := newCursor(input)
	if p.Mode == ModeUTF16 {
		skipByteOrderMark(c)
	}
	v, err := p.parseValue(c, 0)
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if ch, ok := c.peek(); ok {
		return nil, &ParseError{Kind: UnexpectedCharacter, Char: ch, Pos: c.pos}
	}
	return v, nil
}

// skipByteOrderMark consumes a leading U+FEFF when the first token of the
// document is an opening brace. Otherwise the cursor is left untouched and
// the mark fails as an ordinary unexpected character.
func skipByteOrderMark(c *cursor) {
	if ch, ok := c.peek(); !ok || ch != '\uFEFF' {
		return
	}
	save := *c
	c.next()
	c.skipSpace()
	if ch, ok := c.peek(); !ok || ch != '{' {
		*c = save
	}
}

// parseValue dispatches on the first significant character of a value.
func (p Parser) parseValue(c *cursor, depth int) (Value, *ParseError) {
	max := p.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	if depth > max {
		return nil, &ParseError{Kind: NestingTooDeep, Pos: c.pos}
	}

	c.skipSpace()
	ch, ok := c.peek()
	if !ok {
		return nil, &ParseError{Kind: UnexpectedEnd}
	}
	switch {
	case ch == '{':
		obj, err := p.parseObject(c, depth)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case ch == '[':
		arr, err := p.parseArray(c, depth)
		if err != nil {
			return nil, err
		}
		return arr, nil
	case ch == '"':
		s, err := decodeString(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	case isNumStart(ch):
		n, err := decodeNumber(c)
		if err != nil {
			return nil, err
		}
		return n, nil
	case ch == 't':
		if c.skipLiteral("true") {
			return Bool(true), nil
		}
	case ch == 'f':
		if c.skipLiteral("false") {
			return Bool(false), nil
		}
	case ch == 'n':
		if c.skipLiteral("null") {
			return Null{}, nil
		}
	}
	return nil, unexpected(c)
}

// parseArray parses an array body. Precondition: the cursor is at "[".
func (p Parser) parseArray(c *cursor, depth int) (Array, *ParseError) {
	c.next() // "["

	arr := Array{}
	haveValue := false // a value has been parsed since the last comma
	wantValue := false // a comma has committed us to another value
	for {
		c.skipSpace()
		ch, ok := c.peek()
		if !ok {
			return nil, &ParseError{Kind: UnexpectedEnd}
		}
		switch {
		case ch == ']':
			// Valid only for an empty array or immediately after a value;
			// in particular a trailing comma is rejected here.
			if wantValue {
				return nil, unexpected(c)
			}
			c.next()
			return arr, nil
		case ch == ',':
			if !haveValue {
				return nil, unexpected(c)
			}
			c.next()
			haveValue, wantValue = false, true
		default:
			if haveValue {
				return nil, unexpected(c) // a value where "," or "]" was expected
			}
			v, err := p.parseValue(c, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
			haveValue, wantValue = true, false
		}
	}
}

// States of the object parser.
const (
	objStart      = iota // expect a key or "}"
	objAfterComma        // expect a key only
	objHaveKey           // expect ":"
	objAfterValue        // expect "," or "}"
)

// parseObject parses an object body. Precondition: the cursor is at "{".
func (p Parser) parseObject(c *cursor, depth int) (Object, *ParseError) {
	c.next() // "{"

	obj := Object{}
	state := objStart
	var key string
	for {
		c.skipSpace()
		ch, ok := c.peek()
		if !ok {
			return nil, &ParseError{Kind: UnexpectedEnd}
		}
		switch {
		case ch == '}' && (state == objStart || state == objAfterValue):
			c.next()
			return obj, nil
		case ch == '"' && (state == objStart || state == objAfterComma):
			k, err := decodeString(c)
			if err != nil {
				return nil, err
			}
			key = string(k)
			state = objHaveKey
		case ch == ':' && state == objHaveKey:
			c.next()
			v, err := p.parseValue(c, depth+1)
			if err != nil {
				return nil, err
			}
			obj[key] = v // on a duplicate key, the last occurrence wins
			state = objAfterValue
		case ch == ',' && state == objAfterValue:
			c.next()
			state = objAfterComma
		default:
			return nil, unexpected(c)
		}
	}
}

// unexpected builds an UnexpectedCharacter error at the cursor position.
func unexpected(c *cursor) *ParseError {
	ch, _ := c.peek()
	return &ParseError{Kind: UnexpectedCharacter, Char: ch, Pos: c.pos}
}
