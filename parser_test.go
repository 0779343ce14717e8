// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

package simplejson_test

import (
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/guillheu/simplejson"
)

// numEq compares the exact-integer arms of numbers by value.
var numEq = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func mustParse(t *testing.T, input string) simplejson.Value {
	t.Helper()
	v, err := simplejson.Parse(input)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}

func vint(lit string, z int64) simplejson.Number {
	return simplejson.Number{Literal: lit, Int: big.NewInt(z)}
}

func vfloat(lit string, f float64) simplejson.Number {
	return simplejson.Number{Literal: lit, Float: f}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  simplejson.Value
	}{
		// Constants
		{`true`, simplejson.Bool(true)},
		{`false`, simplejson.Bool(false)},
		{`null`, simplejson.Null{}},

		// Strings
		{`""`, simplejson.String("")},
		{`"a b c"`, simplejson.String("a b c")},
		{`"\u1000\u2000"`, simplejson.String("\u1000\u2000")},

		// Numbers
		{`0`, vint("0", 0)},
		{`-0`, vint("-0", 0)},
		{`15`, vint("15", 15)},
		{`2.5`, vfloat("2.5", 2.5)},

		// Arrays
		{`[]`, simplejson.Array{}},
		{`[999, 111]`, simplejson.Array{vint("999", 999), vint("111", 111)}},
		{`[true, [false]]`, simplejson.Array{
			simplejson.Bool(true),
			simplejson.Array{simplejson.Bool(false)},
		}},

		// Objects
		{`{}`, simplejson.Object{}},
		{`{"test": null}`, simplejson.Object{"test": simplejson.Null{}}},
		{`{"a": {"b": []}, "c": "d"}`, simplejson.Object{
			"a": simplejson.Object{"b": simplejson.Array{}},
			"c": simplejson.String("d"),
		}},

		// Insignificant whitespace
		{" \r\n\t[\n1\t,\r 2 ]  ", simplejson.Array{vint("1", 1), vint("2", 2)}},
	}
	for _, test := range tests {
		got, err := simplejson.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, numEq); diff != "" {
			t.Errorf("Parse %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  simplejson.ParseError
	}{
		// Exhausted input
		{``, simplejson.ParseError{Kind: simplejson.UnexpectedEnd}},
		{`[`, simplejson.ParseError{Kind: simplejson.UnexpectedEnd}},
		{"[\n\n\r\t ", simplejson.ParseError{Kind: simplejson.UnexpectedEnd}},
		{`{"key"`, simplejson.ParseError{Kind: simplejson.UnexpectedEnd}},
		{`"abc`, simplejson.ParseError{Kind: simplejson.UnexpectedEnd}},

		// Structural errors
		{`x`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: 'x', Pos: 0}},
		{`tru`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: 't', Pos: 0}},
		{`nul`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: 'n', Pos: 0}},
		{`[,]`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: ',', Pos: 1}},
		{`[1,]`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: ']', Pos: 3}},
		{`[1 2]`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '2', Pos: 3}},
		{`[1,,2]`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: ',', Pos: 3}},
		{`{"key": }`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '}', Pos: 8}},
		{`{"a":1,}`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '}', Pos: 7}},
		{`{"a" 1}`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '1', Pos: 5}},
		{`{1: 2}`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '1', Pos: 1}},
		{`{"a":1 "b":2}`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '"', Pos: 7}},

		// Trailing garbage after a complete document
		{`[] []`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '[', Pos: 3}},
		{`1 2`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '2', Pos: 2}},
		{`nullx`, simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: 'x', Pos: 4}},

		// Malformed numbers
		{`[-]`, simplejson.ParseError{
			Kind: simplejson.InvalidNumber, Text: `-]`, Context: `-]`, Pos: 1,
		}},
		{`01`, simplejson.ParseError{
			Kind: simplejson.InvalidNumber, Text: `01`, Context: `01`, Pos: 0,
		}},
		{`[1.]`, simplejson.ParseError{
			Kind: simplejson.InvalidNumber, Text: `1.]`, Context: `1.]`, Pos: 1,
		}},
		{`[1e]`, simplejson.ParseError{
			Kind: simplejson.InvalidNumber, Text: `1e]`, Context: `1e]`, Pos: 1,
		}},
		{`[1e+]`, simplejson.ParseError{
			Kind: simplejson.InvalidNumber, Text: `1e+]`, Context: `1e+]`, Pos: 1,
		}},

		// String errors
		{"\"\x05\"", simplejson.ParseError{
			Kind: simplejson.InvalidCharacter, Char: 5, Context: "\x05\"", Pos: 1,
		}},
		{`"\x"`, simplejson.ParseError{
			Kind: simplejson.InvalidEscapeCharacter, Char: 'x', Context: `x"`, Pos: 2,
		}},
		{`"\ud800"`, simplejson.ParseError{
			Kind: simplejson.InvalidHex, Text: `d800`, Context: `d800"`, Pos: 3,
		}},
	}
	for _, test := range tests {
		v, err := simplejson.Parse(test.input)
		if err == nil {
			t.Errorf("Parse %#q: got %+v, wanted error", test.input, v)
			continue
		}
		got, ok := err.(*simplejson.ParseError)
		if !ok {
			t.Errorf("Parse %#q: error has type %T, not *ParseError", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, *got); diff != "" {
			t.Errorf("Parse %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

// Insignificant whitespace must never change the resulting value.
func TestWhitespaceIdempotence(t *testing.T) {
	plain := mustParse(t, `[1,2]`)
	spaced := mustParse(t, "  [ 1 , 2 ]  ")
	if diff := cmp.Diff(plain, spaced, numEq); diff != "" {
		t.Errorf("Whitespace changed the value: (-plain, +spaced)\n%s", diff)
	}
}

func TestDuplicateKeys(t *testing.T) {
	got := mustParse(t, `{"1":true, "2":false, "1":123}`)
	want := simplejson.Object{
		"1": vint("123", 123),
		"2": simplejson.Bool(false),
	}
	if diff := cmp.Diff(want, got, numEq); diff != "" {
		t.Errorf("Later duplicate key should win: (-want, +got)\n%s", diff)
	}
}

func TestMaxDepth(t *testing.T) {
	p := simplejson.Parser{MaxDepth: 3}

	if _, err := p.Parse(`[[[1]]]`); err != nil {
		t.Errorf("Parse at limit: unexpected error: %v", err)
	}

	v, err := p.Parse(`[[[[1]]]]`)
	if err == nil {
		t.Fatalf("Parse beyond limit: got %+v, wanted error", v)
	}
	want := simplejson.ParseError{Kind: simplejson.NestingTooDeep, Pos: 4}
	if diff := cmp.Diff(want, *err.(*simplejson.ParseError)); diff != "" {
		t.Errorf("Parse beyond limit: (-want, +got)\n%s", diff)
	}

	// The default limit must hold for adversarially deep input.
	deep := strings.Repeat("[", 20000)
	if _, err := simplejson.Parse(deep); err == nil {
		t.Error("Parse deep input: unexpected success")
	} else if pe := err.(*simplejson.ParseError); pe.Kind != simplejson.NestingTooDeep {
		t.Errorf("Parse deep input: got kind %v, want %v", pe.Kind, simplejson.NestingTooDeep)
	}
}

func TestByteOrderMark(t *testing.T) {
	tests := []struct {
		mode  simplejson.UnicodeMode
		input string
		ok    bool
	}{
		{simplejson.ModeStrict, "\uFEFF{}", false},
		{simplejson.ModeStrict, "\uFEFF[]", false},
		{simplejson.ModeUTF16, "\uFEFF{}", true},
		{simplejson.ModeUTF16, "\uFEFF {\"a\": 1}", true},
		{simplejson.ModeUTF16, "\uFEFF[]", false},
		{simplejson.ModeUTF16, "\uFEFF1", false},
	}
	for _, test := range tests {
		p := simplejson.Parser{Mode: test.mode}
		v, err := p.Parse(test.input)
		if test.ok {
			if err != nil {
				t.Errorf("Parse %#q (mode %d): unexpected error: %v", test.input, test.mode, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("Parse %#q (mode %d): got %+v, wanted error", test.input, test.mode, v)
			continue
		}
		want := simplejson.ParseError{Kind: simplejson.UnexpectedCharacter, Char: '\uFEFF', Pos: 0}
		if diff := cmp.Diff(want, *err.(*simplejson.ParseError)); diff != "" {
			t.Errorf("Parse %#q (mode %d): (-want, +got)\n%s", test.input, test.mode, diff)
		}
	}
}

// The engine reads immutable input and builds a fresh tree per call, so
// concurrent parses of the same input must all agree.
func TestConcurrentParse(t *testing.T) {
	const input = `{"xs": [1, 2.5, "three", null], "ok": true}`
	want := mustParse(t, input)

	var wg sync.WaitGroup
	const goroutines = 64
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := simplejson.Parse(input)
			if err != nil {
				t.Errorf("Parse failed: %v", err)
				return
			}
			if diff := cmp.Diff(want, got, numEq); diff != "" {
				t.Errorf("Concurrent parse disagrees: (-want, +got)\n%s", diff)
			}
		}()
	}
	wg.Wait()
}
