// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/calc/state"
	"robpike.io/calc/value"
)

func tokens(text string) []Token {
	l := New("test", strings.NewReader(text))
	var toks []Token
	for {
		tok := l.Next()
		if tok.Type == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestTokens(t *testing.T) {
	toks := tokens("12.5+3 = # sum\nsqrt m+ prec=4\n")
	var got []string
	for _, tok := range toks {
		got = append(got, tok.String())
	}
	assert.Equal(t, []string{
		`Number: "12.5"`,
		`Operator: "+"`,
		`Number: "3"`,
		`Operator: "="`,
		`Newline: "\n"`,
		`Identifier: "sqrt"`,
		`Identifier: "m+"`,
		`Setting: "prec=4"`,
		`Newline: "\n"`,
	}, got)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[5].Line)
}

func TestTokenErrors(t *testing.T) {
	for _, text := range []string{"1.2.3", "12abc", "$", "prec= 4"} {
		toks := tokens(text + "\n")
		require.NotEmpty(t, toks, text)
		assert.Equal(t, Error, toks[0].Type, text)
		assert.Contains(t, toks[0].Text, "test:1:", text)
		assert.Equal(t, Newline, toks[len(toks)-1].Type, text)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("12 + 3.5 =\n2 sqrt ms\nrad pi cos\nprec=4 angle=grad %")
	require.NoError(t, err)
	assert.Equal(t, []state.Intent{
		state.Digit{Char: '1'},
		state.Digit{Char: '2'},
		state.Binary{Op: value.Add},
		state.Digit{Char: '3'},
		state.Digit{Char: '.'},
		state.Digit{Char: '5'},
		state.Equals{},
		state.Digit{Char: '2'},
		state.Unary{Fn: value.Sqrt},
		state.Memory{Op: state.MemoryStore},
		state.SetAngleUnit{Unit: value.Radians},
		state.Constant{C: value.Pi},
		state.Unary{Fn: value.Cos},
		state.SetPrecision{Digits: 4},
		state.SetAngleUnit{Unit: value.Gradians},
		state.Unary{Fn: value.Percent},
	}, got)
}

func TestWord(t *testing.T) {
	tests := []struct {
		word string
		want state.Intent
	}{
		{"*", state.Binary{Op: value.Multiply}},
		{"÷", state.Binary{Op: value.Divide}},
		{"mod", state.Binary{Op: value.Modulo}},
		{"power", state.Binary{Op: value.Power}},
		{"neg", state.Unary{Fn: value.Negate}},
		{"LN", state.Unary{Fn: value.Ln}},
		{"factorial", state.Unary{Fn: value.Factorial}},
		{"e", state.Constant{C: value.E}},
		{"phi", state.Constant{C: value.Phi}},
		{"deg", state.SetAngleUnit{Unit: value.Degrees}},
		{"C", state.Clear{}},
		{"ce", state.ClearEntry{}},
		{"bs", state.Backspace{}},
		{"MR", state.Memory{Op: state.MemoryRecall}},
		{"mc", state.Memory{Op: state.MemoryClear}},
		{"m-", state.Memory{Op: state.MemorySubtract}},
	}
	for _, test := range tests {
		got, ok := Word(test.word)
		if assert.True(t, ok, test.word) {
			assert.Equal(t, test.want, got, test.word)
		}
	}
	_, ok := Word("frobnicate")
	assert.False(t, ok)
}

func TestLineErrors(t *testing.T) {
	l := New("in", strings.NewReader("1 + frob 2\nprec=x\n3 =\n"))

	in, err := l.Line()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `in:1: unknown key "frob"`)
	assert.Equal(t, []state.Intent{state.Digit{Char: '1'}, state.Binary{Op: value.Add}}, in)

	_, err = l.Line()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad precision")

	in, err = l.Line()
	require.NoError(t, err)
	assert.Equal(t, []state.Intent{state.Digit{Char: '3'}, state.Equals{}}, in)

	_, err = l.Line()
	assert.Equal(t, io.EOF, err)
}

func TestCommentsAndBlankLines(t *testing.T) {
	l := New("in", strings.NewReader("# nothing\n\n5 # five\n"))
	in, err := l.Line()
	require.NoError(t, err)
	assert.Empty(t, in)
	in, err = l.Line()
	require.NoError(t, err)
	assert.Empty(t, in)
	in, err = l.Line()
	require.NoError(t, err)
	assert.Equal(t, []state.Intent{state.Digit{Char: '5'}}, in)
	_, err = l.Line()
	assert.Equal(t, io.EOF, err)
}
