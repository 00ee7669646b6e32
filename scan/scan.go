// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns calculator input text into tokens and tokens into
// intents. The text is a sequence of keypresses spelled as words:
//
//	12.5 + 3 =      # digits, an operator, equals
//	2 sqrt ms       # a unary function, then memory store
//	rad pi cos      # switch to radians, enter π, take the cosine
//	prec=4 e        # show four significant digits
//
// A '#' starts a comment that runs to the end of the line.
package scan // import "robpike.io/calc/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF     Type = iota // zero value so closed channel delivers EOF
	Error               // error occurred; value is text of error
	Newline
	Number     // digits and at most one decimal point
	Operator   // + - * / ^ % = and their keypad glyphs
	Identifier // a word naming a key: sqrt, ms, pi, deg
	Setting    // word=value, as in prec=4
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Newline:    "Newline",
	Number:     "Number",
	Operator:   "Operator",
	Identifier: "Identifier",
	Setting:    "Setting",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// operators holds the single-rune operators.
const operators = "+-*/^%=×÷−"

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	r         io.ByteReader
	done      bool
	name      string // the name of the input; used only for error reports
	buf       []byte // I/O buffer, re-used.
	input     string // the line of text being scanned.
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	line      int    // line number in input
	lineStart int    // line on which the most recent Line call began
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner.
func New(name string, r io.ByteReader) *Scanner {
	return &Scanner{
		r:    r,
		name: name,
		line: 1,
	}
}

// Name returns the name of the input.
func (l *Scanner) Name() string {
	return l.name
}

// Loc returns the location of the line most recently returned by Line,
// in the form "name:line: ".
func (l *Scanner) Loc() string {
	return fmt.Sprintf("%s:%d: ", l.name, l.lineStart)
}

// loadLine reads the next line of input into l.input.
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' {
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	l.input = string(l.buf)
	l.start = 0
	l.pos = 0
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
// It never crosses a line boundary: every token ends at or before a newline.
func (l *Scanner) peek() rune {
	if l.pos == len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	l.pos -= l.lastWidth
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.line, l.input[l.start:l.pos]}
	if t == Newline {
		l.line++
	}
	l.start = l.pos
	return nil
}

// errorf returns an error token and discards the rest of the line.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, fmt.Sprintf("%s:%d: %s", l.name, l.line, fmt.Sprintf(format, args...))}
	l.pos = len(l.input)
	if strings.HasSuffix(l.input, "\n") {
		l.pos--
	}
	l.start = l.pos
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
func lexComment(l *Scanner) stateFn {
	for {
		switch l.peek() {
		case '\n':
			l.start = l.pos
			l.next()
			return l.emit(Newline)
		case eof:
			l.start = l.pos
			return lexAny
		}
		l.next()
	}
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case r == '#':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case strings.ContainsRune(operators, r):
		return l.emit(Operator)
	case isAlphaNumeric(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexNumber scans a run of digits with at most one decimal point.
func lexNumber(l *Scanner) stateFn {
	dot := false
	for {
		r := l.peek()
		if r == '.' {
			if dot {
				return l.errorf("bad number %q", l.input[l.start:l.pos+1])
			}
			dot = true
		} else if !isDigit(r) {
			break
		}
		l.next()
	}
	if !l.atTerminator() {
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos+utf8.RuneLen(l.peek())])
	}
	return l.emit(Number)
}

// lexIdentifier scans an alphanumeric word. The memory keys m+ and m-
// carry their sign, and a word followed directly by '=' is a setting.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	word := l.input[l.start:l.pos]
	if strings.EqualFold(word, "m") {
		if r := l.peek(); r == '+' || r == '-' || r == '−' {
			l.next()
			return l.emit(Identifier)
		}
	}
	if l.peek() == '=' {
		l.next()
		if r := l.peek(); r == eof || r == '\n' || isSpace(r) {
			return l.errorf("missing value for %s", word)
		}
		for r := l.peek(); r != eof && r != '\n' && !isSpace(r) && r != '#'; r = l.peek() {
			l.next()
		}
		return l.emit(Setting)
	}
	if !l.atTerminator() {
		return l.errorf("bad character %#U", l.peek())
	}
	return l.emit(Identifier)
}

// atTerminator reports whether the input is at valid termination character to
// appear after an identifier or number element.
func (l *Scanner) atTerminator() bool {
	r := l.peek()
	return r == eof || r == '\n' || isSpace(r) || r == '#' || strings.ContainsRune(operators, r)
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
