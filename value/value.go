// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value is the operation engine: it evaluates binary operators and
// unary functions on float64 operands and classifies every failure.
// Nothing in this package holds state; settings such as the angle unit
// arrive as arguments.
package value // import "robpike.io/calc/value"

import (
	"errors"
	"math"
)

// MaxMagnitude bounds every value the engine returns.
const MaxMagnitude = 1e308

// Epsilon is the float64 machine epsilon. Smaller magnitudes display as zero.
const Epsilon = 2.220446049250313e-16

// Kind classifies an engine failure.
type Kind int

const (
	MathError Kind = iota // catch-all; the zero Kind
	DivisionByZero
	DomainError
	Overflow
	SyntaxError
)

var kindText = [...]string{
	MathError:      "Mathematical error",
	DivisionByZero: "Cannot divide by zero",
	DomainError:    "Input outside function domain",
	Overflow:       "Number too large",
	SyntaxError:    "Syntax error",
}

var kindName = [...]string{
	MathError:      "MathError",
	DivisionByZero: "DivisionByZero",
	DomainError:    "DomainError",
	Overflow:       "Overflow",
	SyntaxError:    "SyntaxError",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return "Kind(?)"
	}
	return kindName[k]
}

// Message is the human-readable text shown on the display for k.
func (k Kind) Message() string {
	if k < 0 || int(k) >= len(kindText) {
		return kindText[MathError]
	}
	return kindText[k]
}

// Error is the error type returned by the engine. Its text is what a
// calculator displays; Op names the operation that failed.
type Error struct {
	Kind Kind
	Op   string
}

func (e *Error) Error() string {
	return e.Kind.Message()
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrDivisionByZero) works regardless of Op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMath           = &Error{Kind: MathError}
	ErrDivisionByZero = &Error{Kind: DivisionByZero}
	ErrDomain         = &Error{Kind: DomainError}
	ErrOverflow       = &Error{Kind: Overflow}
	ErrSyntax         = &Error{Kind: SyntaxError}
)

func errorf(k Kind, op string) error {
	return &Error{Kind: k, Op: op}
}

// KindOf returns the Kind of err, or MathError if err did not come from
// the engine.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return MathError
}

// check range-checks a result. NaN is reported as nan, anything beyond
// MaxMagnitude (including the infinities) as Overflow.
func check(op string, x float64, nan Kind) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, errorf(nan, op)
	case math.IsInf(x, 0), math.Abs(x) > MaxMagnitude:
		return 0, errorf(Overflow, op)
	}
	return x, nil
}

// Finite reports whether x is a value the engine would accept as a result.
func Finite(x float64) bool {
	_, err := check("", x, MathError)
	return err == nil
}
