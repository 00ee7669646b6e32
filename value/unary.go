// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
)

// Unary functions.

// UnaryFunc names a single-argument function.
type UnaryFunc int

const (
	Sin UnaryFunc = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Log
	Ln
	Log2
	Exp
	Exp10
	Sqrt
	Cbrt
	Factorial
	Abs
	Negate
	Reciprocal
	Square
	Percent
	Log10
	Ceil
	Floor
	Round
	numUnary
)

// The class of a function decides how the angle unit applies.
type unaryClass int

const (
	plain   unaryClass = iota
	direct             // argument is an angle
	inverse            // result is an angle
)

type unaryFn func(x float64) (float64, error)

type unaryOp struct {
	name   string
	symbol string
	class  unaryClass
	fn     unaryFn
}

var unaryOps [numUnary]unaryOp

// total wraps a function that is defined everywhere.
func total(f func(float64) float64) unaryFn {
	return func(x float64) (float64, error) { return f(x), nil }
}

// positive wraps a logarithm, defined only for x > 0.
func positive(name string, f func(float64) float64) unaryFn {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, errorf(DomainError, name)
		}
		return f(x), nil
	}
}

// bounded wraps an inverse sine or cosine, defined only on [-1, 1].
func bounded(name string, f func(float64) float64) unaryFn {
	return func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, errorf(DomainError, name)
		}
		return f(x), nil
	}
}

func init() {
	unaryOps = [numUnary]unaryOp{
		Sin:  {"sin", "sin", direct, total(math.Sin)},
		Cos:  {"cos", "cos", direct, total(math.Cos)},
		Tan:  {"tan", "tan", direct, total(math.Tan)},
		Asin: {"asin", "sin⁻¹", inverse, bounded("asin", math.Asin)},
		Acos: {"acos", "cos⁻¹", inverse, bounded("acos", math.Acos)},
		Atan: {"atan", "tan⁻¹", inverse, total(math.Atan)},
		Sinh: {"sinh", "sinh", direct, total(math.Sinh)},
		Cosh: {"cosh", "cosh", direct, total(math.Cosh)},
		Tanh: {"tanh", "tanh", direct, total(math.Tanh)},

		Log:   {"log", "log", plain, positive("log", math.Log10)},
		Log10: {"log10", "log", plain, positive("log10", math.Log10)},
		Ln:    {"ln", "ln", plain, positive("ln", math.Log)},
		Log2:  {"log2", "log₂", plain, positive("log2", math.Log2)},
		Exp:   {"exp", "eˣ", plain, total(math.Exp)},
		Exp10: {"exp10", "10ˣ", plain, total(func(x float64) float64 { return math.Pow(10, x) })},

		Sqrt: {"sqrt", "√", plain, func(x float64) (float64, error) {
			if x < 0 {
				return 0, errorf(DomainError, "sqrt")
			}
			return math.Sqrt(x), nil
		}},
		Cbrt:      {"cbrt", "∛", plain, total(math.Cbrt)},
		Factorial: {"factorial", "!", plain, factorial},

		Abs:    {"abs", "abs", plain, total(math.Abs)},
		Negate: {"negate", "±", plain, total(func(x float64) float64 { return -x })},
		Reciprocal: {"reciprocal", "1/x", plain, func(x float64) (float64, error) {
			if x == 0 {
				return 0, errorf(DivisionByZero, "reciprocal")
			}
			return 1 / x, nil
		}},
		Square:  {"square", "x²", plain, total(func(x float64) float64 { return x * x })},
		Percent: {"percent", "%", plain, total(func(x float64) float64 { return x / 100 })},

		Ceil:  {"ceil", "ceil", plain, total(math.Ceil)},
		Floor: {"floor", "floor", plain, total(math.Floor)},
		Round: {"round", "round", plain, total(math.Round)},
	}
}

func (fn UnaryFunc) valid() bool {
	return fn >= 0 && fn < numUnary
}

func (fn UnaryFunc) String() string {
	if !fn.valid() {
		return fmt.Sprintf("UnaryFunc(%d)", int(fn))
	}
	return unaryOps[fn].name
}

// Symbol is the label a keypad would print on the function's key.
func (fn UnaryFunc) Symbol() string {
	if !fn.valid() {
		return "?"
	}
	return unaryOps[fn].symbol
}

// Trigonometric reports whether the angle unit affects fn.
func (fn UnaryFunc) Trigonometric() bool {
	return fn.valid() && unaryOps[fn].class != plain
}

// UnaryFuncs returns every unary function in declaration order.
func UnaryFuncs() []UnaryFunc {
	fns := make([]UnaryFunc, numUnary)
	for i := range fns {
		fns[i] = UnaryFunc(i)
	}
	return fns
}

// LookupUnary finds a unary function by name.
func LookupUnary(name string) (UnaryFunc, bool) {
	for i, op := range unaryOps {
		if op.name == name {
			return UnaryFunc(i), true
		}
	}
	return 0, false
}

// Unary evaluates fn(x). Direct trigonometric functions read x in the given
// unit; the inverse ones report their result in it.
func Unary(x float64, fn UnaryFunc, unit AngleUnit) (float64, error) {
	if !fn.valid() {
		return 0, errorf(MathError, fn.String())
	}
	op := &unaryOps[fn]
	if op.class == direct {
		x = ConvertAngle(x, unit, Radians)
	}
	z, err := op.fn(x)
	if err != nil {
		return 0, err
	}
	if op.class == inverse {
		z = ConvertAngle(z, Radians, unit)
	}
	return check(op.name, z, MathError)
}
