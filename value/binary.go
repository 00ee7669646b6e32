// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
)

// Binary operators.

// BinaryOp names a two-operand operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Modulo
	Power
	numBinary
)

type binaryFn func(left, right float64) (float64, error)

type binaryOp struct {
	name   string
	symbol string
	fn     binaryFn
}

// The table is indexed by BinaryOp, so every operator must have an entry.
var binaryOps [numBinary]binaryOp

func init() {
	binaryOps = [numBinary]binaryOp{
		Add: {"add", "+", func(u, v float64) (float64, error) {
			return u + v, nil
		}},
		Subtract: {"subtract", "−", func(u, v float64) (float64, error) {
			return u - v, nil
		}},
		Multiply: {"multiply", "×", func(u, v float64) (float64, error) {
			return u * v, nil
		}},
		Divide: {"divide", "÷", func(u, v float64) (float64, error) {
			if v == 0 {
				return 0, errorf(DivisionByZero, "divide")
			}
			return u / v, nil
		}},
		Modulo: {"modulo", "mod", func(u, v float64) (float64, error) {
			if v == 0 {
				return 0, errorf(DivisionByZero, "modulo")
			}
			return math.Mod(u, v), nil
		}},
		Power: {"power", "^", power},
	}
}

// power is real exponentiation. A negative base with a fractional
// exponent has no real result and is a domain error.
func power(u, v float64) (float64, error) {
	z := math.Pow(u, v)
	if math.IsNaN(z) {
		return 0, errorf(DomainError, "power")
	}
	return z, nil
}

func (op BinaryOp) valid() bool {
	return op >= 0 && op < numBinary
}

func (op BinaryOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return binaryOps[op].name
}

// Symbol is the glyph used when the operator is shown in an expression.
func (op BinaryOp) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return binaryOps[op].symbol
}

// BinaryOps returns every binary operator in declaration order.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, numBinary)
	for i := range ops {
		ops[i] = BinaryOp(i)
	}
	return ops
}

// LookupBinary finds a binary operator by name.
func LookupBinary(name string) (BinaryOp, bool) {
	for i, op := range binaryOps {
		if op.name == name {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// Binary evaluates left op right. The angle unit is accepted so that every
// engine entry point has the same shape; no binary operator uses it yet.
func Binary(left float64, op BinaryOp, right float64, unit AngleUnit) (float64, error) {
	if !op.valid() {
		return 0, errorf(MathError, op.String())
	}
	z, err := binaryOps[op].fn(left, right)
	if err != nil {
		return 0, err
	}
	return check(op.String(), z, MathError)
}
