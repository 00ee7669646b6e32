// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"fmt"

	"robpike.io/calc/value"
)

// Intent is one user action. The set is closed: only the types in this
// file implement it, and Apply handles every one of them.
type Intent interface {
	fmt.Stringer
	intent()
}

// Digit enters '0' through '9' or the decimal point '.'.
type Digit struct{ Char byte }

// Binary selects a binary operator.
type Binary struct{ Op value.BinaryOp }

// Unary applies a function to the displayed value.
type Unary struct{ Fn value.UnaryFunc }

// Constant replaces the display with a named constant.
type Constant struct{ C value.Constant }

// Equals completes the pending operation.
type Equals struct{}

// Clear resets the calculator.
type Clear struct{}

// ClearEntry resets the display only.
type ClearEntry struct{}

// Backspace deletes the last character of the display.
type Backspace struct{}

// MemoryOp selects what a Memory intent does.
type MemoryOp int

const (
	MemoryStore MemoryOp = iota
	MemoryRecall
	MemoryClear
	MemoryAdd
	MemorySubtract
)

var memoryNames = [...]string{
	MemoryStore:    "MS",
	MemoryRecall:   "MR",
	MemoryClear:    "MC",
	MemoryAdd:      "M+",
	MemorySubtract: "M-",
}

func (op MemoryOp) String() string {
	if op < 0 || int(op) >= len(memoryNames) {
		return fmt.Sprintf("MemoryOp(%d)", int(op))
	}
	return memoryNames[op]
}

// Memory reads or writes the memory register.
type Memory struct{ Op MemoryOp }

// SetAngleUnit changes the unit used by trigonometric functions.
type SetAngleUnit struct{ Unit value.AngleUnit }

// SetPrecision changes the number of significant digits displayed.
type SetPrecision struct{ Digits int }

func (Digit) intent()        {}
func (Binary) intent()       {}
func (Unary) intent()        {}
func (Constant) intent()     {}
func (Equals) intent()       {}
func (Clear) intent()        {}
func (ClearEntry) intent()   {}
func (Backspace) intent()    {}
func (Memory) intent()       {}
func (SetAngleUnit) intent() {}
func (SetPrecision) intent() {}

func (d Digit) String() string        { return fmt.Sprintf("digit %q", d.Char) }
func (b Binary) String() string       { return "binary " + b.Op.String() }
func (u Unary) String() string        { return "unary " + u.Fn.String() }
func (c Constant) String() string     { return "constant " + c.C.String() }
func (Equals) String() string         { return "equals" }
func (Clear) String() string          { return "clear" }
func (ClearEntry) String() string     { return "clear entry" }
func (Backspace) String() string      { return "backspace" }
func (m Memory) String() string       { return "memory " + m.Op.String() }
func (a SetAngleUnit) String() string { return "angle unit " + a.Unit.String() }
func (p SetPrecision) String() string { return fmt.Sprintf("precision %d", p.Digits) }
