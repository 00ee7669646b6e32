// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
)

// Constant is a named value that can be entered in place of digits.
type Constant int

const (
	Pi Constant = iota
	E
	Phi
	numConstant
)

var constants = [numConstant]struct {
	name   string
	symbol string
	value  float64
}{
	Pi:  {"pi", "π", math.Pi},
	E:   {"e", "e", math.E},
	Phi: {"phi", "φ", math.Phi},
}

func (c Constant) valid() bool {
	return c >= 0 && c < numConstant
}

func (c Constant) String() string {
	if !c.valid() {
		return fmt.Sprintf("Constant(%d)", int(c))
	}
	return constants[c].name
}

func (c Constant) Symbol() string {
	if !c.valid() {
		return "?"
	}
	return constants[c].symbol
}

// Value returns the constant's value, or NaN for an unknown constant.
func (c Constant) Value() float64 {
	if !c.valid() {
		return math.NaN()
	}
	return constants[c].value
}

// LookupConstant finds a constant by name.
func LookupConstant(name string) (Constant, bool) {
	for i, c := range constants {
		if c.name == name {
			return Constant(i), true
		}
	}
	return 0, false
}
