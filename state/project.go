// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"robpike.io/calc/value"
)

// Projection is everything a front end needs to draw the calculator.
type Projection struct {
	Display string
	// Pending summarizes the operation in progress, as in "12 ×".
	// It is empty when nothing is pending.
	Pending string
	// Memory is set when the memory register is non-zero.
	Memory bool
	// MemoryLabel is "M: " and the grouped memory value, or empty.
	MemoryLabel string
	AngleUnit   value.AngleUnit
	Error       bool
}

// Project computes the render projection of s.
func (s Session) Project() Projection {
	p := Projection{
		Display:   s.Display,
		Memory:    s.Memory != 0,
		AngleUnit: s.AngleUnit,
		Error:     s.Err != nil,
	}
	if s.Pending != nil {
		p.Pending = value.Format(s.Pending.Left, s.Precision) + " " + s.Pending.Op.Symbol()
	}
	if p.Memory {
		p.MemoryLabel = "M: " + value.FormatGrouped(s.Memory)
	}
	return p
}
