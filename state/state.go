// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state is the accumulator state machine. A Session is a value;
// Apply computes the next Session from the current one and an Intent and
// never modifies its receiver. Machine wraps a Session for hosts that want
// a single mutable instance with a history sink attached.
package state // import "robpike.io/calc/state"

import (
	"time"

	"robpike.io/calc/config"
	"robpike.io/calc/value"
)

// MaxHistory bounds Session.History.
const MaxHistory = 50

// Operation is a binary operation waiting for its right operand.
type Operation struct {
	Left float64
	Op   value.BinaryOp
}

func (o Operation) eval(right float64, unit value.AngleUnit) (float64, error) {
	return value.Binary(o.Left, o.Op, right, unit)
}

// HistoryEntry records one completed binary computation.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// Session is the complete state of one calculator.
type Session struct {
	// Display is the text being entered or shown. It is never empty and
	// either parses as a finite number or is the text of Err.
	Display string
	// Pending is the operation in progress, or nil. The left operand and
	// the operator live and die together.
	Pending *Operation
	// AwaitingEntry says the next digit starts a new number.
	AwaitingEntry bool
	// Memory is the memory register. It is always finite.
	Memory float64
	// Err is the error on the display, if any.
	Err error

	AngleUnit value.AngleUnit
	Precision int

	// History holds completed computations, newest first. Transitions
	// replace the slice rather than writing into it.
	History []HistoryEntry

	seq uint64 // computations completed, for history IDs
}

// New returns a cleared session using the angle unit and precision from conf.
// A nil conf means the defaults.
func New(conf *config.Config) Session {
	if conf == nil {
		conf = new(config.Config)
	}
	return Session{
		Display:   value.Zero,
		AngleUnit: conf.AngleUnit(),
		Precision: conf.Precision(),
	}
}

// Errored reports whether the display holds an error.
func (s Session) Errored() bool {
	return s.Err != nil
}
