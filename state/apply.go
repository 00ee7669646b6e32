// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"robpike.io/calc/value"
)

// Effect is what a transition produces besides the next Session.
type Effect struct {
	// Entry is the history entry created by a successful Equals.
	Entry *HistoryEntry
	// Err is the failure now on the display, if the transition failed.
	Err error
}

// historySpace is the UUID namespace for history entry IDs.
var historySpace = uuid.MustParse("6f1c3d2e-8a7b-4c5d-9e0f-1a2b3c4d5e6f")

// Apply returns the session that results from in. The time now stamps any
// history entry created; nothing else in the transition depends on it.
func (s Session) Apply(in Intent, now time.Time) (Session, Effect) {
	switch in := in.(type) {
	case Digit:
		return s.digit(in.Char), Effect{}
	case Binary:
		return s.binary(in.Op)
	case Equals:
		return s.equals(now)
	case Unary:
		return s.unary(in.Fn)
	case Constant:
		return s.constant(in.C), Effect{}
	case Clear:
		return s.clear(), Effect{}
	case ClearEntry:
		s.Display = value.Zero
		s.Err = nil
		return s, Effect{}
	case Backspace:
		return s.backspace(), Effect{}
	case Memory:
		return s.memory(in.Op)
	case SetAngleUnit:
		s.AngleUnit = in.Unit
		return s, Effect{}
	case SetPrecision:
		s.Precision = value.ClampPrecision(in.Digits)
		return s, Effect{}
	}
	panic(fmt.Sprintf("state: unexpected intent %T", in))
}

// fail abandons any chain and shows err.
func (s Session) fail(err error) (Session, Effect) {
	s.Pending = nil
	return s.show(err)
}

// show puts err on the display and leaves the rest of the state alone.
func (s Session) show(err error) (Session, Effect) {
	s.Display = err.Error()
	s.Err = err
	s.AwaitingEntry = true
	return s, Effect{Err: err}
}

func (s Session) digit(d byte) Session {
	if d != '.' && (d < '0' || d > '9') {
		return s
	}
	if s.AwaitingEntry || s.Err != nil {
		s.AwaitingEntry = false
		s.Err = nil
		if d == '.' {
			s.Display = "0."
		} else {
			s.Display = string(d)
		}
		return s
	}
	switch {
	case d == '.':
		if strings.ContainsAny(s.Display, ".e") {
			return s
		}
		s.Display += "."
	case s.Display == value.Zero:
		s.Display = string(d)
	default:
		s.Display += string(d)
	}
	return s
}

func (s Session) binary(op value.BinaryOp) (Session, Effect) {
	if s.Err != nil {
		return s, Effect{}
	}
	if s.Pending != nil && s.AwaitingEntry {
		s.Pending = &Operation{Left: s.Pending.Left, Op: op}
		return s, Effect{}
	}
	x, err := value.Parse(s.Display)
	if err != nil {
		return s.fail(err)
	}
	if s.Pending == nil {
		s.Pending = &Operation{Left: x, Op: op}
		s.AwaitingEntry = true
		return s, Effect{}
	}
	z, err := s.Pending.eval(x, s.AngleUnit)
	if err != nil {
		return s.fail(err)
	}
	s.Display = value.Format(z, s.Precision)
	s.Pending = &Operation{Left: z, Op: op}
	s.AwaitingEntry = true
	return s, Effect{}
}

func (s Session) equals(now time.Time) (Session, Effect) {
	if s.Pending == nil || s.Err != nil {
		return s, Effect{}
	}
	x, err := value.Parse(s.Display)
	if err != nil {
		return s.fail(err)
	}
	op := *s.Pending
	z, err := op.eval(x, s.AngleUnit)
	if err != nil {
		return s.fail(err)
	}
	s.Display = value.Format(z, s.Precision)
	s.Pending = nil
	s.AwaitingEntry = true
	s.seq++
	entry := HistoryEntry{
		ID:         historyID(s.seq, now),
		Expression: fmt.Sprintf("%s %s %s", value.Format(op.Left, s.Precision), op.Op.Symbol(), value.Format(x, s.Precision)),
		Result:     z,
		Timestamp:  now,
	}
	history := make([]HistoryEntry, 0, min(len(s.History)+1, MaxHistory))
	history = append(history, entry)
	history = append(history, s.History[:min(len(s.History), MaxHistory-1)]...)
	s.History = history
	return s, Effect{Entry: &entry}
}

func historyID(seq uint64, now time.Time) string {
	return uuid.NewSHA1(historySpace, fmt.Appendf(nil, "%d/%d", now.UnixNano(), seq)).String()
}

func (s Session) unary(fn value.UnaryFunc) (Session, Effect) {
	if s.Err != nil {
		return s, Effect{}
	}
	x, err := value.Parse(s.Display)
	if err != nil {
		return s.show(err)
	}
	z, err := value.Unary(x, fn, s.AngleUnit)
	if err != nil {
		return s.show(err)
	}
	s.Display = value.Format(z, s.Precision)
	return s, Effect{}
}

func (s Session) constant(c value.Constant) Session {
	s.Display = value.Format(c.Value(), s.Precision)
	s.AwaitingEntry = false
	s.Err = nil
	return s
}

// clear keeps the settings and the history; everything else, memory
// included, goes back to its initial value.
func (s Session) clear() Session {
	return Session{
		Display:   value.Zero,
		AngleUnit: s.AngleUnit,
		Precision: s.Precision,
		History:   s.History,
		seq:       s.seq,
	}
}

func (s Session) backspace() Session {
	if s.Err != nil {
		return s
	}
	d := s.Display[:len(s.Display)-1]
	// A lone sign or a dangling exponent would not parse.
	d = strings.TrimRight(d, "e+-")
	if d == "" {
		d = value.Zero
	}
	s.Display = d
	return s
}

func (s Session) memory(op MemoryOp) (Session, Effect) {
	switch op {
	case MemoryRecall:
		s.Display = value.Format(s.Memory, s.Precision)
		s.AwaitingEntry = true
		s.Err = nil
		return s, Effect{}
	case MemoryClear:
		s.Memory = 0
		return s, Effect{}
	}
	if s.Err != nil {
		return s, Effect{}
	}
	x, err := value.Parse(s.Display)
	if err != nil {
		return s.show(err)
	}
	switch op {
	case MemoryStore:
		s.Memory = x
	case MemoryAdd, MemorySubtract:
		bop := value.Add
		if op == MemorySubtract {
			bop = value.Subtract
		}
		m, err := value.Binary(s.Memory, bop, x, s.AngleUnit)
		if err != nil {
			return s.show(err)
		}
		s.Memory = m
	default:
		panic(fmt.Sprintf("state: unexpected memory op %d", int(op)))
	}
	return s, Effect{}
}
