// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"log/slog"
	"sync"
	"time"

	"robpike.io/calc/value"
)

// Sink receives each history entry once, after the Equals that made it.
type Sink interface {
	Record(HistoryEntry) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(HistoryEntry) error

func (f SinkFunc) Record(e HistoryEntry) error {
	return f(e)
}

// Machine owns one Session and applies intents to it one at a time.
type Machine struct {
	mu      sync.Mutex
	session Session
	sink    Sink
	log     *slog.Logger
	now     func() time.Time
}

// NewMachine returns a Machine starting from s. The sink and logger may
// be nil.
func NewMachine(s Session, sink Sink, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	return &Machine{
		session: s,
		sink:    sink,
		log:     log,
		now:     time.Now,
	}
}

// SetClock replaces the time source used to stamp history entries.
func (m *Machine) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

// Dispatch applies in and returns the new projection. The error is the
// calculation failure now shown on the display, if any; the machine stays
// usable either way. The sink is called after the session is updated and
// the lock released, so it may dispatch in turn.
func (m *Machine) Dispatch(in Intent) (Projection, error) {
	m.mu.Lock()
	next, eff := m.session.Apply(in, m.now())
	m.session = next
	p := next.Project()
	m.mu.Unlock()

	m.log.Debug("intent", "intent", in.String(), "display", p.Display, "pending", p.Pending)
	if eff.Err != nil {
		m.log.Info("calculation failed", "intent", in.String(), "kind", value.KindOf(eff.Err).String(), "error", eff.Err)
	}
	if eff.Entry != nil && m.sink != nil {
		if err := m.sink.Record(*eff.Entry); err != nil {
			m.log.Warn("failed to record history", "id", eff.Entry.ID, "error", err)
		}
	}
	return p, eff.Err
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Projection returns the projection of the current session.
func (m *Machine) Projection() Projection {
	return m.Session().Project()
}
