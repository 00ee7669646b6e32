// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history saves completed computations to a file. A Store is a
// state.Sink: the calculator hands it each entry once and never reads it
// back, so the file is for the user and for later sessions.
package history // import "robpike.io/calc/history"

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"robpike.io/calc/state"
)

// Store keeps the most recent entries, newest first, and rewrites its
// file after every Record. A Store with no path keeps entries in memory.
type Store struct {
	mu      sync.Mutex
	path    string
	max     int
	entries []state.HistoryEntry
	log     *slog.Logger
}

var _ state.Sink = (*Store)(nil)

// Open loads the store at path, which need not exist yet.
// At most max entries are kept.
func Open(path string, max int, log *slog.Logger) (*Store, error) {
	if max <= 0 {
		return nil, fmt.Errorf("history: bound must be positive, got %d", max)
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Store{path: path, max: max, log: log}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("history: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("history: %s: %w", path, err)
	}
	if len(s.entries) > max {
		s.entries = s.entries[:max]
	}
	log.Debug("loaded history", "path", path, "entries", len(s.entries))
	return s, nil
}

// Record adds e at the front and saves the store.
func (s *Store) Record(e state.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]state.HistoryEntry, 0, min(len(s.entries)+1, s.max))
	entries = append(entries, e)
	entries = append(entries, s.entries[:min(len(s.entries), s.max-1)]...)
	s.entries = entries
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.entries, "", "\t")
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := writeFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	s.log.Debug("saved history", "path", s.path, "id", e.ID)
	return nil
}

// Entries returns a copy of the stored entries, newest first.
func (s *Store) Entries() []state.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]state.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}
