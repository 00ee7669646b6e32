// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/calc/state"
	"robpike.io/calc/value"
)

func entry(i int) state.HistoryEntry {
	return state.HistoryEntry{
		ID:         "id-" + string(rune('a'+i)),
		Expression: "1 + 1",
		Result:     float64(i),
		Timestamp:  time.Date(2026, 10, 19, 12, 0, i, 0, time.UTC),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.json")
	s, err := Open(path, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, s.Entries())
	assert.Equal(t, path, s.Path())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(entry(i)))
	}
	got := s.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, 4.0, got[0].Result)
	assert.Equal(t, 2.0, got[2].Result)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := Open(path, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, got, again.Entries())

	smaller, err := Open(path, 2, nil)
	require.NoError(t, err)
	assert.Len(t, smaller.Entries(), 2)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".tmp-history-*"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary files are cleaned up")
}

func TestStoreInMemory(t *testing.T) {
	s, err := Open("", 2, nil)
	require.NoError(t, err)
	require.NoError(t, s.Record(entry(1)))
	require.NoError(t, s.Record(entry(2)))
	require.NoError(t, s.Record(entry(3)))
	assert.Len(t, s.Entries(), 2)
}

func TestStoreEntriesIsACopy(t *testing.T) {
	s, err := Open("", 5, nil)
	require.NoError(t, err)
	require.NoError(t, s.Record(entry(1)))
	e := s.Entries()
	e[0].Result = 99
	assert.Equal(t, 1.0, s.Entries()[0].Result)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("", 0, nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = Open(path, 5, nil)
	assert.Error(t, err)
}

func TestStoreAsMachineSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path, 50, nil)
	require.NoError(t, err)
	m := state.NewMachine(state.New(nil), s, nil)
	for _, in := range []state.Intent{
		state.Digit{Char: '6'}, state.Binary{Op: value.Multiply}, state.Digit{Char: '7'}, state.Equals{},
	} {
		_, err := m.Dispatch(in)
		require.NoError(t, err)
	}
	reopened, err := Open(path, 50, nil)
	require.NoError(t, err)
	entries := reopened.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 42.0, entries[0].Result)
	assert.Equal(t, "6 × 7", entries[0].Expression)
	assert.Equal(t, m.Session().History[0].ID, entries[0].ID)
}
