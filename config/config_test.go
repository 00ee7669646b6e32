// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/calc/value"
)

func TestZeroConfig(t *testing.T) {
	var c Config
	assert.Equal(t, value.Degrees, c.AngleUnit())
	assert.Equal(t, value.DefaultPrecision, c.Precision())
	assert.Equal(t, DefaultHistoryMax, c.HistoryMax())
	assert.Equal(t, slog.LevelInfo, c.LogLevel())
	assert.Equal(t, os.Stdout, c.Output())
	assert.Equal(t, os.Stderr, c.ErrOutput())
	assert.False(t, c.Debug("state"))
}

func TestSetPrecisionClamps(t *testing.T) {
	var c Config
	c.SetPrecision(40)
	assert.Equal(t, value.MaxPrecision, c.Precision())
	c.SetPrecision(-2)
	assert.Equal(t, value.MinPrecision, c.Precision())
}

func TestLoadFromReader(t *testing.T) {
	const text = `
# settings
angle-unit rad
precision 12
history.file /tmp/calc-history.json
history.max 7
log.level debug
log.file /tmp/calc.log
prompt calc>
debug state intents
no-such-option whatever
`
	var c Config
	require.NoError(t, c.LoadFromReader(strings.NewReader(text)))
	assert.Equal(t, value.Radians, c.AngleUnit())
	assert.Equal(t, 12, c.Precision())
	assert.Equal(t, "/tmp/calc-history.json", c.HistoryFile())
	assert.Equal(t, 7, c.HistoryMax())
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
	assert.Equal(t, "/tmp/calc.log", c.LogFile())
	assert.Equal(t, "calc>", c.Prompt())
	assert.True(t, c.Debug("state"))
	assert.True(t, c.Debug("intents"))
}

func TestLoadFromReaderErrors(t *testing.T) {
	for _, text := range []string{
		"angle-unit turns",
		"precision many",
		"history.max -1",
		"log.level loud",
	} {
		var c Config
		err := c.LoadFromReader(strings.NewReader(text))
		assert.Error(t, err, text)
		assert.Contains(t, err.Error(), "line 1", text)
	}
}

func TestLoadFromPath(t *testing.T) {
	var c Config
	require.NoError(t, c.LoadFromPath(filepath.Join(t.TempDir(), "missing")))
	assert.Equal(t, value.Degrees, c.AngleUnit())

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("angle-unit gradians\n"), 0o644))
	require.NoError(t, c.LoadFromPath(path))
	assert.Equal(t, value.Gradians, c.AngleUnit())
}

func TestPathFromEnvironment(t *testing.T) {
	t.Setenv("CALC_CONFIG", "/somewhere/calc.conf")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/calc.conf", p)
}
