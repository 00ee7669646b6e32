// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"robpike.io/calc/value"
)

// Path returns the config file location: $CALC_CONFIG if set, otherwise
// calc/config under the user's configuration directory.
func Path() (string, error) {
	if p := os.Getenv("CALC_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config directory: %w", err)
	}
	return filepath.Join(dir, "calc", "config"), nil
}

// LoadFromPath reads settings from the named file into c.
// A missing file is not an error.
func (c *Config) LoadFromPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	if err := c.LoadFromReader(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadFromReader reads settings into c. Each line holds an option name,
// a space, and the rest of the line as its value:
//
//	# comment
//	angle-unit radians
//	precision 12
//	history.file /home/me/.calc_history
//	history.max 100
//	log.level debug
//	log.file /tmp/calc.log
//	prompt >
//	debug state
//
// Unknown options are logged and skipped.
func (c *Config) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, val, _ := strings.Cut(text, " ")
		if err := c.Set(name, strings.TrimSpace(val)); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}
	return nil
}

// Set applies a single named option.
func (c *Config) Set(name, val string) error {
	switch name {
	case "angle-unit":
		u, err := value.ParseAngleUnit(val)
		if err != nil {
			return err
		}
		c.SetAngleUnit(u)
	case "precision":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid precision %q: %w", val, err)
		}
		c.SetPrecision(n)
	case "history.file":
		c.SetHistoryFile(val)
	case "history.max":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid history.max %q: %w", val, err)
		}
		if n < 0 {
			return fmt.Errorf("history.max cannot be negative: %d", n)
		}
		c.SetHistoryMax(n)
	case "log.level":
		l, err := ParseLevel(val)
		if err != nil {
			return err
		}
		c.SetLogLevel(l)
	case "log.file":
		c.SetLogFile(val)
	case "prompt":
		c.SetPrompt(val)
	case "debug":
		for _, word := range strings.Fields(val) {
			c.SetDebug(word, true)
		}
	default:
		slog.Warn("unknown config option", "option", name)
	}
	return nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
}
