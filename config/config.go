// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the user-settable parameters of the calculator.
// The zero Config is ready to use.
package config // import "robpike.io/calc/config"

import (
	"io"
	"log/slog"
	"os"

	"robpike.io/calc/value"
)

// DefaultHistoryMax is the number of entries the history file keeps.
const DefaultHistoryMax = 50

type Config struct {
	prompt      string
	angleUnit   value.AngleUnit
	precision   int
	historyFile string
	historyMax  int
	logLevel    slog.Level
	logFile     string
	output      io.Writer
	errOutput   io.Writer
	debug       map[string]bool
}

func (c *Config) AngleUnit() value.AngleUnit {
	return c.angleUnit
}

func (c *Config) SetAngleUnit(u value.AngleUnit) {
	c.angleUnit = u
}

// Precision is the number of significant digits shown on the display.
func (c *Config) Precision() int {
	if c.precision == 0 {
		return value.DefaultPrecision
	}
	return c.precision
}

// SetPrecision clamps n to the range the display supports.
func (c *Config) SetPrecision(n int) {
	c.precision = value.ClampPrecision(n)
}

// HistoryFile is where completed computations are saved; empty means nowhere.
func (c *Config) HistoryFile() string {
	return c.historyFile
}

func (c *Config) SetHistoryFile(path string) {
	c.historyFile = path
}

func (c *Config) HistoryMax() int {
	if c.historyMax <= 0 {
		return DefaultHistoryMax
	}
	return c.historyMax
}

func (c *Config) SetHistoryMax(n int) {
	c.historyMax = n
}

func (c *Config) LogLevel() slog.Level {
	return c.logLevel
}

func (c *Config) SetLogLevel(l slog.Level) {
	c.logLevel = l
}

// LogFile is where log records go; empty means standard error, or nowhere
// when the terminal interface owns the screen.
func (c *Config) LogFile() string {
	return c.logFile
}

func (c *Config) SetLogFile(path string) {
	c.logFile = path
}

func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}
