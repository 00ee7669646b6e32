// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"robpike.io/calc/config"
	"robpike.io/calc/demo"
	"robpike.io/calc/history"
	"robpike.io/calc/run"
	"robpike.io/calc/scan"
	"robpike.io/calc/state"
	"robpike.io/calc/tui"
	"robpike.io/calc/value"
)

var (
	angle      = flag.String("angle", "", "angle unit for trigonometric functions: deg, rad or grad")
	configFile = flag.String("config", "", "configuration `file` (default $CALC_CONFIG or the user config directory)")
	execute    = flag.Bool("e", false, "execute arguments as input lines and exit")
	demoFlag   = flag.Bool("demo", false, "run the demonstration script")
	historyArg = flag.String("history", "", "`file` in which to save completed calculations")
	lineMode   = flag.Bool("line", false, "read words line by line even when input is a terminal")
	logFile    = flag.String("log-file", "", "write the log to `file` instead of standard error")
	logLevel   = flag.String("log-level", "", "log `level`: debug, info, warn or error")
	precision  = flag.Int("precision", 0, "significant digits shown on the display, 1 to 15")
	prompt     = flag.String("prompt", "", "command `prompt` in line mode")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	flag.Usage = usage
	flag.Parse()

	os.Exit(calc())
}

// calc runs the calculator as the flags direct and returns the exit status.
func calc() int {
	if err := configure(); err != nil {
		log.Print(err)
		return 2
	}

	interactive := flag.NArg() == 0 && !*execute && term.IsTerminal(int(os.Stdin.Fd()))
	tuiMode := interactive && !*lineMode && !*demoFlag

	logger, closeLog, err := newLogger(tuiMode)
	if err != nil {
		log.Print(err)
		return 2
	}
	defer closeLog()
	slog.SetDefault(logger)

	store, err := history.Open(conf.HistoryFile(), conf.HistoryMax(), logger)
	if err != nil {
		log.Print(err)
		return 2
	}
	machine := state.NewMachine(state.New(&conf), store, logger)
	logger.Debug("starting", "angle", conf.AngleUnit().String(), "precision", conf.Precision(), "history", store.Path())

	switch {
	case *execute:
		run.Calc(machine, &conf, "<args>", strings.Join(flag.Args(), "\n"), os.Stdout, os.Stderr)
	case *demoFlag:
		runDemo(machine)
		return 0
	case tuiMode:
		if _, err := tea.NewProgram(tui.New(machine, logger), tea.WithAltScreen()).Run(); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	case flag.NArg() > 0:
		for _, name := range flag.Args() {
			fd, err := os.Open(name)
			if err != nil {
				log.Print(err)
				return 2
			}
			runInput(machine, name, fd, false)
			fd.Close()
		}
	default:
		runInput(machine, "<stdin>", os.Stdin, interactive)
	}
	return exitStatus(machine)
}

// configure loads the configuration file and then applies the flags,
// which take precedence.
func configure() error {
	path := *configFile
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			slog.Warn("no configuration file", "error", err)
		}
	}
	if path != "" {
		if err := conf.LoadFromPath(path); err != nil {
			return err
		}
	}
	if *angle != "" {
		u, err := value.ParseAngleUnit(*angle)
		if err != nil {
			return err
		}
		conf.SetAngleUnit(u)
	}
	if *precision != 0 {
		conf.SetPrecision(*precision)
	}
	if *historyArg != "" {
		conf.SetHistoryFile(*historyArg)
	}
	if *logFile != "" {
		conf.SetLogFile(*logFile)
	}
	if *logLevel != "" {
		l, err := config.ParseLevel(*logLevel)
		if err != nil {
			return err
		}
		conf.SetLogLevel(l)
	}
	if *prompt != "" {
		conf.SetPrompt(*prompt)
	}
	return nil
}

// newLogger returns the logger described by the configuration. Without a
// log file the log goes to standard error, except under the terminal
// display, where it would corrupt the screen and is discarded.
func newLogger(tuiMode bool) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case conf.LogFile() != "":
		f, err := os.OpenFile(conf.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", conf.LogFile(), err)
		}
		w = f
		closer = func() { f.Close() }
	case tuiMode:
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: conf.LogLevel()})
	return slog.New(h), closer, nil
}

// runInput feeds r to the machine until EOF.
func runInput(m *state.Machine, name string, r io.Reader, interactive bool) {
	l := scan.New(name, bufio.NewReader(r))
	for !run.Run(m, &conf, l, interactive) {
	}
}

// runDemo runs the demonstration script, advancing a step each time the
// user presses return.
func runDemo(m *state.Machine) {
	pr, pw := io.Pipe()
	go func() {
		if err := demo.Run(os.Stdin, pw, os.Stdout); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.Close()
	}()
	runInput(m, "demo", pr, false)
}

// exitStatus is 1 if the calculator finished showing an error.
func exitStatus(m *state.Machine) int {
	if m.Session().Errored() {
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
