// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the line-mode execution control for calc.
// It is factored out of main so it can be used for tests.
// This layout also helps out calc/mobile.
package run // import "robpike.io/calc/run"

import (
	"fmt"
	"io"
	"strings"
	"time"

	"robpike.io/calc/config"
	"robpike.io/calc/scan"
	"robpike.io/calc/state"
)

// cpuTime reports the user and system CPU time used by the process.
// It reports zeros where the system does not provide it.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// Run feeds each line of the scanner's input to the machine until EOF
// or error, printing the display after every line that did something.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details are reported to the configured error output stream.
// A calculation error is also an error here, although the machine
// recovers from it: the next line starts from the displayed "Error".
func Run(m *state.Machine, conf *config.Config, l *scan.Scanner, interactive bool) (success bool) {
	writer := conf.Output()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		intents, err := l.Line()
		if err == io.EOF {
			return true
		}
		var calcErr error
		timing := conf.Debug("cpu") && len(intents) > 0
		var user, sys time.Duration
		if timing {
			user, sys = cpuTime()
		}
		for _, in := range intents {
			if conf.Debug("intents") {
				fmt.Fprintf(writer, "%s%s\n", l.Loc(), in)
			}
			p, derr := m.Dispatch(in)
			if derr != nil && calcErr == nil {
				calcErr = derr
			}
			if conf.Debug("trace") {
				printProjection(conf, writer, p)
			}
		}
		if len(intents) > 0 {
			printProjection(conf, writer, m.Projection())
		}
		if timing {
			u, s := cpuTime()
			fmt.Fprintf(writer, "(%s user, %s sys)\n", u-user, s-sys)
		}
		switch {
		case err != nil:
			fmt.Fprintln(conf.ErrOutput(), err)
			return false
		case calcErr != nil:
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", l.Loc(), calcErr)
			return false
		}
	}
}

// printProjection prints the display, followed by a newline.
// It also handles the 'state' debug output.
func printProjection(conf *config.Config, writer io.Writer, p state.Projection) {
	fmt.Fprintln(writer, p.Display)
	if !conf.Debug("state") {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\tunit %s", p.AngleUnit.Short())
	if p.Pending != "" {
		fmt.Fprintf(&b, "; pending %s", p.Pending)
	}
	if p.Memory {
		fmt.Fprintf(&b, "; %s", p.MemoryLabel)
	}
	if p.Error {
		b.WriteString("; error")
	}
	fmt.Fprintln(writer, b.String())
}

// Calc runs text to completion through m, writing the displays to stdout
// and errors to stderr. Unlike Run it does not stop at the first error.
func Calc(m *state.Machine, conf *config.Config, name, text string, stdout, stderr io.Writer) {
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	l := scan.New(name, strings.NewReader(text))
	for !Run(m, conf, l, false) {
	}
}
