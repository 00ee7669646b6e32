// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to calc,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The package holds one calculator, so only one execution stream
// (Eval or Demo) can be active at a time.
package mobile

//go:generate sh -c "go run help_gen.go | gofmt >help.go"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"robpike.io/calc/config"
	"robpike.io/calc/run"
	"robpike.io/calc/state"
)

var (
	conf    config.Config
	machine *state.Machine
)

func init() {
	Reset()
}

// Eval runs the input as calculator keypresses and returns the display
// after each line that did something. If execution caused errors, they
// will be returned concatenated together in the error value returned.
// The calculator keeps its state between calls.
func Eval(input string) (result string, errors error) {
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Calc(machine, &conf, " ", input, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Display returns what the calculator is showing.
func Display() string {
	return machine.Projection().Display
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
	conf.SetPrompt("")
	machine = state.NewMachine(state.New(&conf), nil, nil)
}

// Help returns the help page formatted in HTML.
func Help() string {
	return help
}
