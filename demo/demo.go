// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the -demo
// flag. The script for the demo is in demo.calc
// in this directory. Its content is embedded in this source file.
package demo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.calc
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, a Writer used to deliver
// keypresses to a calculator, and a Writer for the output. It assumes that the
// calculator is writing to the same output. When the user hits a blank line, the
// script shows and sends its next step: any comment lines, then one line of keys.
// If the user's input line has text, that is delivered instead and the script
// does not advance. "quit" ends the demo.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toCalc io.Writer, output io.Writer) error {
	script := bufio.NewScanner(bytes.NewReader(demoText))
	var user *bufio.Scanner
	if userInput != nil {
		user = bufio.NewScanner(userInput)
	}
	send := func(line string) error {
		_, err := fmt.Fprintln(toCalc, line)
		return err
	}
	// step shows and sends lines through the next one that is not a comment.
	// It reports false when the script is exhausted.
	step := func() (bool, error) {
		for script.Scan() {
			line := script.Text()
			fmt.Fprintln(output, line)
			if err := send(line); err != nil {
				return false, err
			}
			if !isComment(line) {
				return true, nil
			}
		}
		return false, script.Err()
	}
	// Show the instructions before accepting user input.
	if script.Scan() {
		fmt.Fprintln(output, script.Text())
	}
	for {
		if user != nil {
			if !user.Scan() {
				return user.Err()
			}
			if text := strings.TrimSpace(user.Text()); text != "" {
				if text == "quit" {
					return nil
				}
				if err := send(text); err != nil {
					return err
				}
				continue
			}
		}
		more, err := step()
		if err != nil || !more {
			return err
		}
	}
}

func isComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}
