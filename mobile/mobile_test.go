// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"io"
	"strings"
	"testing"
)

// We know calc works. These just test that the wrapper works.

func TestEval(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"23", "23\n"},
		{"5 + 3 =", "8\n"},
		{"2 sqrt", "1.414213562\n"},
		{"prec=3\n2 sqrt", "0\n1.41\n"},
		{"rad pi cos", "-1\n"},
		{"12 + 5 %", "0.05\n"},
	}
	for _, test := range tests {
		Reset()
		out, err := Eval(test.input)
		if err != nil {
			t.Errorf("evaluating %q: %v", test.input, err)
			continue
		}
		if out != test.output {
			t.Errorf("%q: expected %q; got %q", test.input, test.output, out)
		}
	}
}

func TestEvalKeepsState(t *testing.T) {
	Reset()
	if _, err := Eval("6 *"); err != nil {
		t.Fatal(err)
	}
	out, err := Eval("7 =")
	if err != nil {
		t.Fatal(err)
	}
	if out != "42\n" || Display() != "42" {
		t.Errorf("expected 42; got %q (display %q)", out, Display())
	}
}

func TestEvalError(t *testing.T) {
	var tests = []struct {
		input string
		error string
	}{
		{"1 / 0 =", "Cannot divide by zero"},
		{"1 neg sqrt", "Input outside function domain"},
		{"10 ^ 400 =", "Number too large"},
		{"1.5 fact", "Input outside function domain"},
		{"171 fact", "Number too large"},
		{"frob", `unknown key "frob"`},
		{"1.2.3", "bad number"},
	}
	for _, test := range tests {
		Reset()
		_, err := Eval(test.input)
		if err == nil {
			t.Errorf("evaluating %q: expected %q; got nothing", test.input, test.error)
			continue
		}
		if !strings.Contains(err.Error(), test.error) {
			t.Errorf("%q: expected %q; got %q", test.input, test.error, err)
		}
	}
}

const demoText = `# This is a demo.
23
+ 2 =
/ 0 = # Cause an error.
9 sqrt # Keep going
`

const demoOut = `23
25
Cannot divide by zero
3
`

const demoErr = " :1: Cannot divide by zero\n"

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	results := make([]byte, 0, 100)
	errors := make([]byte, 0, 100)
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errors = append(errors, err.Error()...)
		}
	}
	if demoOut != string(results) {
		t.Fatalf("expected %q; got %q", demoOut, results)
	}
	if demoErr != string(errors) {
		t.Fatalf("expected errors %q; got %q", demoErr, errors)
	}
}

func TestHelp(t *testing.T) {
	if !strings.Contains(Help(), "Cannot divide by zero") {
		t.Error("help text does not describe errors")
	}
}
