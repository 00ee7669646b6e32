// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"robpike.io/calc/state"
	"robpike.io/calc/value"
)

// words maps the fixed key names to intents. Function, operator and
// constant names come from the value package.
var words = map[string]state.Intent{
	"c":         state.Clear{},
	"clear":     state.Clear{},
	"ac":        state.Clear{},
	"ce":        state.ClearEntry{},
	"bs":        state.Backspace{},
	"backspace": state.Backspace{},
	"ms":        state.Memory{Op: state.MemoryStore},
	"mr":        state.Memory{Op: state.MemoryRecall},
	"mc":        state.Memory{Op: state.MemoryClear},
	"m+":        state.Memory{Op: state.MemoryAdd},
	"m-":        state.Memory{Op: state.MemorySubtract},
	"m−":        state.Memory{Op: state.MemorySubtract},
	"mod":       state.Binary{Op: value.Modulo},
	"neg":       state.Unary{Fn: value.Negate},
	"inv":       state.Unary{Fn: value.Reciprocal},
	"sq":        state.Unary{Fn: value.Square},
	"fact":      state.Unary{Fn: value.Factorial},
	"π":         state.Constant{C: value.Pi},
	"φ":         state.Constant{C: value.Phi},
}

var operatorIntents = map[string]state.Intent{
	"+": state.Binary{Op: value.Add},
	"-": state.Binary{Op: value.Subtract},
	"−": state.Binary{Op: value.Subtract},
	"*": state.Binary{Op: value.Multiply},
	"×": state.Binary{Op: value.Multiply},
	"/": state.Binary{Op: value.Divide},
	"÷": state.Binary{Op: value.Divide},
	"^": state.Binary{Op: value.Power},
	"%": state.Unary{Fn: value.Percent},
	"=": state.Equals{},
}

// Word returns the intent named by a single word, such as "sqrt", "ms",
// "pi", "rad" or "+".
func Word(word string) (state.Intent, bool) {
	if in, ok := operatorIntents[word]; ok {
		return in, true
	}
	w := strings.ToLower(word)
	if in, ok := words[w]; ok {
		return in, true
	}
	if op, ok := value.LookupBinary(w); ok {
		return state.Binary{Op: op}, true
	}
	if fn, ok := value.LookupUnary(w); ok {
		return state.Unary{Fn: fn}, true
	}
	if c, ok := value.LookupConstant(w); ok {
		return state.Constant{C: c}, true
	}
	if u, err := value.ParseAngleUnit(w); err == nil {
		return state.SetAngleUnit{Unit: u}, true
	}
	return nil, false
}

// setting returns the intent for a name=value token.
func setting(text string) (state.Intent, error) {
	name, val, _ := strings.Cut(text, "=")
	switch strings.ToLower(name) {
	case "prec", "precision":
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("bad precision %q", val)
		}
		return state.SetPrecision{Digits: n}, nil
	case "angle", "unit":
		u, err := value.ParseAngleUnit(val)
		if err != nil {
			return nil, err
		}
		return state.SetAngleUnit{Unit: u}, nil
	}
	return nil, fmt.Errorf("unknown setting %q", name)
}

// Intents returns the intents a token stands for. A number becomes one
// Digit per character, as if typed on the keypad.
func (i Token) Intents() ([]state.Intent, error) {
	switch i.Type {
	case Number:
		out := make([]state.Intent, len(i.Text))
		for j := 0; j < len(i.Text); j++ {
			out[j] = state.Digit{Char: i.Text[j]}
		}
		return out, nil
	case Operator, Identifier:
		if in, ok := Word(i.Text); ok {
			return []state.Intent{in}, nil
		}
		return nil, fmt.Errorf("%d: unknown key %q", i.Line, i.Text)
	case Setting:
		in, err := setting(i.Text)
		if err != nil {
			return nil, fmt.Errorf("%d: %w", i.Line, err)
		}
		return []state.Intent{in}, nil
	case Error:
		return nil, errors.New(i.Text)
	}
	return nil, nil
}

// Line returns the intents on the next line of input. The error is
// io.EOF once the input is exhausted and no intents remain. After any
// other error the rest of the line has been discarded.
func (l *Scanner) Line() ([]state.Intent, error) {
	l.lineStart = l.line
	var intents []state.Intent
	for {
		tok := l.Next()
		switch tok.Type {
		case EOF:
			if intents == nil {
				return nil, io.EOF
			}
			return intents, nil
		case Newline:
			return intents, nil
		}
		in, err := tok.Intents()
		if err != nil {
			if tok.Type != Error {
				err = fmt.Errorf("%s:%w", l.name, err)
			}
			l.skipLine()
			return intents, err
		}
		intents = append(intents, in...)
	}
}

// skipLine consumes tokens through the next newline.
func (l *Scanner) skipLine() {
	for {
		switch l.Next().Type {
		case EOF, Newline:
			return
		}
	}
}

// Parse returns the intents named by the text.
func Parse(text string) ([]state.Intent, error) {
	l := New("<input>", strings.NewReader(text))
	var all []state.Intent
	for {
		in, err := l.Line()
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, in...)
	}
}
