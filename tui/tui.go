// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui draws the calculator in a terminal and reads keys from it.
// It is a bubbletea model over a state.Machine: every key becomes one
// intent, and the view is drawn from the machine's projection.
package tui // import "robpike.io/calc/tui"

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"robpike.io/calc/state"
	"robpike.io/calc/value"
)

// historyLines is the number of recent calculations shown under the display.
const historyLines = 5

// keys maps key names, as reported by tea.KeyMsg.String, to intents.
var keys = map[string]state.Intent{
	"0": state.Digit{Char: '0'},
	"1": state.Digit{Char: '1'},
	"2": state.Digit{Char: '2'},
	"3": state.Digit{Char: '3'},
	"4": state.Digit{Char: '4'},
	"5": state.Digit{Char: '5'},
	"6": state.Digit{Char: '6'},
	"7": state.Digit{Char: '7'},
	"8": state.Digit{Char: '8'},
	"9": state.Digit{Char: '9'},
	".": state.Digit{Char: '.'},

	"+": state.Binary{Op: value.Add},
	"-": state.Binary{Op: value.Subtract},
	"*": state.Binary{Op: value.Multiply},
	"/": state.Binary{Op: value.Divide},
	"^": state.Binary{Op: value.Power},
	"\\": state.Binary{Op: value.Modulo},

	"enter": state.Equals{},
	"=":     state.Equals{},

	"esc":       state.Clear{},
	"delete":    state.ClearEntry{},
	"backspace": state.Backspace{},

	"ctrl+s": state.Memory{Op: state.MemoryStore},
	"ctrl+r": state.Memory{Op: state.MemoryRecall},
	"ctrl+l": state.Memory{Op: state.MemoryClear},
	"ctrl+p": state.Memory{Op: state.MemoryAdd},
	"ctrl+n": state.Memory{Op: state.MemorySubtract},

	"%": state.Unary{Fn: value.Percent},
	"s": state.Unary{Fn: value.Sin},
	"c": state.Unary{Fn: value.Cos},
	"t": state.Unary{Fn: value.Tan},
	"S": state.Unary{Fn: value.Asin},
	"C": state.Unary{Fn: value.Acos},
	"T": state.Unary{Fn: value.Atan},
	"r": state.Unary{Fn: value.Sqrt},
	"l": state.Unary{Fn: value.Log},
	"n": state.Unary{Fn: value.Ln},
	"x": state.Unary{Fn: value.Exp},
	"!": state.Unary{Fn: value.Factorial},
	"i": state.Unary{Fn: value.Reciprocal},
	"~": state.Unary{Fn: value.Negate},
	"|": state.Unary{Fn: value.Abs},

	"p": state.Constant{C: value.Pi},
	"e": state.Constant{C: value.E},
	"f": state.Constant{C: value.Phi},
}

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Frame   lipgloss.Style
	Display lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	History lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the styles used unless the caller sets others.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Display: lipgloss.NewStyle().Bold(true).Align(lipgloss.Right),
		Error:   lipgloss.NewStyle().Bold(true).Align(lipgloss.Right).Foreground(lipgloss.Color("196")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		History: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// Model is the bubbletea model for the calculator.
type Model struct {
	machine *state.Machine
	log     *slog.Logger
	styles  Styles
	width   int // inner width of the display
	help    bool
}

var _ tea.Model = Model{}

// New returns a model that drives m. The logger may be nil.
func New(m *state.Machine, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	return Model{
		machine: m,
		log:     log,
		styles:  DefaultStyles(),
		width:   28,
	}
}

// WithStyles returns a copy of the model drawn with s.
func (m Model) WithStyles(s Styles) Model {
	m.styles = s
	return m
}

// Machine returns the machine the model drives.
func (m Model) Machine() *state.Machine {
	return m.machine
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Intent returns the intent for a key, given the current session for the
// keys whose meaning depends on it.
func Intent(key string, s state.Session) (state.Intent, bool) {
	switch key {
	case "a":
		return state.SetAngleUnit{Unit: s.AngleUnit.Next()}, true
	case "[":
		return state.SetPrecision{Digits: s.Precision - 1}, true
	case "]":
		return state.SetPrecision{Digits: s.Precision + 1}, true
	}
	in, ok := keys[key]
	return in, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the border and padding.
		m.width = min(max(msg.Width-4, 16), 48)
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.help = !m.help
			return m, nil
		}
		in, ok := Intent(key, m.machine.Session())
		if !ok {
			m.log.Debug("unmapped key", "key", key)
			return m, nil
		}
		m.machine.Dispatch(in)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	p := m.machine.Projection()
	status := p.AngleUnit.Short()
	if p.MemoryLabel != "" {
		status = fmt.Sprintf("%s  %s", status, p.MemoryLabel)
	}
	display := m.styles.Display
	if p.Error {
		display = m.styles.Error
	}
	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Status.Width(m.width).Render(status),
		m.styles.Status.Width(m.width).Align(lipgloss.Right).Render(p.Pending),
		display.Width(m.width).Render(p.Display),
	)
	parts := []string{m.styles.Frame.Render(screen)}

	history := m.machine.Session().History
	if len(history) > historyLines {
		history = history[:historyLines]
	}
	prec := m.machine.Session().Precision
	var b strings.Builder
	for i, e := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s = %s", e.Expression, value.Format(e.Result, prec))
	}
	if b.Len() > 0 {
		parts = append(parts, m.styles.History.Render(b.String()))
	}
	if m.help {
		parts = append(parts, m.styles.Help.Render(helpText))
	} else {
		parts = append(parts, m.styles.Help.Render("? for help, q to quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

const helpText = `digits . + - * / ^ \ (mod)   enter or = to finish
esc clear   delete clear entry   backspace
ctrl+s MS  ctrl+r MR  ctrl+l MC  ctrl+p M+  ctrl+n M−
s c t sin cos tan   S C T inverse   r sqrt   l log   n ln
x exp   ! factorial   i 1/x   ~ ±   | abs   % percent
p π   e e   f φ   a angle unit   [ ] precision   q quit`
