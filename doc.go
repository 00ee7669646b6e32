// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Calc is a scientific calculator with a single accumulator, the kind that
sits on a desk. There is no expression syntax: input is a sequence of
keypresses, and each one acts on the calculator immediately. Operators
are evaluated strictly left to right as they are entered, so

	2 + 3 * 4 =

displays 20, not 14.

When standard input is a terminal, calc draws a keypad display and reads
keys directly. Otherwise, or with the -e flag, it reads keypresses spelled
as words, one line at a time, and prints the display after each line.

Usage:

	calc [flags] [file ...]

The flags are:

	-angle unit
		angle unit for trigonometric functions: deg, rad or grad
	-config file
		configuration file (default $CALC_CONFIG or the user config directory)
	-demo
		run the demonstration script
	-e
		execute arguments as input lines and exit
	-history file
		file in which to save completed calculations
	-line
		read words line by line even when input is a terminal
	-log-file file
		write the log to file instead of standard error
	-log-level level
		log level: debug, info, warn or error
	-precision n
		significant digits shown on the display, 1 to 15
	-prompt prompt
		command prompt in line mode

Words

A number is entered one digit at a time, as if typed; 12.5 is the five
keys 1, 2, ., 5. The other words are

	+ - * / ^       add, subtract, multiply, divide, power
	× ÷ −           the same, as printed on a keypad
	mod             remainder after division
	=               complete the pending operation
	%               divide the display by 100
	c clear ac      clear everything, including memory
	ce              clear the display only
	bs backspace    delete the last digit
	ms mr mc        memory store, recall and clear
	m+ m-           add the display to memory, subtract it from memory
	pi e phi        enter a constant
	deg rad grad    select the angle unit
	prec=n          show n significant digits
	angle=unit      select the angle unit

and the functions, which replace the display with their result:

	sin cos tan asin acos atan sinh cosh tanh
	log log10 ln log2 exp exp10
	sqrt cbrt square sq factorial fact
	abs negate neg reciprocal inv percent
	ceil floor round

A '#' begins a comment that runs to the end of the line.

Errors

A calculation that fails shows one of

	Cannot divide by zero
	Input outside function domain
	Number too large
	Syntax error
	Mathematical error

on the display, and in line mode also reports it on standard error. After an error, entering a digit, a constant, or a
memory recall starts afresh; operators and functions are ignored until then.

Keys

In the terminal display, digits, '.', the operators and '=' act as on a
keypad. Enter is '='. Escape clears, Delete clears the entry and
Backspace deletes a digit. The memory keys are

	ctrl+s  MS
	ctrl+r  MR
	ctrl+l  MC
	ctrl+p  M+
	ctrl+n  M−

'a' cycles the angle unit, '[' and ']' change the precision, and 'q' or
ctrl+c quits. Letters also enter functions: s sin, c cos, t tan, r sqrt,
l log, n ln, ! factorial, i reciprocal, p π.

Configuration

The configuration file holds one setting per line, a name and a value
separated by spaces. Lines beginning with '#' are comments.

	angle-unit   rad
	precision    12
	history.file /home/me/.calc_history.json
	history.max  50
	log.level    debug
	log.file     /tmp/calc.log
	prompt       calc>
	debug        state intents

Flags override the file.
*/
package main // import "robpike.io/calc"
