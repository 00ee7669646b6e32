// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrorText is what Format produces for a value that is not finite.
const ErrorText = "Error"

// Zero is the canonical display of zero.
const Zero = "0"

// Precision limits, in significant digits.
const (
	MinPrecision     = 1
	MaxPrecision     = 15
	DefaultPrecision = 10
)

// ClampPrecision forces n into [MinPrecision, MaxPrecision].
func ClampPrecision(n int) int {
	return min(max(n, MinPrecision), MaxPrecision)
}

// Format renders x for the display with the given number of significant
// digits. Very large and very small magnitudes use exponential notation;
// everything else is positional with insignificant zeros removed.
func Format(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrorText
	}
	precision = ClampPrecision(precision)
	a := math.Abs(x)
	if a < Epsilon {
		return Zero
	}
	e := strconv.FormatFloat(x, 'e', precision-1, 64)
	if a >= 1e10 || a < 1e-4 {
		return trimExponent(e)
	}
	// Round to the precision first, then print the shortest form of the
	// rounded value so that 123456789 at 5 digits reads 123460000.
	r, _ := strconv.ParseFloat(e, 64)
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// trimExponent tidies Go's %e output: trailing mantissa zeros and
// leading exponent zeros go, so 1.500e+07 becomes 1.5e+7.
func trimExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Parse reads a display string back as a number.
func Parse(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errorf(Overflow, "parse")
		}
		return 0, errorf(SyntaxError, "parse")
	}
	return check("parse", x, SyntaxError)
}

// FormatGrouped renders x with thousands separators and at most ten
// fractional digits, for labels rather than the main display.
func FormatGrouped(x float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(x, number.MaxFractionDigits(10)))
}
