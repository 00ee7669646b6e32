// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strings"
)

// AngleUnit selects how the trigonometric functions read and write angles.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
	Gradians
)

var angleNames = [...]string{
	Degrees:  "degrees",
	Radians:  "radians",
	Gradians: "gradians",
}

func (u AngleUnit) String() string {
	if u < 0 || int(u) >= len(angleNames) {
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
	return angleNames[u]
}

// Short is the three-or-four letter label shown next to the display.
func (u AngleUnit) Short() string {
	switch u {
	case Radians:
		return "RAD"
	case Gradians:
		return "GRAD"
	}
	return "DEG"
}

// Next cycles degrees → radians → gradians → degrees.
func (u AngleUnit) Next() AngleUnit {
	return (u + 1) % AngleUnit(len(angleNames))
}

// ParseAngleUnit accepts the full names and the usual abbreviations.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	case "gradians", "gradian", "grad", "gon":
		return Gradians, nil
	}
	return Degrees, fmt.Errorf("unknown angle unit %q", s)
}

// toRadians is the size of one unit in radians.
func (u AngleUnit) toRadians() float64 {
	switch u {
	case Degrees:
		return math.Pi / 180
	case Gradians:
		return math.Pi / 200
	}
	return 1
}

// ConvertAngle converts x from one unit to another, going through radians.
func ConvertAngle(x float64, from, to AngleUnit) float64 {
	if from == to {
		return x
	}
	r := x
	if from != Radians {
		r = x * from.toRadians()
	}
	if to == Radians {
		return r
	}
	return r / to.toRadians()
}
