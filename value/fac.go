// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
)

// MaxFactorial is the largest n whose factorial fits in a float64.
const MaxFactorial = 170

// factorial computes n! exactly in a big.Int and rounds once to float64,
// so the result is the float64 nearest the true factorial.
func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, errorf(DomainError, "factorial")
	}
	if x > MaxFactorial {
		return 0, errorf(Overflow, "factorial")
	}
	n := int64(x)
	if n < 2 {
		return 1, nil
	}
	z := new(big.Int).MulRange(2, n)
	f, _ := new(big.Float).SetInt(z).Float64()
	return f, nil
}
