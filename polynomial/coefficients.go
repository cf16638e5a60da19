// SPDX-License-Identifier: MIT

package polynomial

import "math/big"

// Coefficients are power-basis coefficients; Coefficients[d] multiplies x^d.
type Coefficients []float64

// Degree returns the highest index with a non-zero coefficient, or −1 for
// the zero polynomial.
func (c Coefficients) Degree() int {
	for d := len(c) - 1; d >= 0; d-- {
		if c[d] != 0 {
			return d
		}
	}

	return -1
}

// Eval evaluates the polynomial at x with Horner's rule.
func (c Coefficients) Eval(x float64) float64 {
	var y float64
	for d := len(c) - 1; d >= 0; d-- {
		y = y*x + c[d]
	}

	return y
}

// String implements fmt.Stringer via Format.
func (c Coefficients) String() string { return Format(c) }

// EvalRat evaluates exact coefficients at x with Horner's rule. nil entries count as zero.
func EvalRat(c []*big.Rat, x *big.Rat) *big.Rat {
	y := new(big.Rat)
	for d := len(c) - 1; d >= 0; d-- {
		y.Mul(y, x)
		if c[d] != nil {
			y.Add(y, c[d])
		}
	}

	return y
}

// Float64s converts exact coefficients to the nearest float64 values.
func Float64s(c []*big.Rat) Coefficients {
	out := make(Coefficients, len(c))
	for d, r := range c {
		if r != nil {
			out[d], _ = r.Float64()
		}
	}

	return out
}
