// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Format renders c in descending degree, e.g. [1 2 1] → "x^2 + 2x + 1".
// See the package documentation for the exact rules.
func Format(c Coefficients) string {
	var (
		sb    strings.Builder
		first = true
	)
	for deg := len(c) - 1; deg >= 0; deg-- {
		v := c[deg]
		if v == 0 {
			continue
		}
		mag := math.Abs(v)
		writeTerm(&sb, deg, v < 0, mag == 1, strconv.FormatFloat(mag, 'f', -1, 64), first)
		first = false
	}

	return sb.String()
}

// FormatExact renders rational coefficients with the same rules as Format;
// non-integers print as "p/q". nil entries count as zero.
func FormatExact(c []*big.Rat) string {
	var (
		sb    strings.Builder
		first = true
		one   = big.NewRat(1, 1)
	)
	for deg := len(c) - 1; deg >= 0; deg-- {
		r := c[deg]
		if r == nil || r.Sign() == 0 {
			continue
		}
		mag := new(big.Rat).Abs(r)
		writeTerm(&sb, deg, r.Sign() < 0, mag.Cmp(one) == 0, mag.RatString(), first)
		first = false
	}

	return sb.String()
}

// writeTerm appends one non-zero term; numeral is the magnitude's text.
func writeTerm(sb *strings.Builder, deg int, negative, unit bool, numeral string, first bool) {
	switch {
	case negative && first:
		sb.WriteByte('-')
	case negative:
		sb.WriteString(" - ")
	case !first:
		sb.WriteString(" + ")
	}

	if !unit || deg == 0 {
		sb.WriteString(numeral)
	}
	if deg == 0 {
		return
	}

	sb.WriteByte('x')
	if deg > 1 {
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(deg))
	}
}
