// SPDX-License-Identifier: MIT
// Package: polynomial-finder/internal/safeint
//
// safeint.go - overflow-checked int64 arithmetic shared by the difference,
// stirling, newton and polynomial packages.
//
// Contract:
//   - Every helper returns ErrOverflow instead of wrapping silently.
//   - No allocations, no panics on user data.

package safeint

import (
	"errors"
	"math"
)

var (
	// ErrOverflow indicates that an intermediate int64 result left the representable range.
	ErrOverflow = errors.New("safeint: int64 overflow")

	// ErrNegativeArgument indicates a negative count was passed to Factorial/FallingFactorial.
	ErrNegativeArgument = errors.New("safeint: negative argument")
)

// Add returns a+b or ErrOverflow.
func Add(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, ErrOverflow
	}

	return c, nil
}

// Sub returns a-b or ErrOverflow.
func Sub(a, b int64) (int64, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, ErrOverflow
	}

	return c, nil
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}

	return c, nil
}

// Factorial returns k! for k >= 0. 20! is the largest value that fits.
func Factorial(k int) (int64, error) {
	if k < 0 {
		return 0, ErrNegativeArgument
	}

	var (
		acc int64 = 1
		err error
	)
	for i := 2; i <= k; i++ {
		if acc, err = Mul(acc, int64(i)); err != nil {
			return 0, err
		}
	}

	return acc, nil
}

// FallingFactorial returns x·(x-1)···(x-k+1), the product of k consecutive
// decreasing integers starting at x. k = 0 is the empty product 1.
func FallingFactorial(x int64, k int) (int64, error) {
	if k < 0 {
		return 0, ErrNegativeArgument
	}

	var (
		acc  int64 = 1
		term int64
		err  error
	)
	for i := 0; i < k; i++ {
		if term, err = Sub(x, int64(i)); err != nil {
			return 0, err
		}
		if acc, err = Mul(acc, term); err != nil {
			return 0, err
		}
		if acc == 0 {
			// a zero factor absorbs every later term
			return 0, nil
		}
	}

	return acc, nil
}
