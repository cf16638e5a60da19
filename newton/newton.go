// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"

	"github.com/nopeless/polynomial-finder/difference"
	"github.com/nopeless/polynomial-finder/internal/safeint"
)

const (
	opEvaluate = "Evaluate"
	opForecast = "Forecast"
)

// Binomial returns C(x, k) as fallingFactorial(x, k) / k! with truncating division.
func Binomial(x int64, k int) (int64, error) {
	ff, err := safeint.FallingFactorial(x, k)
	if err != nil {
		return 0, err
	}
	if ff == 0 {
		// 0 ≤ x < k; skip k! so deep tables stay usable past 20!
		return 0, nil
	}
	fact, err := safeint.Factorial(k)
	if err != nil {
		return 0, err
	}

	return ff / fact, nil
}

// Evaluate returns Σ_k t.Leading(k)·C(x, k) over every row of t.
//
// Errors:
//   - ErrNilTable for a nil table.
//   - ErrOverflow if any intermediate leaves the int64 range.
//
// Complexity: O(depth²) multiplications.
func Evaluate(t *difference.Table, x int64) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("%s: %w", opEvaluate, ErrNilTable)
	}

	var sum int64
	for k := 0; k < t.Depth(); k++ {
		lead := t.Leading(k)
		if lead == 0 {
			continue
		}
		c, err := Binomial(x, k)
		if err != nil {
			return 0, fmt.Errorf("%s(x=%d): C(x,%d): %w", opEvaluate, x, k, err)
		}
		term, err := safeint.Mul(lead, c)
		if err != nil {
			return 0, fmt.Errorf("%s(x=%d): term %d: %w", opEvaluate, x, k, err)
		}
		if sum, err = safeint.Add(sum, term); err != nil {
			return 0, fmt.Errorf("%s(x=%d): sum: %w", opEvaluate, x, err)
		}
	}

	return sum, nil
}

// Forecast evaluates positions from, from+1, …, from+count−1.
func Forecast(t *difference.Table, from int64, count int) ([]int64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%s: %w", opForecast, ErrBadCount)
	}

	out := make([]int64, count)
	for i := range out {
		v, err := Evaluate(t, from+int64(i))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opForecast, err)
		}
		out[i] = v
	}

	return out, nil
}
