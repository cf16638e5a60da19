// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const opFit = "Fit"

// FitSummary describes how closely coefficients reproduce a sequence at x = 0, 1, 2, ….
type FitSummary struct {
	MaxAbs float64 `json:"max_abs"` // largest |P(x) − seq[x]|
	Mean   float64 `json:"mean"`    // mean |P(x) − seq[x]|
	StdDev float64 `json:"std_dev"` // population standard deviation of |P(x) − seq[x]|
}

// Within reports whether every residual is at most tol.
func (s FitSummary) Within(tol float64) bool { return s.MaxAbs <= tol }

// Residuals returns P(x) − seq[x] for x = 0..len(seq)−1.
func Residuals(c Coefficients, seq []int64) []float64 {
	out := make([]float64, len(seq))
	for x, want := range seq {
		out[x] = c.Eval(float64(x)) - float64(want)
	}

	return out
}

// Fit summarizes the absolute residuals of c against seq.
func Fit(c Coefficients, seq []int64) (FitSummary, error) {
	if len(seq) == 0 {
		return FitSummary{}, fmt.Errorf("%s: %w", opFit, ErrEmptySequence)
	}

	abs := Residuals(c, seq)
	for i, r := range abs {
		abs[i] = math.Abs(r)
	}
	data := stats.Float64Data(abs)

	var (
		s   FitSummary
		err error
	)
	if s.MaxAbs, err = stats.Max(data); err != nil {
		return FitSummary{}, fmt.Errorf("%s: max: %w", opFit, err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return FitSummary{}, fmt.Errorf("%s: mean: %w", opFit, err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return FitSummary{}, fmt.Errorf("%s: stddev: %w", opFit, err)
	}

	return s, nil
}
