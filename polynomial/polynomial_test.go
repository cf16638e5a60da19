// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nopeless/polynomial-finder/difference"
	"github.com/nopeless/polynomial-finder/polynomial"
	"github.com/nopeless/polynomial-finder/stirling"
)

const epsCoeff = 1e-9

func mustBuild(t *testing.T, seq []int64, opts ...difference.Option) *difference.Table {
	t.Helper()
	tbl, _, err := difference.Build(seq, opts...)
	require.NoError(t, err)

	return tbl
}

func TestReconstruct_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  []int64
		want polynomial.Coefficients
		text string
	}{
		{"shifted_squares", []int64{1, 4, 9, 16, 25}, polynomial.Coefficients{1, 2, 1, 0}, "x^2 + 2x + 1"},
		{"squares", []int64{0, 1, 4, 9, 16}, polynomial.Coefficients{0, 0, 1, 0}, "x^2"},
		{"linear", []int64{1, 2, 3}, polynomial.Coefficients{1, 1, 0}, "x + 1"},
		{"triangular", []int64{0, 1, 3, 6}, polynomial.Coefficients{0, 0.5, 0.5, 0}, "0.5x^2 + 0.5x"},
		{"single", []int64{5}, polynomial.Coefficients{5}, "5"},
		{"zero", []int64{0}, polynomial.Coefficients{0}, ""},
		{"negative_cubic", []int64{2, 1, -6, -25}, polynomial.Coefficients{2, 0, 0, -1}, "-x^3 + 2"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := polynomial.Reconstruct(mustBuild(t, tc.seq))
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			assert.InDeltaSlice(t, []float64(tc.want), []float64(got), epsCoeff)
			assert.Equal(t, tc.text, polynomial.Format(got))
		})
	}
}

// TestReconstruct_LegacyDegenerate: the legacy rule changes only the state,
// not the coefficients.
func TestReconstruct_LegacyDegenerate(t *testing.T) {
	t.Parallel()

	tbl, state, err := difference.Build([]int64{1, 2, 3}, difference.WithLegacyTermination())
	require.NoError(t, err)
	require.Equal(t, difference.Degenerate, state)

	got, err := polynomial.Reconstruct(tbl)
	require.NoError(t, err)
	assert.Equal(t, "x + 1", polynomial.Format(got))
}

func TestReconstruct_NilTable(t *testing.T) {
	t.Parallel()

	_, err := polynomial.Reconstruct(nil)
	assert.ErrorIs(t, err, polynomial.ErrNilTable)
	_, err = polynomial.ReconstructExact(nil)
	assert.ErrorIs(t, err, polynomial.ErrNilTable)
}

// TestReconstruct_OverflowFallsBackToExact drives the float path past 21!
// and shows the rational path still reproduces the input.
func TestReconstruct_OverflowFallsBackToExact(t *testing.T) {
	t.Parallel()

	seq := make([]int64, 24)
	for i := range seq {
		seq[i] = int64(i % 2)
	}
	tbl := mustBuild(t, seq)

	_, err := polynomial.Reconstruct(tbl)
	assert.ErrorIs(t, err, polynomial.ErrOverflow)

	exact, err := polynomial.ReconstructExact(tbl)
	require.NoError(t, err)
	require.Len(t, exact, tbl.Depth())
	for x, want := range seq {
		got := polynomial.EvalRat(exact, new(big.Rat).SetInt64(int64(x)))
		assert.Equal(t, 0, got.Cmp(new(big.Rat).SetInt64(want)), "x=%d", x)
	}
}

func TestReconstruct_WithCache(t *testing.T) {
	t.Parallel()

	cache := stirling.NewCache()
	tbl := mustBuild(t, []int64{3, 1, 4, 1, 5, 9, 2, 6})

	want, err := polynomial.Reconstruct(tbl)
	require.NoError(t, err)
	got, err := polynomial.Reconstruct(tbl, polynomial.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, tbl.Depth()-1, cache.Len())

	assert.Panics(t, func() { polynomial.WithCache(nil) })
}

func TestReconstructExact_MatchesFloat(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, []int64{0, 1, 3, 6})
	exact, err := polynomial.ReconstructExact(tbl)
	require.NoError(t, err)
	assert.Equal(t, "1/2x^2 + 1/2x", polynomial.FormatExact(exact))

	approx, err := polynomial.Reconstruct(tbl)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64(approx), []float64(polynomial.Float64s(exact)), epsCoeff)
}

func TestCoefficients_DegreeAndEval(t *testing.T) {
	t.Parallel()

	c := polynomial.Coefficients{1, 2, 1, 0}
	assert.Equal(t, 2, c.Degree())
	assert.Equal(t, 36.0, c.Eval(5))
	assert.Equal(t, "x^2 + 2x + 1", c.String())
	assert.Equal(t, -1, polynomial.Coefficients{0, 0}.Degree())
	assert.Equal(t, 0.0, polynomial.Coefficients{}.Eval(3))
}

func TestFit(t *testing.T) {
	t.Parallel()

	s, err := polynomial.Fit(polynomial.Coefficients{1, 2, 1}, []int64{1, 4, 9, 16, 25})
	require.NoError(t, err)
	assert.Equal(t, polynomial.FitSummary{}, s)
	assert.True(t, s.Within(0))

	s, err = polynomial.Fit(polynomial.Coefficients{0, 1}, []int64{0, 1, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.MaxAbs, epsCoeff)
	assert.InDelta(t, 2.0/3, s.Mean, epsCoeff)
	assert.False(t, s.Within(1))

	assert.Equal(t, []float64{0, 0, -2}, polynomial.Residuals(polynomial.Coefficients{0, 1}, []int64{0, 1, 4}))

	_, err = polynomial.Fit(polynomial.Coefficients{1}, nil)
	assert.ErrorIs(t, err, polynomial.ErrEmptySequence)
}
