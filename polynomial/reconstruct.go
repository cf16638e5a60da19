// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math/big"

	"github.com/nopeless/polynomial-finder/difference"
	"github.com/nopeless/polynomial-finder/internal/safeint"
	"github.com/nopeless/polynomial-finder/stirling"
)

const (
	opReconstruct      = "Reconstruct"
	opReconstructExact = "ReconstructExact"
)

// Reconstruct returns the power-basis coefficients of the polynomial encoded
// by t; len(result) == t.Depth().
//
// Implementation:
//   - Stage 1: c[0] = t.Leading(0).
//   - Stage 2: S = Stirling rows for depth−1.
//   - Stage 3: for i in 0..depth−2, with lead = t.Leading(i+1) and p = (i+1)!,
//     add float64(lead·S[i][k]) / float64(p) into c[k+1].
//
// Errors:
//   - ErrNilTable for a nil table.
//   - ErrOverflow when (i+1)!, a Stirling entry or lead·S[i][k] overflows int64.
//     Use ReconstructExact for such tables.
func Reconstruct(t *difference.Table, opts ...Option) (Coefficients, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, ErrNilTable)
	}
	var cfg reconstructConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	depth := t.Depth()
	coeffs := make(Coefficients, depth)
	coeffs[0] = float64(t.Leading(0))
	if depth == 1 {
		return coeffs, nil
	}

	basis, err := cfg.table(depth - 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	for i := 0; i < depth-1; i++ {
		lead := t.Leading(i + 1)
		p, err := safeint.Factorial(i + 1)
		if err != nil {
			return nil, fmt.Errorf("%s: (%d)!: %w", opReconstruct, i+1, err)
		}
		for k, s := range basis[i] {
			num, err := safeint.Mul(lead, s)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", opReconstruct, i+1, err)
			}
			coeffs[k+1] += float64(num) / float64(p)
		}
	}

	return coeffs, nil
}

// ReconstructExact is Reconstruct over the rationals: same recurrence,
// arbitrary precision, no rounding. Every entry of the result is non-nil.
func ReconstructExact(t *difference.Table) ([]*big.Rat, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opReconstructExact, ErrNilTable)
	}

	depth := t.Depth()
	coeffs := make([]*big.Rat, depth)
	for d := range coeffs {
		coeffs[d] = new(big.Rat)
	}
	coeffs[0].SetInt64(t.Leading(0))
	if depth == 1 {
		return coeffs, nil
	}

	basis, err := stirling.GenerateBig(depth - 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstructExact, err)
	}

	var (
		fact = big.NewInt(1)
		num  = new(big.Int)
		term = new(big.Rat)
	)
	for i := 0; i < depth-1; i++ {
		fact.Mul(fact, big.NewInt(int64(i+1)))
		lead := big.NewInt(t.Leading(i + 1))
		if lead.Sign() == 0 {
			continue
		}
		for k, s := range basis[i] {
			num.Mul(lead, s)
			term.SetFrac(num, fact)
			coeffs[k+1].Add(coeffs[k+1], term)
		}
	}

	return coeffs, nil
}
