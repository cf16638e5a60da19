// SPDX-License-Identifier: MIT

package difference

import (
	"fmt"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

const opBuild = "Build"

// verdict is the per-row classification made once for every row.
type verdict int

const (
	verdictContinue verdict = iota
	verdictExact
	verdictDegenerate
)

// classify decides whether construction stops at row.
//
//	all zeros            → Exact
//	length 1, non-zero   → Degenerate
//	otherwise            → continue
//
// With legacy set, an appended row of length 1 is Degenerate regardless of value.
func classify(row []int64, appended, legacy bool) verdict {
	if legacy && appended && len(row) == 1 {
		return verdictDegenerate
	}
	if AllZero(row) {
		return verdictExact
	}
	if len(row) == 1 {
		return verdictDegenerate
	}

	return verdictContinue
}

// Build computes the finite-difference table of seq.
//
// Implementation:
//   - Stage 1: validate seq and preallocate an arena of n(n+1)/2 values.
//   - Stage 2: copy seq into row 0 and classify it.
//   - Stage 3: append difference rows until a row classifies as Exact or Degenerate.
//
// Errors:
//   - ErrEmptySequence when len(seq) == 0.
//   - ErrOverflow when a difference does not fit in int64.
//
// Complexity: O(n²) time, O(n²) memory; at most n−1 rows are appended.
func Build(seq []int64, opts ...Option) (*Table, State, error) {
	n := len(seq)
	if n == 0 {
		return nil, Degenerate, fmt.Errorf("%s: %w", opBuild, ErrEmptySequence)
	}
	cfg := gatherOptions(opts)

	t := &Table{
		arena:   make([]int64, n*(n+1)/2),
		offsets: make([]int, 1, n),
		n:       n,
	}
	copy(t.arena, seq)

	v := classify(t.row(0), false, cfg.legacy)
	for v == verdictContinue {
		var (
			prev  = t.row(t.Depth() - 1)
			start = t.offsets[t.Depth()-1] + len(prev)
			next  = t.arena[start : start+len(prev)-1]
			err   error
		)
		for j := range next {
			if next[j], err = safeint.Sub(prev[j+1], prev[j]); err != nil {
				return nil, Degenerate, fmt.Errorf("%s: row %d: %w", opBuild, t.Depth(), err)
			}
		}
		t.offsets = append(t.offsets, start)
		v = classify(next, true, cfg.legacy)
	}

	if v == verdictExact {
		return t, Exact, nil
	}

	return t, Degenerate, nil
}
