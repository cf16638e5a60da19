// SPDX-License-Identifier: MIT

package stirling

import (
	"fmt"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

const opGenerate = "Generate"

// Table is a triangular table of signed Stirling numbers of the first kind.
// Row i has i+1 entries.
type Table [][]int64

// Rows returns the number of rows.
func (t Table) Rows() int { return len(t) }

// Row returns a copy of row i. It panics on an out-of-range index, like a slice.
func (t Table) Row(i int) []int64 {
	out := make([]int64, len(t[i]))
	copy(out, t[i])

	return out
}

// Generate returns the first max(n, 1) rows of the table.
//
// Implementation:
//   - Stage 1: row 0 = [1].
//   - Stage 2: row i = (0 ‖ row i−1) with −i·row[i−1][k] added to entry k,
//     i.e. multiply the previous polynomial by (x − i).
//
// Errors:
//   - ErrNegativeOrder for n < 0.
//   - ErrOverflow once an entry leaves the int64 range.
func Generate(n int) (Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opGenerate, n, ErrNegativeOrder)
	}

	rows := n
	if rows < 1 {
		rows = 1
	}
	t := make(Table, 1, rows)
	t[0] = []int64{1}

	return extend(t, rows)
}

// extend grows t in place (reusing its rows) until it holds want rows.
func extend(t Table, want int) (Table, error) {
	for i := len(t); i < want; i++ {
		prev := t[i-1]
		row := make([]int64, len(prev)+1)
		copy(row[1:], prev)

		mul := -int64(i)
		for k := range prev {
			term, err := safeint.Mul(mul, prev[k])
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", opGenerate, i, err)
			}
			if row[k], err = safeint.Add(row[k], term); err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", opGenerate, i, err)
			}
		}
		t = append(t, row)
	}

	return t, nil
}
