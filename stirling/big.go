// SPDX-License-Identifier: MIT

package stirling

import (
	"fmt"
	"math/big"
)

// GenerateBig is Generate in arbitrary precision. It never overflows and is
// used by exact (rational) reconstruction.
func GenerateBig(n int) ([][]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opGenerate, n, ErrNegativeOrder)
	}
	rows := n
	if rows < 1 {
		rows = 1
	}

	out := make([][]*big.Int, 1, rows)
	out[0] = []*big.Int{big.NewInt(1)}

	tmp := new(big.Int)
	for i := 1; i < rows; i++ {
		prev := out[i-1]
		row := make([]*big.Int, len(prev)+1)
		row[0] = new(big.Int)
		for k := range prev {
			row[k+1] = new(big.Int).Set(prev[k])
		}
		mul := big.NewInt(-int64(i))
		for k := range prev {
			row[k].Add(row[k], tmp.Mul(mul, prev[k]))
		}
		out = append(out, row)
	}

	return out, nil
}
