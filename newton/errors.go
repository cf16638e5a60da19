// SPDX-License-Identifier: MIT

package newton

import (
	"errors"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

var (
	// ErrNilTable indicates a nil *difference.Table was passed in.
	ErrNilTable = errors.New("newton: nil difference table")

	// ErrBadCount indicates a negative Forecast count.
	ErrBadCount = errors.New("newton: count must be >= 0")

	// ErrOverflow aliases safeint.ErrOverflow.
	ErrOverflow = safeint.ErrOverflow
)
