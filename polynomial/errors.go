// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

var (
	// ErrNilTable indicates a nil *difference.Table was passed in.
	ErrNilTable = errors.New("polynomial: nil difference table")

	// ErrEmptySequence indicates Fit was given no observations.
	ErrEmptySequence = errors.New("polynomial: empty sequence")

	// ErrOverflow aliases safeint.ErrOverflow.
	ErrOverflow = safeint.ErrOverflow
)
