// SPDX-License-Identifier: MIT

package difference

import (
	"errors"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

var (
	// ErrEmptySequence indicates Build was called with no values.
	ErrEmptySequence = errors.New("difference: input sequence must be non-empty")

	// ErrOverflow aliases safeint.ErrOverflow; a difference left the int64 range.
	ErrOverflow = safeint.ErrOverflow
)
