// SPDX-License-Identifier: MIT

package stirling

import (
	"errors"

	"github.com/nopeless/polynomial-finder/internal/safeint"
)

var (
	// ErrNegativeOrder is returned when Generate is asked for a negative row count.
	ErrNegativeOrder = errors.New("stirling: negative order")

	// ErrOverflow aliases safeint.ErrOverflow so errors.Is works from either package.
	ErrOverflow = safeint.ErrOverflow
)
