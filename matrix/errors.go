// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels, optionally wrapped with an operation
// tag via matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when Resolve receives a nil graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadShape is returned when the requested order is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegative indicates an attempt to store a negative distance.
	ErrNegative = errors.New("matrix: negative distance")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
