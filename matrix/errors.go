// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf/labeledErrorf;
// callers still use errors.Is to match.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Unset) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was written while the numeric
	// policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownLabel indicates that a row or column label is not part of the matrix.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrDuplicateLabel indicates that a label occurs twice on the same axis.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")
)

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// labeledErrorf wraps an error with a uniform Labeled context and callsite indices.
func labeledErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Labeled.%s(%d,%d): %w", method, row, col, err)
}
