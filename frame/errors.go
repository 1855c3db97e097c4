// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// Every transform in lvtab surfaces table problems through these sentinels,
// wrapped with column/row context; callers match via errors.Is.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates that a required column is absent from the table.
	ErrMissingColumn = errors.New("frame: missing column")

	// ErrTypeMismatch indicates a cell that is missing (NA) or cannot be
	// coerced to the type the column is read as (number, label, timestamp).
	ErrTypeMismatch = errors.New("frame: type mismatch")

	// ErrEmptyInput indicates that a mean was requested over zero rows.
	// The mean is reported as this error, never as NaN or 0.
	ErrEmptyInput = errors.New("frame: empty input")

	// ErrMalformedTable indicates that the dataframe itself carries an error
	// (DataFrame.Err) or that records could not be loaded.
	ErrMalformedTable = errors.New("frame: malformed table")
)

// frameErrorf wraps err with an operation tag.
func frameErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf reports a bad cell at (col, row) as ErrTypeMismatch, keeping the
// underlying parse error reachable through errors.Is/As.
func cellErrorf(col string, row int, cause error) error {
	if cause == nil {
		return fmt.Errorf("column %q row %d: %w: missing value", col, row, ErrTypeMismatch)
	}

	return fmt.Errorf("column %q row %d: %w: %w", col, row, ErrTypeMismatch, cause)
}

// malformed joins ErrMalformedTable with the gota error that caused it.
func malformed(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrMalformedTable, cause)
}

// columnErr attaches a column name to a sentinel.
func columnErr(col string, err error) error {
	return fmt.Errorf("column %q: %w", col, err)
}
