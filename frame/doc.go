// SPDX-License-Identifier: MIT

// Package frame is the table boundary shared by every transform in lvtab.
//
// A table is a gota dataframe.DataFrame: ordered rows of named, typed
// columns. frame never computes anything itself. It validates the shape of a
// table (do the required columns exist, is the frame well-formed) and extracts
// typed columns, rejecting malformed cells before a transform starts its
// single pass.
//
// Extraction helpers:
//
//	Floats  - numeric column; Int/Float series as-is, String series coerced
//	          cell by cell via spf13/cast.
//	Labels  - categorical keys (Label), numeric or textual by column type.
//	Times   - timestamps parsed via cast.ToTimeE; one bad cell fails the call.
//
// Errors (match with errors.Is):
//
//	ErrMissingColumn  - a required column is absent.
//	ErrTypeMismatch   - a cell is missing (NA) or not coercible.
//	ErrEmptyInput     - an aggregate (mean) was requested over zero rows.
//	ErrMalformedTable - the dataframe carries a construction error.
//
// Usage:
//
//	df, err := frame.FromRecords([][]string{
//	  {"id_1", "id_2", "car"},
//	  {"1001", "1002", "9.7"},
//	})
//	if err != nil { ... }
//	cars, err := frame.Floats(df, frame.Car)
package frame
