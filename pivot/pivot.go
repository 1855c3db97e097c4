// SPDX-License-Identifier: MIT

package pivot

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/katalvlaran/lvtab/frame"
	"github.com/katalvlaran/lvtab/matrix"
)

const (
	opPairwise = "pivot.Pairwise"
	opBuild    = "pivot.Build"
)

// Pairwise pivots df on id_1 (rows) × id_2 (columns) with car as the value.
// See Build for ordering and duplicate handling.
func Pairwise(df dataframe.DataFrame, opts ...matrix.Option) (*matrix.Labeled, error) {
	m, err := Build(df, frame.ID1, frame.ID2, frame.Car, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	return m, nil
}

// Build pivots df on rowCol × colCol, filling cells from valCol.
//
// Implementation:
//   - Stage 1: check the three columns exist; read keys as labels and values as floats.
//   - Stage 2: collect distinct row and column keys in first-seen order.
//   - Stage 3: allocate the matrix and write every row in table order, so a
//     repeated (row, col) pair keeps its last value.
//
// Behavior highlights:
//   - An empty table yields a 0×0 matrix.
//   - opts set the matrix numeric policy; by default NaN/Inf values fail.
//
// Errors:
//   - frame.ErrMissingColumn, frame.ErrMalformedTable, frame.ErrTypeMismatch.
//   - matrix.ErrNaNInf for a non-finite value under the numeric policy.
func Build(df dataframe.DataFrame, rowCol, colCol, valCol string, opts ...matrix.Option) (*matrix.Labeled, error) {
	if err := frame.Require(df, rowCol, colCol, valCol); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	rowKeys, err := frame.Labels(df, rowCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	colKeys, err := frame.Labels(df, colCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	vals, err := frame.Floats(df, valCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	m, err := matrix.NewLabeled(distinct(rowKeys), distinct(colKeys), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	for i, v := range vals {
		if err = m.SetAt(rowKeys[i], colKeys[i], v); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opBuild, i, err)
		}
	}

	return m, nil
}

// distinct returns the unique labels of ls in first-seen order.
func distinct(ls []frame.Label) []frame.Label {
	seen := make(map[frame.Label]struct{}, len(ls))
	out := make([]frame.Label, 0, len(ls))
	for _, l := range ls {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}
