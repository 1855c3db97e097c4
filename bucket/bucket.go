// SPDX-License-Identifier: MIT

package bucket

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/katalvlaran/lvtab/frame"
)

const opCount = "bucket.CategorizeAndCount"

// Categorize returns the bin of v under s. It reports false for NaN, which
// belongs to no bin. s is assumed valid.
func Categorize(v float64, s Scheme) (Category, bool) {
	if math.IsNaN(v) || len(s.Labels) == 0 {
		return "", false
	}
	for i, e := range s.Edges {
		if v < e {
			return s.Labels[i], true
		}
	}

	return s.Labels[len(s.Labels)-1], true
}

// CategorizeAndCount bins the value column of df and counts rows per bin.
//
// Implementation:
//   - Stage 1: validate the scheme; read the column as floats.
//   - Stage 2: bin every value and tally; emit non-empty bins sorted by label.
//
// Behavior highlights:
//   - An empty table yields empty Counts.
//   - Counts.Total() equals the row count on success.
//
// Errors:
//   - ErrBadScheme for an invalid WithScheme argument.
//   - frame.ErrMissingColumn, frame.ErrMalformedTable, frame.ErrTypeMismatch
//     (including NaN cells).
func CategorizeAndCount(df dataframe.DataFrame, opts ...Option) (Counts, error) {
	o := gatherOptions(opts...)
	if err := o.scheme.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCount, err)
	}
	vals, err := frame.Floats(df, o.column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCount, err)
	}

	tally := make(map[Category]int, len(o.scheme.Labels))
	for i, v := range vals {
		c, ok := Categorize(v, o.scheme)
		if !ok {
			return nil, fmt.Errorf("%s: column %q row %d: %w: NaN", opCount, o.column, i, frame.ErrTypeMismatch)
		}
		tally[c]++
	}

	out := make(Counts, 0, len(tally))
	for c, n := range tally {
		out = append(out, Count{Category: c, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int { return strings.Compare(string(a.Category), string(b.Category)) })

	return out, nil
}
