// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"

	"github.com/katalvlaran/lvtab/frame"
)

const (
	opValidate  = "coverage.ValidateTemporalCoverage"
	opSummarize = "coverage.Summarize"
)

// Summarize groups df by (id, id_2) and aggregates each group's timestamps.
// The result is ordered by Key.
//
// Implementation:
//   - Stage 1: read id and id_2 as labels; parse every timestamp.
//   - Stage 2: fold each row into its group's Summary in one pass.
//   - Stage 3: sort the summaries by Key.
//
// Errors:
//   - frame.ErrMissingColumn, frame.ErrMalformedTable.
//   - frame.ErrTypeMismatch for any unparseable timestamp (the whole call fails).
func Summarize(df dataframe.DataFrame) ([]Summary, error) {
	sums, err := summarize(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarize, err)
	}

	return sums, nil
}

// ValidateTemporalCoverage reports, per (id, id_2) group, whether its
// timestamps cover every weekday from 00:00:00 to 23:59:59.
// An empty table yields an empty Series.
//
// Errors: as Summarize.
func ValidateTemporalCoverage(df dataframe.DataFrame) (Series, error) {
	sums, err := summarize(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opValidate, err)
	}

	out := make(Series, len(sums))
	for i, s := range sums {
		out[i] = Coverage{Key: s.Key, Complete: s.Complete()}
	}

	return out, nil
}

func summarize(df dataframe.DataFrame) ([]Summary, error) {
	if err := frame.Require(df, frame.ID, frame.ID2, frame.Timestamp); err != nil {
		return nil, err
	}
	ids, err := frame.Labels(df, frame.ID)
	if err != nil {
		return nil, err
	}
	ids2, err := frame.Labels(df, frame.ID2)
	if err != nil {
		return nil, err
	}
	times, err := frame.Times(df, frame.Timestamp)
	if err != nil {
		return nil, err
	}

	groups := make(map[Key]*Summary)
	for i, t := range times {
		k := Key{ID: ids[i], ID2: ids2[i]}
		s, ok := groups[k]
		if !ok {
			s = &Summary{Key: k}
			groups[k] = s
		}
		s.add(t)
	}

	out := make([]Summary, 0, len(groups))
	for _, s := range groups {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int { return a.Key.Compare(b.Key) })

	return out, nil
}
