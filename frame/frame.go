// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	opFromRecords = "FromRecords"
	opRequire     = "Require"
)

// FromRecords builds a table from string records; records[0] is the header.
// Column types are detected by gota (Int, Float, Bool, else String).
// A header-only input yields a zero-row table whose columns are all String.
//
// Errors: ErrMalformedTable when records is empty or gota rejects them.
func FromRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, frameErrorf(opFromRecords, ErrMalformedTable)
	}
	if len(records) == 1 {
		cols := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			cols[i] = series.New([]string{}, series.String, name)
		}
		df := dataframe.New(cols...)
		if df.Err != nil {
			return dataframe.DataFrame{}, malformed(opFromRecords, df.Err)
		}

		return df, nil
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, malformed(opFromRecords, df.Err)
	}

	return df, nil
}

// Require checks that df is well-formed and has every column in cols.
// The first absent column is reported.
//
// Errors: ErrMalformedTable, ErrMissingColumn.
func Require(df dataframe.DataFrame, cols ...string) error {
	if df.Err != nil {
		return malformed(opRequire, df.Err)
	}
	have := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		have[name] = struct{}{}
	}
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			return frameErrorf(opRequire, columnErr(c, ErrMissingColumn))
		}
	}

	return nil
}

// column fetches a column that Require has already vouched for.
func column(df dataframe.DataFrame, col string) (series.Series, error) {
	if err := Require(df, col); err != nil {
		return series.Series{}, err
	}
	s := df.Col(col)
	if s.Err != nil {
		return series.Series{}, malformed(opRequire, s.Err)
	}

	return s, nil
}
