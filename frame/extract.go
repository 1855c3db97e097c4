// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cast"
)

// errBlankKey is the cause attached to a blank categorical cell.
var errBlankKey = errors.New("blank key")

// Floats returns column col as float64 values in row order.
//
// Int and Float series are read directly. String series are coerced cell by
// cell with cast.ToFloat64E. Bool series are rejected.
//
// Errors: ErrMissingColumn, ErrMalformedTable, ErrTypeMismatch (NA cell,
// Bool column, or a string that does not parse as a number).
func Floats(df dataframe.DataFrame, col string) ([]float64, error) {
	s, err := column(df, col)
	if err != nil {
		return nil, err
	}
	if s.Type() == series.Bool {
		return nil, columnErr(col, ErrTypeMismatch)
	}

	out := make([]float64, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			return nil, cellErrorf(col, i, nil)
		}
		if s.Type() == series.String {
			v, perr := cast.ToFloat64E(e.String())
			if perr != nil {
				return nil, cellErrorf(col, i, perr)
			}
			out[i] = v
			continue
		}
		out[i] = e.Float()
	}

	return out, nil
}

// Labels returns column col as categorical labels in row order.
// Int/Float columns give numeric labels, everything else textual ones.
// A blank text key (empty or whitespace only) is treated like NA.
//
// Errors: ErrMissingColumn, ErrMalformedTable, ErrTypeMismatch (NA or blank cell).
func Labels(df dataframe.DataFrame, col string) ([]Label, error) {
	s, err := column(df, col)
	if err != nil {
		return nil, err
	}
	numeric := s.Type() == series.Int || s.Type() == series.Float

	out := make([]Label, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			return nil, cellErrorf(col, i, nil)
		}
		if numeric {
			out[i] = NumLabel(e.Float())
			continue
		}
		text := e.String()
		if strings.TrimSpace(text) == "" {
			return nil, cellErrorf(col, i, errBlankKey)
		}
		out[i] = TextLabel(text)
	}

	return out, nil
}

// Times returns column col parsed as timestamps in row order.
// Every cell goes through cast.ToTimeE (RFC 3339, "2006-01-02 15:04:05",
// date-only and the other layouts cast knows). Zone-less values are UTC.
// A single unparseable cell fails the whole call: bad timestamps are an
// input-format error, not a row to skip.
//
// Errors: ErrMissingColumn, ErrMalformedTable, ErrTypeMismatch.
func Times(df dataframe.DataFrame, col string) ([]time.Time, error) {
	s, err := column(df, col)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			return nil, cellErrorf(col, i, nil)
		}
		t, perr := cast.ToTimeE(e.String())
		if perr != nil {
			return nil, cellErrorf(col, i, perr)
		}
		out[i] = t
	}

	return out, nil
}
