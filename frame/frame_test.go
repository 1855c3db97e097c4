// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtab/frame"
)

func TestFromRecords_Empty(t *testing.T) {
	t.Parallel()
	_, err := frame.FromRecords(nil)
	assert.ErrorIs(t, err, frame.ErrMalformedTable)
}

func TestFromRecords_HeaderOnly(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{{frame.Car, frame.Bus}})
	require.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())
	assert.Equal(t, []string{frame.Car, frame.Bus}, df.Names())

	cars, err := frame.Floats(df, frame.Car)
	require.NoError(t, err)
	assert.Empty(t, cars)
}

func TestRequire(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{{"a", "b"}, {"1", "x"}})
	require.NoError(t, err)

	assert.NoError(t, frame.Require(df, "a", "b"))
	assert.ErrorIs(t, frame.Require(df, "a", "c"), frame.ErrMissingColumn)
	assert.ErrorIs(t, frame.Require(dataframe.DataFrame{}, "a"), frame.ErrMissingColumn)
}

func TestRequire_MalformedFrame(t *testing.T) {
	t.Parallel()
	// Mismatched column lengths make gota record an error on the frame.
	df := dataframe.New(
		series.New([]float64{1, 2}, series.Float, "a"),
		series.New([]float64{1}, series.Float, "b"),
	)
	require.Error(t, df.Err)
	assert.ErrorIs(t, frame.Require(df, "a"), frame.ErrMalformedTable)
}

func TestFloats_Typed(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{
		{"i", "f"},
		{"1", "1.5"},
		{"2", "-3"},
	})
	require.NoError(t, err)

	ints, err := frame.Floats(df, "i")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ints)

	floats, err := frame.Floats(df, "f")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -3}, floats)
}

func TestFloats_StringCoercion(t *testing.T) {
	t.Parallel()
	df := dataframe.New(series.New([]string{"10", "2.5"}, series.String, frame.Car))
	got, err := frame.Floats(df, frame.Car)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 2.5}, got)
}

func TestFloats_Mismatch(t *testing.T) {
	t.Parallel()
	cases := map[string][][]string{
		"not a number": {{frame.Car}, {"10"}, {"abc"}},
		"bool column":  {{frame.Car}, {"true"}, {"false"}},
		"NA cell":      {{frame.Car}, {"1.5"}, {"NaN"}},
	}
	for name, recs := range cases {
		t.Run(name, func(t *testing.T) {
			df, err := frame.FromRecords(recs)
			require.NoError(t, err)
			_, err = frame.Floats(df, frame.Car)
			assert.ErrorIs(t, err, frame.ErrTypeMismatch)
		})
	}
}

func TestFloats_MissingColumn(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{{"x"}, {"1"}})
	require.NoError(t, err)
	_, err = frame.Floats(df, frame.Bus)
	assert.ErrorIs(t, err, frame.ErrMissingColumn)
}

func TestLabels_Kinds(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{
		{"n", "s"},
		{"10", "b"},
		{"9", "a"},
	})
	require.NoError(t, err)

	nums, err := frame.Labels(df, "n")
	require.NoError(t, err)
	assert.Equal(t, []frame.Label{frame.NumLabel(10), frame.NumLabel(9)}, nums)
	assert.True(t, nums[0].IsNumeric())

	strs, err := frame.Labels(df, "s")
	require.NoError(t, err)
	assert.Equal(t, []frame.Label{frame.TextLabel("b"), frame.TextLabel("a")}, strs)
	assert.False(t, strs[0].IsNumeric())
}

func TestLabels_BlankKey(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{
		{"route"},
		{"A"},
		{""},
	})
	require.NoError(t, err)

	_, err = frame.Labels(df, "route")
	assert.ErrorIs(t, err, frame.ErrTypeMismatch)
	assert.ErrorContains(t, err, "row 1")

	df, err = frame.FromRecords([][]string{{"route"}, {"A"}, {"  "}})
	require.NoError(t, err)
	_, err = frame.Labels(df, "route")
	assert.ErrorIs(t, err, frame.ErrTypeMismatch, "whitespace-only key")
}

func TestTimes(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{
		{frame.Timestamp},
		{"2023-01-02 00:00:00"},
		{"2023-01-08T23:59:59Z"},
	})
	require.NoError(t, err)

	got, err := frame.Times(df, frame.Timestamp)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got[1].Equal(time.Date(2023, 1, 8, 23, 59, 59, 0, time.UTC)))
}

func TestTimes_Unparseable(t *testing.T) {
	t.Parallel()
	df, err := frame.FromRecords([][]string{
		{frame.Timestamp},
		{"2023-01-02 00:00:00"},
		{"yesterday-ish"},
	})
	require.NoError(t, err)
	_, err = frame.Times(df, frame.Timestamp)
	assert.ErrorIs(t, err, frame.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "row 1")
}
