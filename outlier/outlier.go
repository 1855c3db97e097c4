// SPDX-License-Identifier: MIT

package outlier

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvtab/frame"
)

// DefaultFactor is the mean multiplier above which a value is an outlier.
const DefaultFactor = 2.0

const (
	opOutliers  = "outlier.ThresholdOutliers"
	opThreshold = "outlier.Threshold"

	panicFactorInvalid = "outlier: WithFactor: factor must be finite"
)

// Option configures ThresholdOutliers.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	factor float64
	column string
}

// WithFactor sets the mean multiplier. Panics when f is NaN or ±Inf.
func WithFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(panicFactorInvalid)
	}

	return func(o *Options) { o.factor = f }
}

// WithColumn reads values from col instead of bus.
func WithColumn(col string) Option {
	return func(o *Options) { o.column = col }
}

func gatherOptions(user ...Option) Options {
	o := Options{factor: DefaultFactor, column: frame.Bus}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Threshold returns factor * mean(values).
//
// Errors: frame.ErrEmptyInput when values is empty.
func Threshold(values []float64, factor float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%s: %w", opThreshold, frame.ErrEmptyInput)
	}
	mean, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opThreshold, err)
	}

	return factor * mean, nil
}

// ThresholdOutliers returns the ascending 0-based row positions whose value
// is strictly greater than factor times the column mean.
//
// Errors:
//   - frame.ErrEmptyInput for a table with no rows.
//   - frame.ErrMissingColumn, frame.ErrMalformedTable, frame.ErrTypeMismatch.
func ThresholdOutliers(df dataframe.DataFrame, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)
	vals, err := frame.Floats(df, o.column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOutliers, err)
	}
	limit, err := Threshold(vals, o.factor)
	if err != nil {
		return nil, fmt.Errorf("%s: column %q: %w", opOutliers, o.column, err)
	}

	out := []int{}
	for i, v := range vals {
		if v > limit {
			out = append(out, i)
		}
	}

	return out, nil
}
