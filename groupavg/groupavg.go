// SPDX-License-Identifier: MIT

package groupavg

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvtab/frame"
)

// DefaultThreshold is the mean a group must exceed to be kept.
const DefaultThreshold = 7.0

const (
	opFilter   = "groupavg.FilterGroupsByAverage"
	opAverages = "groupavg.Averages"

	panicThresholdInvalid = "groupavg: WithThreshold: threshold must be finite"
)

// GroupMean is one group's key and mean value.
type GroupMean struct {
	Group frame.Label
	Mean  float64
}

// Option configures FilterGroupsByAverage and Averages.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	threshold float64
	group     string
	value     string
}

// WithThreshold sets the mean a group must exceed. Panics when t is NaN or ±Inf.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithColumns groups by group and averages value instead of route and truck.
func WithColumns(group, value string) Option {
	return func(o *Options) {
		o.group = group
		o.value = value
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{threshold: DefaultThreshold, group: frame.Route, value: frame.Truck}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Averages returns the mean value of every group, ascending by group.
//
// Implementation:
//   - Stage 1: read the group column as labels and the value column as floats.
//   - Stage 2: collect each group's values in one pass.
//   - Stage 3: sort the group keys; take each mean with stats.Mean.
//
// Errors: frame.ErrMissingColumn, frame.ErrMalformedTable, frame.ErrTypeMismatch.
func Averages(df dataframe.DataFrame, opts ...Option) ([]GroupMean, error) {
	o := gatherOptions(opts...)
	means, err := averages(df, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAverages, err)
	}

	return means, nil
}

// FilterGroupsByAverage returns, ascending and without duplicates, the groups
// whose mean value is strictly greater than the threshold.
// An empty table yields an empty result.
//
// Errors: frame.ErrMissingColumn, frame.ErrMalformedTable, frame.ErrTypeMismatch.
func FilterGroupsByAverage(df dataframe.DataFrame, opts ...Option) ([]frame.Label, error) {
	o := gatherOptions(opts...)
	means, err := averages(df, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFilter, err)
	}

	out := []frame.Label{}
	for _, g := range means {
		if g.Mean > o.threshold {
			out = append(out, g.Group)
		}
	}

	return out, nil
}

func averages(df dataframe.DataFrame, o Options) ([]GroupMean, error) {
	if err := frame.Require(df, o.group, o.value); err != nil {
		return nil, err
	}
	keys, err := frame.Labels(df, o.group)
	if err != nil {
		return nil, err
	}
	vals, err := frame.Floats(df, o.value)
	if err != nil {
		return nil, err
	}

	groups := make(map[frame.Label]stats.Float64Data)
	order := make([]frame.Label, 0)
	for i, k := range keys {
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], vals[i])
	}
	frame.SortLabels(order)

	out := make([]GroupMean, 0, len(order))
	for _, k := range order {
		m, merr := stats.Mean(groups[k])
		if merr != nil {
			return nil, fmt.Errorf("group %q: %w", k.String(), merr)
		}
		out = append(out, GroupMean{Group: k, Mean: m})
	}

	return out, nil
}
