// SPDX-License-Identifier: MIT

package piecewise

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvtab/matrix"
)

const opTransform = "piecewise.Transform"

// Apply transforms a single value under opts.
// Non-finite values are scaled but not rounded.
func Apply(v float64, opts ...Option) float64 {
	return gatherOptions(opts...).apply(v)
}

func (o Options) apply(v float64) float64 {
	f := o.atOrBelow
	if v > o.threshold {
		f = o.above
	}
	x := v * f
	if !finite(x) {
		return x
	}

	return decimal.NewFromFloat(x).Round(int32(o.places)).InexactFloat64()
}

// Transform returns a new matrix, labeled like m, with Apply run on every
// present cell. Unset cells stay unset and m is left untouched.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrNaNInf when a result is non-finite under m's numeric policy.
func Transform(m *matrix.Labeled, opts ...Option) (*matrix.Labeled, error) {
	o := gatherOptions(opts...)
	out, err := matrix.Map(m, o.apply)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}

	return out, nil
}
