// SPDX-License-Identifier: MIT

package bucket

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvtab/frame"
)

// Category is the label of one bin.
type Category string

// Default bin labels.
const (
	Low    Category = "low"
	Medium Category = "medium"
	High   Category = "high"
)

// ErrBadScheme indicates edges that are not strictly increasing and finite,
// a label count other than len(Edges)+1, or a repeated or empty label.
var ErrBadScheme = errors.New("bucket: bad scheme")

// Scheme describes len(Edges)+1 half-open bins:
//
//	Labels[0]         v < Edges[0]
//	Labels[i]         Edges[i-1] <= v < Edges[i]
//	Labels[len-1]     v >= Edges[len-1]
type Scheme struct {
	Edges  []float64
	Labels []Category
}

// DefaultScheme returns the low/medium/high scheme with edges 15 and 25.
func DefaultScheme() Scheme {
	return Scheme{Edges: []float64{15, 25}, Labels: []Category{Low, Medium, High}}
}

// Validate checks s. Errors: ErrBadScheme.
func (s Scheme) Validate() error {
	if len(s.Labels) != len(s.Edges)+1 {
		return ErrBadScheme
	}
	for i, e := range s.Edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return ErrBadScheme
		}
		if i > 0 && e <= s.Edges[i-1] {
			return ErrBadScheme
		}
	}
	seen := make(map[Category]struct{}, len(s.Labels))
	for _, l := range s.Labels {
		if _, dup := seen[l]; dup || l == "" {
			return ErrBadScheme
		}
		seen[l] = struct{}{}
	}

	return nil
}

// Count is the number of rows that fell into one bin.
type Count struct {
	Category Category
	N        int
}

// Counts lists the non-empty bins ordered by Category.
type Counts []Count

// Get returns the count for c, 0 when c did not occur.
func (cs Counts) Get(c Category) int {
	for _, x := range cs {
		if x.Category == c {
			return x.N
		}
	}

	return 0
}

// Total returns the number of rows counted.
func (cs Counts) Total() int {
	n := 0
	for _, x := range cs {
		n += x.N
	}

	return n
}

// Map returns the counts keyed by category.
func (cs Counts) Map() map[Category]int {
	out := make(map[Category]int, len(cs))
	for _, x := range cs {
		out[x.Category] = x.N
	}

	return out
}

// Option configures CategorizeAndCount.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	scheme Scheme
	column string
}

// WithScheme replaces the default bins. The scheme is validated when used.
func WithScheme(s Scheme) Option {
	return func(o *Options) {
		o.scheme = Scheme{
			Edges:  append([]float64(nil), s.Edges...),
			Labels: append([]Category(nil), s.Labels...),
		}
	}
}

// WithColumn reads values from col instead of car.
func WithColumn(col string) Option {
	return func(o *Options) { o.column = col }
}

func gatherOptions(user ...Option) Options {
	o := Options{scheme: DefaultScheme(), column: frame.Car}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
