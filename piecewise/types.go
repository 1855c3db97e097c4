// SPDX-License-Identifier: MIT

package piecewise

import "math"

// Defaults.
const (
	DefaultThreshold = 20.0
	DefaultAbove     = 0.75
	DefaultAtOrBelow = 1.25
	DefaultPlaces    = 1
)

const (
	panicThresholdInvalid = "piecewise: WithThreshold: threshold must be finite"
	panicFactorsInvalid   = "piecewise: WithFactors: factors must be finite"
	panicPlacesInvalid    = "piecewise: WithPlaces: places must be in [0, 15]"
)

// maxPlaces bounds WithPlaces to what a float64 can meaningfully carry.
const maxPlaces = 15

// Option configures Transform and Apply.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	threshold float64
	above     float64
	atOrBelow float64
	places    int
}

// WithThreshold sets the branch point. Values equal to it take the
// at-or-below branch. Panics when t is NaN or ±Inf.
func WithThreshold(t float64) Option {
	if !finite(t) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithFactors sets the multiplier for values above the threshold and for
// values at or below it. Panics when either is NaN or ±Inf.
func WithFactors(above, atOrBelow float64) Option {
	if !finite(above) || !finite(atOrBelow) {
		panic(panicFactorsInvalid)
	}

	return func(o *Options) {
		o.above = above
		o.atOrBelow = atOrBelow
	}
}

// WithPlaces sets the number of decimal places kept. Panics outside [0, 15].
func WithPlaces(n int) Option {
	if n < 0 || n > maxPlaces {
		panic(panicPlacesInvalid)
	}

	return func(o *Options) { o.places = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		threshold: DefaultThreshold,
		above:     DefaultAbove,
		atOrBelow: DefaultAtOrBelow,
		places:    DefaultPlaces,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
