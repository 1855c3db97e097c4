// SPDX-License-Identifier: MIT

// Package piecewise applies a two-branch scalar transform to every present
// cell of a labeled matrix.
//
// Rule (defaults):
//
//	v >  20  →  round(v * 0.75, 1)
//	v <= 20  →  round(v * 1.25, 1)
//
// Rounding is decimal, half away from zero, on the shortest decimal form of
// the product (shopspring/decimal): 0.25 → 0.3, 17.25 → 17.3, -0.25 → -0.3.
//
// Unset cells stay unset; the input matrix is not modified. The transform is
// not idempotent: applying it to its own output moves values again.
//
// Usage:
//
//	out, err := piecewise.Transform(m)
//	out, err = piecewise.Transform(m, piecewise.WithThreshold(10), piecewise.WithPlaces(2))
package piecewise
