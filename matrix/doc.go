// SPDX-License-Identifier: MIT

// Package matrix provides Labeled, a two-dimensional associative matrix keyed
// by (row-label, column-label) pairs whose cells are numeric or unset.
//
// The package provides:
//
//   - Labeled: row-major float64 storage plus a presence mask, so an absent
//     entry means "no value" and is never confused with 0.
//   - Label-addressed access (Lookup, SetAt) next to index access (At, Set).
//   - Map: a copy-producing element-wise kernel that touches present cells
//     only and preserves absence.
//   - A numeric policy (WithValidateNaNInf / WithNoValidateNaNInf) enforced
//     on every write, Map included.
//
// Labels come from frame.Label, so matrices built from numeric columns order
// and print their labels numerically.
//
// See the examples in this package and in pivot/piecewise for usage patterns.
package matrix
