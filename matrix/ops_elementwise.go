// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise kernel used by scalar transforms (piecewise).
//   - Keep loops deterministic and cache-friendly over the flat buffer.
//
// Determinism & Performance:
//   - Fixed loop order (flat 0..n-1).
//   - One allocation for the output copy; O(r*c) time and space.

package matrix

const opMap = "Map"

// Map returns a new matrix, shaped and labeled like m, whose present cells
// hold f(v) for the corresponding present cell v of m. Unset cells stay unset
// and f is never called for them. m is not modified.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); Clone m (independent storage).
//   - Stage 2: single flat pass over present offsets; apply f; enforce the
//     numeric policy of m on each result.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrNaNInf when f yields a non-finite value under the numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map(m *Labeled, f func(float64) float64) (*Labeled, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out := m.Clone()

	c := len(out.cols)
	for k, ok := range out.set {
		if !ok {
			continue
		}
		v := f(out.data[k])
		if out.validateNaNInf {
			if err := validateFinite(v); err != nil {
				return nil, matrixErrorf(opMap, labeledErrorf(opMap, k/c, k%c, err))
			}
		}
		out.data[k] = v
	}

	return out, nil
}
