// SPDX-License-Identifier: MIT

// Package matrix - Labeled storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Track presence per cell: absent entries are "no value", not zero.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed label order, no map iteration on output paths).
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewLabeled: O(r + c + r*c); At/Set/Lookup: O(1); Clone/Equal/Map: O(r*c).

package matrix

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvtab/frame"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewLabeled" // ctor tag
	ctxAt     = "At"         // method tag used in error wrappers
	ctxSet    = "Set"        // method tag used in error wrappers
	ctxUnset  = "Unset"      // method tag used in error wrappers
	ctxLookup = "Lookup"     // method tag used in error wrappers
	ctxSetAt  = "SetAt"      // method tag used in error wrappers
)

// _fmtUnset is how String renders an absent cell.
const _fmtUnset = "-"

// Labeled is a row-label × column-label matrix of optional float64 cells.
//   - rows/cols hold the axis labels in their fixed order.
//   - rowIdx/colIdx map a label back to its position.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - set marks which offsets hold a value; data at an unset offset is 0 and meaningless.
//   - validateNaNInf enables NaN/Inf rejection on writes (policy default from options.go).
type Labeled struct {
	rows, cols     []frame.Label
	rowIdx, colIdx map[frame.Label]int
	data           []float64
	set            []bool
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Labeled)(nil)

// NewLabeled creates an empty (all cells unset) matrix with the given axes.
//
// Implementation:
//   - Stage 1: copy and index both label slices; a repeated label fails.
//   - Stage 2: allocate data and presence buffers of len(rows)*len(cols).
//   - Stage 3: apply the numeric policy from opts.
//
// Behavior highlights:
//   - 0×0, 0×N and N×0 are legal; they hold no cells.
//   - The caller's label slices are copied, never retained.
//
// Errors:
//   - ErrDuplicateLabel when a label repeats on one axis.
//
// Complexity:
//   - Time O(r + c + r*c), Space O(r*c).
func NewLabeled(rows, cols []frame.Label, opts ...Option) (*Labeled, error) {
	o := gatherOptions(opts...)

	rowIdx, err := indexLabels(rows)
	if err != nil {
		return nil, matrixErrorf(ctxNew+": rows", err)
	}
	colIdx, err := indexLabels(cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew+": cols", err)
	}

	n := len(rows) * len(cols)

	return &Labeled{
		rows:           append([]frame.Label(nil), rows...),
		cols:           append([]frame.Label(nil), cols...),
		rowIdx:         rowIdx,
		colIdx:         colIdx,
		data:           make([]float64, n),
		set:            make([]bool, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// indexLabels maps each label to its position, rejecting repeats.
func indexLabels(ls []frame.Label) (map[frame.Label]int, error) {
	idx := make(map[frame.Label]int, len(ls))
	for i, l := range ls {
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("%q: %w", l.String(), ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Labeled) Rows() int { return len(m.rows) }

// Cols returns the number of columns. Complexity: O(1).
func (m *Labeled) Cols() int { return len(m.cols) }

// RowLabels returns a copy of the row labels in order.
func (m *Labeled) RowLabels() []frame.Label { return append([]frame.Label(nil), m.rows...) }

// ColLabels returns a copy of the column labels in order.
func (m *Labeled) ColLabels() []frame.Label { return append([]frame.Label(nil), m.cols...) }

// RowIndex returns the position of row label l.
func (m *Labeled) RowIndex(l frame.Label) (int, bool) {
	i, ok := m.rowIdx[l]
	return i, ok
}

// ColIndex returns the position of column label l.
func (m *Labeled) ColIndex(l frame.Label) (int, bool) {
	j, ok := m.colIdx[l]
	return j, ok
}

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Labeled) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.cols) {
		return 0, labeledErrorf(method, row, col, ErrOutOfRange)
	}

	return row*len(m.cols) + col, nil
}

// At returns the cell at (row, col) and whether it holds a value.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Labeled) At(row, col int) (float64, bool, error) {
	k, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, false, err
	}
	if !m.set[k] {
		return 0, false, nil
	}

	return m.data[k], true, nil
}

// Set stores v at (row, col), marking the cell present. A later Set on the
// same cell overwrites it (last write wins).
// Errors: ErrOutOfRange; ErrNaNInf under the numeric policy. Complexity: O(1).
func (m *Labeled) Set(row, col int, v float64) error {
	k, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf {
		if err = validateFinite(v); err != nil {
			return labeledErrorf(ctxSet, row, col, err)
		}
	}
	m.data[k] = v
	m.set[k] = true

	return nil
}

// Unset clears the cell at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Labeled) Unset(row, col int) error {
	k, err := m.indexOf(ctxUnset, row, col)
	if err != nil {
		return err
	}
	m.data[k] = 0
	m.set[k] = false

	return nil
}

// Lookup returns the cell addressed by labels and whether it holds a value.
// Errors: ErrUnknownLabel.
func (m *Labeled) Lookup(row, col frame.Label) (float64, bool, error) {
	i, j, err := m.locate(ctxLookup, row, col)
	if err != nil {
		return 0, false, err
	}

	return m.At(i, j)
}

// SetAt stores v in the cell addressed by labels.
// Errors: ErrUnknownLabel; ErrNaNInf under the numeric policy.
func (m *Labeled) SetAt(row, col frame.Label, v float64) error {
	i, j, err := m.locate(ctxSetAt, row, col)
	if err != nil {
		return err
	}

	return m.Set(i, j, v)
}

// locate resolves a label pair to indices.
func (m *Labeled) locate(method string, row, col frame.Label) (int, int, error) {
	i, ok := m.rowIdx[row]
	if !ok {
		return 0, 0, fmt.Errorf("Labeled.%s: row %q: %w", method, row.String(), ErrUnknownLabel)
	}
	j, ok := m.colIdx[col]
	if !ok {
		return 0, 0, fmt.Errorf("Labeled.%s: col %q: %w", method, col.String(), ErrUnknownLabel)
	}

	return i, j, nil
}

// Present returns the number of cells holding a value. Complexity: O(r*c).
func (m *Labeled) Present() int {
	n := 0
	for _, ok := range m.set {
		if ok {
			n++
		}
	}

	return n
}

// Clone returns a deep copy; the copy shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Labeled) Clone() *Labeled {
	rowIdx := make(map[frame.Label]int, len(m.rowIdx))
	for l, i := range m.rowIdx {
		rowIdx[l] = i
	}
	colIdx := make(map[frame.Label]int, len(m.colIdx))
	for l, j := range m.colIdx {
		colIdx[l] = j
	}

	return &Labeled{
		rows:           append([]frame.Label(nil), m.rows...),
		cols:           append([]frame.Label(nil), m.cols...),
		rowIdx:         rowIdx,
		colIdx:         colIdx,
		data:           append([]float64(nil), m.data...),
		set:            append([]bool(nil), m.set...),
		validateNaNInf: m.validateNaNInf,
	}
}

// Equal reports whether m and o have the same labels in the same order, the
// same presence pattern, and equal values in present cells. Values in unset
// cells are ignored. A nil matrix equals only another nil.
func (m *Labeled) Equal(o *Labeled) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !equalLabels(m.rows, o.rows) || !equalLabels(m.cols, o.cols) {
		return false
	}
	for k := range m.set {
		if m.set[k] != o.set[k] {
			return false
		}
		if m.set[k] && m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

func equalLabels(a, b []frame.Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders m as an aligned grid with labels; unset cells print as "-".
// Complexity: O(r*c).
func (m *Labeled) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	for _, c := range m.cols {
		fmt.Fprintf(tw, "\t%s", c.String())
	}
	fmt.Fprintln(tw)
	for i, r := range m.rows {
		fmt.Fprint(tw, r.String())
		for j := range m.cols {
			k := i*len(m.cols) + j
			if m.set[k] {
				fmt.Fprintf(tw, "\t%g", m.data[k])
			} else {
				fmt.Fprintf(tw, "\t%s", _fmtUnset)
			}
		}
		fmt.Fprintln(tw)
	}
	// tabwriter only fails when the underlying writer does; a strings.Builder never does.
	tw.Flush()

	return sb.String()
}
