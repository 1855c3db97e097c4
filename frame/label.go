// SPDX-License-Identifier: MIT

package frame

import (
	"cmp"
	"slices"
	"strconv"
)

// Label is a categorical cell value used as a grouping or matrix key.
// Labels read from Int/Float columns are numeric and order by value; labels
// read from any other column are textual and order lexicographically.
// Label is comparable and safe to use as a map key: equal values give equal
// labels (−0 folds to 0).
type Label struct {
	text    string
	num     float64
	numeric bool
}

// TextLabel returns a textual label.
func TextLabel(s string) Label { return Label{text: s} }

// NumLabel returns a numeric label. Its text form is the shortest decimal
// that round-trips v, so labels read from "1001" and "1001.0" coincide.
func NumLabel(v float64) Label {
	if v == 0 {
		v = 0 // fold −0
	}

	return Label{text: strconv.FormatFloat(v, 'f', -1, 64), num: v, numeric: true}
}

// String returns the label's text form.
func (l Label) String() string { return l.text }

// IsNumeric reports whether l came from a numeric column.
func (l Label) IsNumeric() bool { return l.numeric }

// Float returns the numeric value of l, or 0 for textual labels.
func (l Label) Float() float64 { return l.num }

// Compare orders labels: numeric labels by value, textual labels by text,
// and every numeric label before every textual one (columns never mix kinds,
// the rule only keeps the order total).
func (l Label) Compare(o Label) int {
	switch {
	case l.numeric && o.numeric:
		return cmp.Compare(l.num, o.num)
	case l.numeric:
		return -1
	case o.numeric:
		return 1
	default:
		return cmp.Compare(l.text, o.text)
	}
}

// SortLabels sorts ls ascending by Compare, in place.
func SortLabels(ls []Label) {
	slices.SortFunc(ls, Label.Compare)
}
