// SPDX-License-Identifier: MIT

package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtab/frame"
)

func TestLabel_NumericText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1001", frame.NumLabel(1001).String())
	assert.Equal(t, "2.5", frame.NumLabel(2.5).String())
	assert.Equal(t, frame.NumLabel(0), frame.NumLabel(math.Copysign(0, -1)), "-0 folds to 0")
}

func TestLabel_Compare(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, frame.NumLabel(9).Compare(frame.NumLabel(10)), "numeric, not lexicographic")
	assert.Equal(t, 1, frame.TextLabel("9").Compare(frame.TextLabel("10")), "text is lexicographic")
	assert.Equal(t, 0, frame.TextLabel("a").Compare(frame.TextLabel("a")))
	assert.Equal(t, -1, frame.NumLabel(100).Compare(frame.TextLabel("a")), "numbers sort first")
	assert.Equal(t, 1, frame.TextLabel("a").Compare(frame.NumLabel(100)))
}

func TestSortLabels(t *testing.T) {
	t.Parallel()
	ls := []frame.Label{frame.NumLabel(10), frame.NumLabel(-1), frame.NumLabel(9)}
	frame.SortLabels(ls)
	assert.Equal(t, []frame.Label{frame.NumLabel(-1), frame.NumLabel(9), frame.NumLabel(10)}, ls)
}
