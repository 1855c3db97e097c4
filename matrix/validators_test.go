// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtab/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	a := MustLabeled(t, nums(1, 2), nums(3))
	b := MustLabeled(t, nums(1), nums(3))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
}
