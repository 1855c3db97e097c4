// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtab/frame"
	"github.com/katalvlaran/lvtab/matrix"
)

// ExampleLabeled builds a 2×2 matrix with one unset cell and prints it.
func ExampleLabeled() {
	rows := []frame.Label{frame.NumLabel(1001), frame.NumLabel(1002)}
	cols := []frame.Label{frame.NumLabel(1002), frame.NumLabel(1003)}
	m, err := matrix.NewLabeled(rows, cols)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = m.SetAt(frame.NumLabel(1001), frame.NumLabel(1002), 9.7)
	_ = m.SetAt(frame.NumLabel(1002), frame.NumLabel(1003), 20)
	_ = m.SetAt(frame.NumLabel(1001), frame.NumLabel(1003), 16.3)
	fmt.Print(m)
	fmt.Println("present:", m.Present())
	// Output:
	//       1002  1003
	// 1001  9.7   16.3
	// 1002  -     20
	// present: 3
}
