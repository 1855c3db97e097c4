// SPDX-License-Identifier: MIT

package outlier_test

import (
	"fmt"

	"github.com/katalvlaran/lvtab/frame"
	"github.com/katalvlaran/lvtab/outlier"
)

// ExampleThresholdOutliers finds the single value above twice the mean.
func ExampleThresholdOutliers() {
	df, _ := frame.FromRecords([][]string{{"bus"}, {"1"}, {"1"}, {"1"}, {"10"}})

	idx, err := outlier.ThresholdOutliers(df)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(idx)
	// Output: [3]
}
