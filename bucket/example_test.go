// SPDX-License-Identifier: MIT

package bucket_test

import (
	"fmt"

	"github.com/katalvlaran/lvtab/bucket"
	"github.com/katalvlaran/lvtab/frame"
)

// ExampleCategorizeAndCount counts one value per default bin.
func ExampleCategorizeAndCount() {
	df, _ := frame.FromRecords([][]string{{"car"}, {"10"}, {"16"}, {"30"}})

	counts, err := bucket.CategorizeAndCount(df)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range counts {
		fmt.Printf("%s=%d\n", c.Category, c.N)
	}
	// Output:
	// high=1
	// low=1
	// medium=1
}
