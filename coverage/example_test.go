// SPDX-License-Identifier: MIT

package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/lvtab/coverage"
	"github.com/katalvlaran/lvtab/frame"
)

// ExampleValidateTemporalCoverage checks a full week against a single day.
func ExampleValidateTemporalCoverage() {
	records := [][]string{{"id", "id_2", "timestamp"}}
	for d := 1; d <= 7; d++ {
		day := fmt.Sprintf("2024-01-%02d", d)
		records = append(records, []string{"1", "2", day + " 00:00:00"}, []string{"1", "2", day + " 23:59:59"})
	}
	records = append(records, []string{"3", "4", "2024-01-01 00:00:00"})
	df, _ := frame.FromRecords(records)

	series, err := coverage.ValidateTemporalCoverage(df)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range series {
		fmt.Printf("(%s, %s) complete=%t\n", c.Key.ID, c.Key.ID2, c.Complete)
	}
	// Output:
	// (1, 2) complete=true
	// (3, 4) complete=false
}
