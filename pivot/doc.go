// SPDX-License-Identifier: MIT

// Package pivot turns a long (row key, column key, value) table into a
// labeled matrix.
//
// What it does:
//
//	Every distinct row key becomes a matrix row and every distinct column key
//	a matrix column, both in first-seen order. Cell (a, b) holds the value of
//	the last row whose keys are (a, b); pairs that never occur stay unset,
//	which is different from 0.
//
// Usage:
//
//	df, _ := frame.FromRecords([][]string{
//	  {"id_1", "id_2", "car"},
//	  {"1001", "1002", "9.7"},
//	  {"1002", "1003", "20"},
//	})
//	m, err := pivot.Pairwise(df) // 2×2, (1001,1003) and (1002,1002) unset
//
// Pairwise reads the id_1/id_2/car columns; Build takes any column triple.
//
// Complexity:
//
//   - Time:   O(n + r*c) for n rows, r distinct row keys, c distinct column keys
//   - Memory: O(r*c)
package pivot
