// SPDX-License-Identifier: MIT

// Package lvtab is a set of small, pure transforms over in-memory tables:
// pivoting, binning, outlier detection, group filtering, matrix rescaling and
// weekly-coverage checks.
//
// 🚀 What is in the box?
//
//	Tables are gota dataframes (github.com/go-gota/gota/dataframe); matrices
//	are labeled row × column grids whose cells may be unset.
//		• pivot/     - long (id_1, id_2, car) rows → labeled matrix
//		• bucket/    - car → low / medium / high counts
//		• outlier/   - rows with bus above twice the mean
//		• groupavg/  - routes whose mean truck value exceeds 7
//		• piecewise/ - two-branch rescale + round of every matrix cell
//		• coverage/  - does each (id, id_2) span every weekday, 00:00 to 23:59:59?
//
// Shared building blocks:
//
//	frame/  - column names, schema checks, typed extraction, Label keys, error taxonomy
//	matrix/ - Labeled matrix, numeric policy options, element-wise Map
//
// ✨ Guarantees:
//
//   - Pure - no I/O, no globals, inputs are never modified
//   - Deterministic - every ordering is defined (first-seen, or ascending by key)
//   - Fail fast - bad tables surface as wrapped sentinels (errors.Is), never panics
//
// Quick example:
//
//	df, _ := frame.FromRecords([][]string{
//		{"id_1", "id_2", "car"},
//		{"1001", "1002", "8"},
//		{"1002", "1003", "24"},
//	})
//	m, _ := pivot.Pairwise(df)
//	out, _ := piecewise.Transform(m) // 8 → 10, 24 → 18
//
//	go get github.com/katalvlaran/lvtab
package lvtab
