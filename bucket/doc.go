// SPDX-License-Identifier: MIT

// Package bucket bins a numeric column into labeled half-open intervals and
// counts the rows per bin.
//
// Default scheme (on the car column):
//
//	low     v < 15
//	medium  15 <= v < 25
//	high    v >= 25
//
// Only bins that actually occur are reported, ordered by label. The input
// table is never modified; no derived column is added.
//
// Usage:
//
//	counts, err := bucket.CategorizeAndCount(df)
//	counts.Get(bucket.Medium) // rows with 15 <= car < 25
//
//	// custom bins on another column
//	s := bucket.Scheme{Edges: []float64{0, 10}, Labels: []bucket.Category{"neg", "small", "big"}}
//	counts, err = bucket.CategorizeAndCount(df, bucket.WithScheme(s), bucket.WithColumn("bus"))
package bucket
