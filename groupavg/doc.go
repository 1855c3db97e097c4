// SPDX-License-Identifier: MIT

// Package groupavg selects groups whose mean value exceeds a threshold.
//
// Rows are grouped by route; each group's mean truck value is compared with
// the threshold (7 by default) and the group is kept when the mean is
// strictly greater. The result lists each kept route once, ascending
// (numeric routes by value, textual routes lexicographically).
//
// Usage:
//
//	routes, err := groupavg.FilterGroupsByAverage(df)
//	means, err := groupavg.Averages(df) // every route with its mean
package groupavg
