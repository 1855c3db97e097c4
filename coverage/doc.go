// SPDX-License-Identifier: MIT

// Package coverage checks whether each (id, id_2) group of timestamped rows
// spans a full week at full-day resolution.
//
// A group is complete when, across all of its timestamps,
//
//   - the earliest time of day is 00:00:00,
//   - the latest time of day is 23:59:59 or later, and
//   - all seven weekdays appear.
//
// The time-of-day and the weekday of a timestamp are read in the timestamp's
// own location; zone-less values parse as UTC. Weekdays are numbered
// 0=Monday through 6=Sunday, independent of locale.
//
// Usage:
//
//	series, err := coverage.ValidateTemporalCoverage(df)
//	ok, found := series.Get(frame.NumLabel(1), frame.NumLabel(2))
//
// Summarize exposes the per-group aggregates the verdict is derived from.
package coverage
