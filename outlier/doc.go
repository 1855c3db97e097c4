// SPDX-License-Identifier: MIT

// Package outlier flags rows whose value exceeds a multiple of the column mean.
//
// A row i is an outlier when bus[i] > factor * mean(bus), with factor 2 by
// default. The comparison is strict: a value exactly at the threshold is not
// an outlier. The mean is taken over the whole column; an empty column has no
// mean and is reported as frame.ErrEmptyInput.
//
// Usage:
//
//	idx, err := outlier.ThresholdOutliers(df)                          // bus, ×2
//	idx, err = outlier.ThresholdOutliers(df, outlier.WithFactor(1.5))
package outlier
