// SPDX-License-Identifier: MIT

// Package interval provides the half-open integer span used throughout
// stagemap, plus a handful of helpers over sets of spans.
//
// 🚀 What is an Interval?
//
//	An Interval is the contiguous run of identifiers [Start, Start+Length).
//	Length is always > 0 and Start+Length never exceeds math.MaxUint64, so
//	End() is always representable.
//
// ✨ Key features:
//   - value semantics: Interval is a small comparable struct, safe to copy
//   - Intersect / Subtract for splitting a span against another span
//   - set helpers: TotalLength, Min, Normalize (sort + merge), Equal
//
// Sets are plain []Interval. Functions in this package never mutate their
// inputs; Normalize and Clone return fresh slices.
//
// ⚙️ Usage:
//
//	iv, err := interval.New(79, 14) // [79, 93)
//	left, right := iv.Subtract(interval.Interval{Start: 80, Length: 5})
//	// left = [79,80), right = [85,93)
package interval
