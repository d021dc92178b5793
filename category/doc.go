// SPDX-License-Identifier: MIT

// Package category models one stage of a remapping pipeline: a named set of
// range rules that together define a total function over uint64.
//
// 🚀 What is a Category?
//
//	A Category is a list of RangeRules. Each rule moves the source span
//	[Source, Source+Length) onto [Destination, Destination+Length) by a
//	constant offset. Identifiers not covered by any rule map to themselves,
//	so every Category is defined on the whole uint64 domain.
//
//	  rule "52 50 48":   50..97  →  52..99
//	  rule "50 98 2":    98..99  →  50..51
//	  everything else:   v       →  v
//
// ✨ Key features:
//   - Build validates rules once (zero length, uint64 overflow) and records
//     overlapping source domains as non-fatal Warnings
//   - Apply maps a single identifier (first matching rule wins)
//   - MapIntervals maps whole spans by splitting them against rule domains,
//     without enumerating the identifiers inside
//
// Determinism & ties:
//
//	Rules are kept in declaration order. When source domains overlap, the
//	earliest declared rule wins, in Apply and MapIntervals alike, so both
//	paths always agree element for element.
//
// Concurrency:
//
//	A built *Category is immutable; share it freely across goroutines.
//
// Complexity:
//
//   - Build:        O(R log R + W), W = number of overlap warnings
//   - Apply:        O(R)
//   - MapIntervals: O(I·R·F), F = fragments alive per input span (≤ R+1)
package category
