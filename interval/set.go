// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// TotalLength sums the lengths of all spans in set. Overlapping spans are
// counted once per span, not once per identifier.
//
// The sum wraps silently past math.MaxUint64; sets built from validated
// input never get there in practice.
func TotalLength(set []Interval) uint64 {
	var total uint64
	for _, iv := range set {
		total += iv.Length
	}

	return total
}

// Min returns the smallest Start in set. ok is false for an empty set.
// Complexity: O(n).
func Min(set []Interval) (lowest uint64, ok bool) {
	for i, iv := range set {
		if i == 0 || iv.Start < lowest {
			lowest = iv.Start
		}
	}

	return lowest, len(set) > 0
}

// Validate checks spans built as struct literals, which bypass New. It
// returns ErrOverflow, wrapped with the span index, for the first span whose
// end does not fit in a uint64. Empty spans are accepted; they cover nothing
// and every set operation skips them.
// Complexity: O(n).
func Validate(set []Interval) error {
	for i, iv := range set {
		if iv.Length > math.MaxUint64-iv.Start {
			return fmt.Errorf("span #%d (start %d, length %d): %w", i, iv.Start, iv.Length, ErrOverflow)
		}
	}

	return nil
}

// Clone returns a copy of set that shares no backing array with it.
func Clone(set []Interval) []Interval {
	if set == nil {
		return nil
	}
	out := make([]Interval, len(set))
	copy(out, set)

	return out
}

// Sort orders set in place by Start, then Length.
func Sort(set []Interval) {
	slices.SortFunc(set, compare)
}

// Normalize returns a sorted copy of set in which overlapping and adjacent
// spans are merged and empty spans are dropped. The covered identifiers are
// unchanged; only the representation shrinks.
//
// Algorithm:
//  1. Copy and sort by Start.
//  2. Sweep left to right, extending the current span while the next one
//     starts at or before its end.
//
// Complexity: O(n log n) time, O(n) memory.
func Normalize(set []Interval) []Interval {
	if len(set) == 0 {
		return nil
	}
	sorted := make([]Interval, 0, len(set))
	for _, iv := range set {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}
	Sort(sorted)

	out := sorted[:0]
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End() {
			last := &out[n-1]
			if end := iv.End(); end > last.End() {
				last.Length = end - last.Start
			}
			continue
		}
		out = append(out, iv)
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// Equal reports whether a and b cover exactly the same identifiers,
// regardless of how the spans are split or ordered.
func Equal(a, b []Interval) bool {
	return slices.Equal(Normalize(a), Normalize(b))
}

// compare orders spans by Start, then Length.
func compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(a.Length, b.Length)
}
