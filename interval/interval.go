// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
)

// New validates and returns the interval [start, start+length).
// Returns ErrZeroLength if length == 0 and ErrOverflow if the end would not
// fit in a uint64.
// Complexity: O(1).
func New(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, ErrZeroLength
	}
	if length > math.MaxUint64-start {
		return Interval{}, ErrOverflow
	}

	return Interval{Start: start, Length: length}, nil
}

// FromBounds returns [start, end). Returns ErrZeroLength when end <= start.
func FromBounds(start, end uint64) (Interval, error) {
	if end <= start {
		return Interval{}, ErrZeroLength
	}

	return Interval{Start: start, Length: end - start}, nil
}

// End returns the exclusive upper bound Start+Length.
func (iv Interval) End() uint64 {
	return iv.Start + iv.Length
}

// IsEmpty reports whether the span covers nothing.
func (iv Interval) IsEmpty() bool {
	return iv.Length == 0
}

// Contains reports whether v lies inside the span.
func (iv Interval) Contains(v uint64) bool {
	return iv.Start <= v && v < iv.End()
}

// Overlaps reports whether iv and other share at least one identifier.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End() && other.Start < iv.End()
}

// Intersect returns the common part of iv and other. If they do not
// overlap the result IsEmpty.
// Complexity: O(1).
func (iv Interval) Intersect(other Interval) Interval {
	lo := max(iv.Start, other.Start)
	hi := min(iv.End(), other.End())
	if hi <= lo {
		return Interval{}
	}

	return Interval{Start: lo, Length: hi - lo}
}

// Subtract removes other from iv and returns what is left on each side.
// Either side may be empty; when the two spans do not overlap, left is iv
// itself (or right is, if iv lies after other).
//
//	iv:     [-----------)
//	other:      [---)
//	result: [---)   [---)
//	        left    right
//
// Complexity: O(1).
func (iv Interval) Subtract(other Interval) (left, right Interval) {
	if !iv.Overlaps(other) {
		if iv.Start < other.Start {
			return iv, Interval{}
		}
		return Interval{}, iv
	}
	if iv.Start < other.Start {
		left = Interval{Start: iv.Start, Length: other.Start - iv.Start}
	}
	if other.End() < iv.End() {
		right = Interval{Start: other.End(), Length: iv.End() - other.End()}
	}

	return left, right
}

// Shift moves the span so that it starts at iv.Start-from+to, i.e. it
// applies the offset of a from→to substitution. The caller guarantees
// iv.Start >= from and that the result fits in uint64.
func (iv Interval) Shift(from, to uint64) Interval {
	return Interval{Start: to + (iv.Start - from), Length: iv.Length}
}

// String renders the span as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End())
}
