// SPDX-License-Identifier: MIT

package interval

import "errors"

// Sentinel errors for interval construction.
var (
	// ErrZeroLength indicates an interval with Length == 0 was requested.
	ErrZeroLength = errors.New("interval: length must be > 0")

	// ErrOverflow indicates Start+Length exceeds math.MaxUint64.
	ErrOverflow = errors.New("interval: end exceeds uint64 range")
)

// Interval is the half-open span [Start, Start+Length).
//
// The zero value is the empty span and is only produced internally as the
// "no overlap" result of Intersect; callers should build intervals via New.
type Interval struct {
	// Start is the first identifier inside the span.
	Start uint64

	// Length is the number of identifiers covered.
	Length uint64
}
