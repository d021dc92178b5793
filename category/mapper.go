// SPDX-License-Identifier: MIT

package category

import "github.com/katalvlaran/stagemap/interval"

// MapIntervals applies the category to every identifier in `in` without
// enumerating them, and returns the image as a set of spans.
//
// Algorithm (per input span I):
//  1. pending := {I}, the part of I no rule has claimed yet.
//  2. For each rule R in declaration order, for each fragment F in pending:
//     overlap := F ∩ R.source. If non-empty, emit overlap shifted by
//     R.Destination-R.Source, and replace F with its leftovers
//     (F \ overlap: zero, one or two fragments).
//  3. Fragments still pending after the last rule map to themselves and
//     are emitted unchanged.
//
// Guarantees:
//   - Conservation: TotalLength(out) == TotalLength(in).
//   - Agreement: for every v in in, Apply(v) is covered by out; each output
//     span is the image of exactly one fragment of one input span.
//   - An input span entirely inside one rule yields exactly one span.
//   - A category with no rules returns a copy of in.
//
// The output is not merged; two fragments may land next to each other or,
// when rule destinations collide, on top of each other. Use
// interval.Normalize when a compact form is wanted. Empty input spans are
// skipped; nil in yields nil.
//
// Complexity: O(I·R·F) time where F ≤ R+1 is the number of live fragments,
// O(I·(R+1)) output spans in the worst case.
func (c *Category) MapIntervals(in []interval.Interval) []interval.Interval {
	if len(in) == 0 {
		return nil
	}
	out := make([]interval.Interval, 0, len(in))

	// Two scratch buffers, swapped after each rule.
	var pending, next []interval.Interval
	for _, span := range in {
		if span.IsEmpty() {
			continue
		}
		pending = append(pending[:0], span)

		for _, r := range c.rules {
			if len(pending) == 0 {
				break // span fully claimed
			}
			src := r.SourceInterval()
			next = next[:0]
			for _, frag := range pending {
				overlap := frag.Intersect(src)
				if overlap.IsEmpty() {
					next = append(next, frag)
					continue
				}
				out = append(out, overlap.Shift(r.Source, r.Destination))

				left, right := frag.Subtract(overlap)
				if !left.IsEmpty() {
					next = append(next, left)
				}
				if !right.IsEmpty() {
					next = append(next, right)
				}
			}
			pending, next = next, pending
		}

		// Identity for whatever no rule claimed.
		out = append(out, pending...)
	}

	return out
}
