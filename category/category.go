// SPDX-License-Identifier: MIT

package category

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/stagemap/interval"
)

// Build validates rules and returns an immutable Category.
//
// Stages:
//  1. Validate every rule (ErrZeroLengthRange, ErrRuleOverflow); the first
//     failure aborts construction and is wrapped with the rule index.
//  2. Copy the rules in declaration order.
//  3. Detect overlapping source domains and record each pair as a Warning.
//
// An empty or nil rule list is valid and yields the identity category.
// Complexity: O(R log R + W) time, O(R + W) memory.
func Build(name string, rules []RangeRule) (*Category, error) {
	for i, r := range rules {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("%s: rule #%d (%s): %w", name, i, r, err)
		}
	}

	c := &Category{
		name:  name,
		rules: slices.Clone(rules),
	}
	c.warnings = findOverlaps(name, c.rules)

	return c, nil
}

// MustBuild is Build for fixtures and package-level tables; it panics on error.
func MustBuild(name string, rules []RangeRule) *Category {
	c, err := Build(name, rules)
	if err != nil {
		panic(err)
	}

	return c
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Len returns the number of rules.
func (c *Category) Len() int {
	return len(c.rules)
}

// Rules returns a copy of the rules in declaration order.
func (c *Category) Rules() []RangeRule {
	return slices.Clone(c.rules)
}

// Warnings returns the overlap warnings found by Build, ordered by where the
// overlapping spans sit in the source domain.
func (c *Category) Warnings() []Warning {
	return slices.Clone(c.warnings)
}

// Apply maps a single identifier. The first rule (declaration order) whose
// source domain contains v decides the result; otherwise v is returned
// unchanged. Apply never fails.
// Complexity: O(R).
func (c *Category) Apply(v uint64) uint64 {
	for _, r := range c.rules {
		if r.Covers(v) {
			return r.Translate(v)
		}
	}

	return v
}

// findOverlaps sweeps the rules in source order and reports every pair whose
// source domains intersect. The rule declared first is the winner.
func findOverlaps(name string, rules []RangeRule) []Warning {
	if len(rules) < 2 {
		return nil
	}
	order := make([]int, len(rules))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(rules[a].Source, rules[b].Source); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	var out []Warning
	for i, a := range order {
		ra := rules[a].SourceInterval()
		for _, b := range order[i+1:] {
			if rules[b].Source >= rules[a].SourceEnd() {
				break // sorted by start: nothing further can overlap ra
			}
			first, second := min(a, b), max(a, b)
			out = append(out, Warning{
				Category: name,
				First:    first,
				Second:   second,
				Overlap:  ra.Intersect(rules[b].SourceInterval()),
			})
		}
	}

	return out
}

// Domain returns the identifiers claimed by at least one rule, as a sorted
// set of merged spans. Everything outside it maps to itself.
func (c *Category) Domain() []interval.Interval {
	spans := make([]interval.Interval, len(c.rules))
	for i, r := range c.rules {
		spans[i] = r.SourceInterval()
	}

	return interval.Normalize(spans)
}
