// SPDX-License-Identifier: MIT

package category

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/stagemap/interval"
)

// ruleFields is the number of integers on one rule row.
const ruleFields = 3

// ParseRule converts the three text fields "destination source length"
// into a RangeRule. It checks syntax only; span validation happens in Build.
// Returns ErrMalformedRule (wrapped with the offending field) on failure.
func ParseRule(fields []string) (RangeRule, error) {
	if len(fields) != ruleFields {
		return RangeRule{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRule, ruleFields, len(fields))
	}
	var vals [ruleFields]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return RangeRule{}, fmt.Errorf("%w: field %d %q: %v", ErrMalformedRule, i+1, f, err)
		}
		vals[i] = v
	}

	return RangeRule{Destination: vals[0], Source: vals[1], Length: vals[2]}, nil
}

// SourceEnd returns the exclusive end of the source domain. It wraps for
// rules that Build rejects with ErrRuleOverflow.
func (r RangeRule) SourceEnd() uint64 {
	return r.Source + r.Length
}

// DestinationEnd returns the exclusive end of the destination span.
func (r RangeRule) DestinationEnd() uint64 {
	return r.Destination + r.Length
}

// SourceInterval returns the source domain as an Interval.
func (r RangeRule) SourceInterval() interval.Interval {
	return interval.Interval{Start: r.Source, Length: r.Length}
}

// Covers reports whether v lies in the source domain. The upper bound is
// exclusive.
func (r RangeRule) Covers(v uint64) bool {
	return v >= r.Source && v-r.Source < r.Length
}

// Translate maps v by the rule's offset. v must satisfy Covers.
func (r RangeRule) Translate(v uint64) uint64 {
	return r.Destination + (v - r.Source)
}

// String renders the rule in its text form.
func (r RangeRule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination, r.Source, r.Length)
}

// validate checks a single rule.
func (r RangeRule) validate() error {
	if r.Length == 0 {
		return ErrZeroLengthRange
	}
	// An end that wraps around is smaller than its start.
	if r.SourceEnd() < r.Source || r.DestinationEnd() < r.Destination {
		return ErrRuleOverflow
	}

	return nil
}
