// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stagemap/interval"
)

// Sentinel errors for rule parsing and category construction.
var (
	// ErrMalformedRule indicates a rule row with the wrong number of fields
	// or a field that is not a base-10 uint64.
	ErrMalformedRule = errors.New("category: malformed rule")

	// ErrZeroLengthRange indicates a rule whose Length is 0.
	ErrZeroLengthRange = errors.New("category: zero-length range")

	// ErrRuleOverflow indicates a rule whose source or destination span
	// runs past math.MaxUint64.
	ErrRuleOverflow = errors.New("category: rule span exceeds uint64 range")

	// ErrOverlappingRuleDomains marks two rules claiming the same source
	// identifiers. It is reported through Warning, never returned by Build.
	ErrOverlappingRuleDomains = errors.New("category: overlapping rule domains")
)

// RangeRule substitutes [Source, Source+Length) with
// [Destination, Destination+Length).
//
// Field order mirrors the text form "destination source length".
type RangeRule struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// Warning records a pair of rules whose source domains overlap. First is the
// index (declaration order) of the rule that wins; Second is shadowed on the
// Overlap span.
type Warning struct {
	Category string
	First    int
	Second   int
	Overlap  interval.Interval
}

// Error implements error so a Warning can be logged or inspected with
// errors.Is(w, ErrOverlappingRuleDomains).
func (w Warning) Error() string {
	return fmt.Sprintf("%v: %q rules #%d and #%d both claim %s (rule #%d wins)",
		ErrOverlappingRuleDomains, w.Category, w.First, w.Second, w.Overlap, w.First)
}

// Unwrap exposes ErrOverlappingRuleDomains.
func (w Warning) Unwrap() error {
	return ErrOverlappingRuleDomains
}

// Category is a named, immutable set of RangeRules. Build is the only way
// to obtain one.
type Category struct {
	name     string
	rules    []RangeRule
	warnings []Warning
}
