// SPDX-License-Identifier: MIT

package category_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stagemap/category"
	"github.com/katalvlaran/stagemap/internal/fixture"
	"github.com/katalvlaran/stagemap/interval"
)

//----------------------------------------------------------------------------//
// ParseRule
//----------------------------------------------------------------------------//

// TestParseRule_Valid parses "destination source length".
func TestParseRule_Valid(t *testing.T) {
	r, err := category.ParseRule([]string{"50", "98", "2"})
	require.NoError(t, err)
	assert.Equal(t, category.RangeRule{Destination: 50, Source: 98, Length: 2}, r)
	assert.Equal(t, "50 98 2", r.String())
}

// TestParseRule_Malformed rejects wrong field counts and non-numeric fields.
func TestParseRule_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
	}{
		{"TooFew", []string{"1", "2"}},
		{"TooMany", []string{"1", "2", "3", "4"}},
		{"Empty", nil},
		{"NonNumeric", []string{"1", "x", "3"}},
		{"Negative", []string{"-1", "2", "3"}},
		{"OutOfRange", []string{"1", "2", "18446744073709551616"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := category.ParseRule(tc.fields)
			assert.ErrorIs(t, err, category.ErrMalformedRule)
		})
	}
}

// TestRangeRule_Ends reports exclusive ends, including the MaxUint64 edge.
func TestRangeRule_Ends(t *testing.T) {
	r := category.RangeRule{Destination: 50, Source: 98, Length: 2}
	assert.Equal(t, uint64(100), r.SourceEnd())
	assert.Equal(t, uint64(52), r.DestinationEnd())
	assert.True(t, r.Covers(99))
	assert.False(t, r.Covers(r.SourceEnd()))

	edge := category.RangeRule{Destination: math.MaxUint64 - 4, Source: 0, Length: 4}
	assert.Equal(t, uint64(math.MaxUint64), edge.DestinationEnd())
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies span validation and that nothing is returned on failure.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rules []category.RangeRule
		err   error
	}{
		{"ZeroLength", []category.RangeRule{{Destination: 1, Source: 2, Length: 0}}, category.ErrZeroLengthRange},
		{"SourceOverflow", []category.RangeRule{{Destination: 0, Source: math.MaxUint64, Length: 1}}, category.ErrRuleOverflow},
		{"DestinationOverflow", []category.RangeRule{{Destination: math.MaxUint64 - 1, Source: 0, Length: 2}}, category.ErrRuleOverflow},
		{"SecondRuleBad", []category.RangeRule{{Destination: 1, Source: 1, Length: 1}, {Destination: 5, Source: 5, Length: 0}}, category.ErrZeroLengthRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := category.Build("bad", tc.rules)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, c, "construction must not produce a partial category")
		})
	}
}

// TestBuild_CopiesRules ensures later edits to the caller's slice do not leak in.
func TestBuild_CopiesRules(t *testing.T) {
	rules := []category.RangeRule{{Destination: 52, Source: 50, Length: 48}}
	c := mustBuild(t, "seed-to-soil", rules)
	rules[0].Destination = 0

	assert.Equal(t, uint64(81), c.Apply(79))
	assert.Equal(t, "seed-to-soil", c.Name())
	assert.Equal(t, 1, c.Len())

	got := c.Rules()
	got[0].Source = 0
	assert.Equal(t, uint64(50), c.Rules()[0].Source, "Rules must return a copy")
}

// TestBuild_MaxEndAllowed accepts a rule whose spans end exactly at MaxUint64.
func TestBuild_MaxEndAllowed(t *testing.T) {
	c := mustBuild(t, "edge", []category.RangeRule{{Destination: math.MaxUint64 - 4, Source: 0, Length: 4}})
	assert.Equal(t, uint64(math.MaxUint64-1), c.Apply(3))
	assert.Equal(t, uint64(math.MaxUint64), c.Apply(math.MaxUint64), "uncovered max maps to itself")
}

// TestBuild_OverlapWarnings records overlapping domains without failing.
func TestBuild_OverlapWarnings(t *testing.T) {
	c := mustBuild(t, "clash", []category.RangeRule{
		{Destination: 100, Source: 15, Length: 10}, // [15,25)
		{Destination: 0, Source: 10, Length: 10},   // [10,20)
		{Destination: 500, Source: 40, Length: 5},  // disjoint
	})

	ws := c.Warnings()
	require.Len(t, ws, 1)
	w := ws[0]
	assert.Equal(t, 0, w.First, "declared first wins")
	assert.Equal(t, 1, w.Second)
	assert.Equal(t, interval.Interval{Start: 15, Length: 5}, w.Overlap)
	assert.Equal(t, "clash", w.Category)
	assert.True(t, errors.Is(w, category.ErrOverlappingRuleDomains))
	assert.Contains(t, w.Error(), "clash")

	// First match wins on the shared span.
	assert.Equal(t, uint64(101), c.Apply(16))
	assert.Equal(t, uint64(2), c.Apply(12))
}

// TestBuild_NestedOverlaps reports every shadowed pair, not only neighbours.
func TestBuild_NestedOverlaps(t *testing.T) {
	c := mustBuild(t, "nested", []category.RangeRule{
		{Destination: 0, Source: 0, Length: 100},
		{Destination: 1000, Source: 10, Length: 5},
		{Destination: 2000, Source: 50, Length: 5},
	})
	assert.Len(t, c.Warnings(), 2)
}

// TestBuild_StandardFixtureHasNoWarnings keeps the sample data clean.
func TestBuild_StandardFixtureHasNoWarnings(t *testing.T) {
	for name, c := range fixture.Catalog() {
		assert.Empty(t, c.Warnings(), name)
	}
}

//----------------------------------------------------------------------------//
// Apply
//----------------------------------------------------------------------------//

// TestApply_SeedToSoil checks rule hits, both bounds, and identity fall-through.
func TestApply_SeedToSoil(t *testing.T) {
	c := mustBuild(t, "seed-to-soil", fixture.Rules["seed-to-soil"])
	cases := map[uint64]uint64{
		79: 81, 14: 14, 55: 57, 13: 13,
		49: 49, 50: 52, 97: 99, 98: 50, 99: 51, 100: 100,
	}
	for in, want := range cases {
		assert.Equal(t, want, c.Apply(in), "Apply(%d)", in)
	}
}

// TestApply_Totality: with no rules or outside every domain, Apply is the identity.
func TestApply_Totality(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))
	empty := mustBuild(t, "empty", nil)
	for i := 0; i < propRounds; i++ {
		v := rng.Uint64()
		assert.Equal(t, v, empty.Apply(v))
	}
	assert.Equal(t, uint64(math.MaxUint64), empty.Apply(math.MaxUint64))

	for i := 0; i < propRounds; i++ {
		c := mustBuild(t, "random", randomRules(rng))
		v := uint64(rng.Intn(2 * propDomain))
		covered := false
		for _, d := range c.Domain() {
			covered = covered || d.Contains(v)
		}
		if !covered {
			assert.Equal(t, v, c.Apply(v), "uncovered %d must map to itself", v)
		}
	}
}

// TestDomain merges rule source spans.
func TestDomain(t *testing.T) {
	c := mustBuild(t, "seed-to-soil", fixture.Rules["seed-to-soil"])
	assert.Equal(t, []interval.Interval{{Start: 50, Length: 50}}, c.Domain())
	assert.Nil(t, mustBuild(t, "empty", nil).Domain())
}
