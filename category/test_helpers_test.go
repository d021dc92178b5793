// SPDX-License-Identifier: MIT

package category_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/stagemap/category"
	"github.com/katalvlaran/stagemap/interval"
)

// Knobs for the randomized property checks (small enough to enumerate).
const (
	propRounds    = 300
	propDomain    = 200 // identifiers drawn from [0, propDomain)
	propMaxLength = 40
	propMaxRules  = 6
	propSeed      = int64(5)
)

// randomRules returns 0..propMaxRules rules; source domains may overlap.
func randomRules(rng *rand.Rand) []category.RangeRule {
	n := rng.Intn(propMaxRules + 1)
	rules := make([]category.RangeRule, n)
	for i := range rules {
		rules[i] = category.RangeRule{
			Destination: uint64(rng.Intn(propDomain)),
			Source:      uint64(rng.Intn(propDomain)),
			Length:      uint64(1 + rng.Intn(propMaxLength)),
		}
	}

	return rules
}

// randomSpans returns 1..3 spans inside the property domain.
func randomSpans(rng *rand.Rand) []interval.Interval {
	n := 1 + rng.Intn(3)
	spans := make([]interval.Interval, n)
	for i := range spans {
		spans[i] = interval.Interval{
			Start:  uint64(rng.Intn(propDomain)),
			Length: uint64(1 + rng.Intn(propMaxLength)),
		}
	}

	return spans
}

// expand enumerates every identifier covered by spans (with multiplicity),
// sorted ascending.
func expand(spans []interval.Interval) []uint64 {
	var out []uint64
	for _, s := range spans {
		for v := s.Start; v < s.End(); v++ {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// scalarImage applies c to every identifier of spans, sorted ascending.
func scalarImage(c *category.Category, spans []interval.Interval) []uint64 {
	vals := expand(spans)
	for i, v := range vals {
		vals[i] = c.Apply(v)
	}
	slices.Sort(vals)

	return vals
}

// mustBuild fails the test if Build errors.
func mustBuild(t *testing.T, name string, rules []category.RangeRule) *category.Category {
	t.Helper()
	c, err := category.Build(name, rules)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", name, err)
	}

	return c
}
