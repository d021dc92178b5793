// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stagemap/category"
	"github.com/katalvlaran/stagemap/internal/fixture"
	"github.com/katalvlaran/stagemap/interval"
	"github.com/katalvlaran/stagemap/pipeline"
)

// Property-check knobs.
const (
	propRounds    = 150
	propDomain    = 300
	propMaxLength = 60
	propStages    = 4
	propMaxRules  = 5
	propSeed      = int64(11)
)

// seedRanges is the standard seed line read as (start, length) pairs.
var seedRanges = []interval.Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}}

// standardChain resolves the standard seed→location chain.
func standardChain(t testing.TB) *pipeline.Chain {
	t.Helper()
	ch, err := pipeline.NewChain(fixture.Stages, fixture.Catalog())
	require.NoError(t, err)

	return ch
}

// randomChain builds propStages random categories; rule domains may overlap.
func randomChain(t *testing.T, rng *rand.Rand) *pipeline.Chain {
	t.Helper()
	catalog := make(map[string]*category.Category, propStages)
	names := make([]string, propStages)
	for s := range names {
		rules := make([]category.RangeRule, rng.Intn(propMaxRules+1))
		for i := range rules {
			rules[i] = category.RangeRule{
				Destination: uint64(rng.Intn(propDomain)),
				Source:      uint64(rng.Intn(propDomain)),
				Length:      uint64(1 + rng.Intn(propMaxLength)),
			}
		}
		names[s] = string(rune('a' + s))
		c, err := category.Build(names[s], rules)
		require.NoError(t, err)
		catalog[names[s]] = c
	}
	ch, err := pipeline.NewChain(names, catalog)
	require.NoError(t, err)

	return ch
}

// randomSpans returns 1..4 spans in the property domain.
func randomSpans(rng *rand.Rand) []interval.Interval {
	spans := make([]interval.Interval, 1+rng.Intn(4))
	for i := range spans {
		spans[i] = interval.Interval{
			Start:  uint64(rng.Intn(propDomain)),
			Length: uint64(1 + rng.Intn(propMaxLength)),
		}
	}

	return spans
}

// scalarOracle traces every identifier of spans and returns the sorted results.
func scalarOracle(r *pipeline.Runner, spans []interval.Interval) []uint64 {
	var out []uint64
	for _, s := range spans {
		for v := s.Start; v < s.End(); v++ {
			out = append(out, r.TraceScalar(v))
		}
	}
	slices.Sort(out)

	return out
}

// expand lists every identifier covered by spans with multiplicity, sorted.
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

// units turns values into single-identifier spans.
func units(values []uint64) []interval.Interval {
	out := make([]interval.Interval, len(values))
	for i, v := range values {
		out[i] = interval.Interval{Start: v, Length: 1}
	}

	return out
}
