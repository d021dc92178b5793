// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stagemap/category"
)

// Chain is the fixed, ordered list of categories a value passes through.
// It is immutable once built.
type Chain struct {
	stages []*category.Category
}

// NewChain resolves names against catalog, in order. The same category may
// appear more than once. An empty names list yields the identity chain.
//
// Returns ErrMissingCategory, listing every unresolved name, if any name is
// absent from catalog or maps to nil. Nothing is built on failure.
// Complexity: O(len(names)).
func NewChain(names []string, catalog map[string]*category.Category) (*Chain, error) {
	stages := make([]*category.Category, 0, len(names))
	var missing []string
	for _, name := range names {
		c := catalog[name]
		if c == nil {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		stages = append(stages, c)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCategory, strings.Join(missing, ", "))
	}

	return &Chain{stages: stages}, nil
}

// Len returns the number of stages.
func (ch *Chain) Len() int {
	if ch == nil {
		return 0
	}

	return len(ch.stages)
}

// Names returns the stage names in traversal order.
func (ch *Chain) Names() []string {
	names := make([]string, ch.Len())
	for i := range names {
		names[i] = ch.stages[i].Name()
	}

	return names
}

// Stage returns the i-th category. Panics if i is out of range.
func (ch *Chain) Stage(i int) *category.Category {
	return ch.stages[i]
}

// Warnings collects the overlap warnings of every stage, in stage order.
// A category used twice is reported once.
func (ch *Chain) Warnings() []category.Warning {
	if ch == nil {
		return nil
	}
	seen := make(map[*category.Category]bool, len(ch.stages))
	var out []category.Warning
	for _, c := range ch.stages {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c.Warnings()...)
	}

	return out
}

// trace walks one identifier through every stage.
func (ch *Chain) trace(v uint64) uint64 {
	for _, c := range ch.stages {
		v = c.Apply(v)
	}

	return v
}
