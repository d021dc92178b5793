// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for chain construction and strategy dispatch.
var (
	// ErrMissingCategory indicates a stage name with no category in the catalog.
	ErrMissingCategory = errors.New("pipeline: missing category")

	// ErrDomainTooLarge indicates the scalar path was asked to enumerate more
	// identifiers than the scalar threshold allows.
	ErrDomainTooLarge = errors.New("pipeline: domain too large for scalar strategy")

	// ErrUnknownStrategy indicates an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("pipeline: unknown strategy")
)

// Strategy selects how Runner.Lowest evaluates its input.
type Strategy int

const (
	// StrategyAuto uses the scalar path for short lists of single
	// identifiers and the interval path for everything else.
	StrategyAuto Strategy = iota

	// StrategyInterval always folds whole spans through the chain.
	StrategyInterval

	// StrategyScalar enumerates every identifier; bounded by the scalar threshold.
	StrategyScalar
)

var strategyNames = [...]string{
	StrategyAuto:     "auto",
	StrategyInterval: "interval",
	StrategyScalar:   "scalar",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps "auto", "interval" or "scalar" (case-insensitive) to a
// Strategy. An empty string means StrategyAuto.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyAuto, nil
	}
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return StrategyAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
