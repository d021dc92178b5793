// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stagemap/interval"
)

// Runner evaluates a Chain. It holds no mutable state; one Runner may serve
// many goroutines.
type Runner struct {
	chain *Chain
	opts  Options
	log   *zap.Logger
}

// NewRunner binds chain to the given options. A nil chain behaves as the
// identity chain. Overlap warnings of the chain's categories are logged once
// here, at Warn level.
func NewRunner(chain *Chain, opts ...Option) *Runner {
	if chain == nil {
		chain = &Chain{}
	}
	o := gatherOptions(opts...)
	r := &Runner{chain: chain, opts: o, log: o.logger}

	for _, w := range chain.Warnings() {
		r.log.Warn("overlapping rule domains, first declared rule wins",
			zap.String("category", w.Category),
			zap.Int("winner", w.First),
			zap.Int("shadowed", w.Second),
			zap.Stringer("overlap", w.Overlap),
		)
	}

	return r
}

// Chain returns the chain the runner evaluates.
func (r *Runner) Chain() *Chain {
	return r.chain
}

// Options returns the resolved options.
func (r *Runner) Options() Options {
	return r.opts
}

// Run folds input through every stage in order and returns the final spans.
//
// Each stage receives the complete output of the previous one. With
// coalescing on (the default) spans are merged after every stage; the set of
// covered identifiers is the same either way. Run is pure: the same chain and
// input always give the same set. Empty input yields nil and empty spans are
// skipped. Run cannot report errors, so spans must come from interval.New or
// pass interval.Validate; RunParallel and Lowest check this themselves.
//
// Complexity: O(S·N·R) where S = stages, N = live spans, R = rules per stage.
func (r *Runner) Run(input []interval.Interval) []interval.Interval {
	set := nonEmpty(input)
	if len(set) == 0 {
		return nil
	}
	for i, c := range r.chain.stages {
		next := c.MapIntervals(set)
		if r.opts.coalesce {
			next = interval.Normalize(next)
		}
		r.log.Debug("stage mapped",
			zap.Int("index", i),
			zap.String("stage", c.Name()),
			zap.Int("in", len(set)),
			zap.Int("out", len(next)),
		)
		set = next
	}

	return set
}

// RunParallel is Run with one task per input span: each task folds its own
// span through the whole chain, then the results are concatenated in input
// order (and merged when coalescing is on). At most Workers tasks run at once.
//
// The covered identifiers equal those of Run(input). Errors are
// interval.ErrOverflow for a span whose end does not fit in a uint64, and
// ctx.Err(), checked between stages.
func (r *Runner) RunParallel(ctx context.Context, input []interval.Interval) ([]interval.Interval, error) {
	if err := interval.Validate(input); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	parts := nonEmpty(input)
	if len(parts) == 0 {
		return nil, ctx.Err()
	}
	results := make([][]interval.Interval, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	for i, span := range parts {
		g.Go(func() error {
			set := []interval.Interval{span}
			for _, c := range r.chain.stages {
				if err := gctx.Err(); err != nil {
					return err
				}
				set = c.MapIntervals(set)
				if r.opts.coalesce {
					set = interval.Normalize(set)
				}
			}
			results[i] = set

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []interval.Interval
	for _, part := range results {
		out = append(out, part...)
	}
	if r.opts.coalesce {
		out = interval.Normalize(out)
	}
	r.log.Debug("parallel run finished",
		zap.Int("partitions", len(parts)),
		zap.Int("spans", len(out)),
	)

	return out, nil
}

// FindMinimum returns the smallest Start across set, i.e. the lowest final
// identifier. ok is false when set is empty.
func FindMinimum(set []interval.Interval) (lowest uint64, ok bool) {
	return interval.Min(nonEmpty(set))
}

// Lowest evaluates seeds with the chosen strategy and returns the lowest
// final identifier. ok is false when seeds hold no identifiers.
//
// StrategyAuto takes the scalar path when every span is a single identifier
// and their count is within the scalar threshold; otherwise the interval
// path. StrategyScalar fails with ErrDomainTooLarge beyond the threshold.
func (r *Runner) Lowest(ctx context.Context, seeds []interval.Interval, s Strategy) (lowest uint64, ok bool, err error) {
	if s == StrategyAuto {
		s = r.pick(seeds)
	}

	switch s {
	case StrategyInterval:
		var out []interval.Interval
		if out, err = r.RunParallel(ctx, seeds); err != nil {
			return 0, false, err
		}
		lowest, ok = FindMinimum(out)
	case StrategyScalar:
		if lowest, ok, err = r.MinScalar(ctx, seeds); err != nil {
			return 0, false, err
		}
	default:
		return 0, false, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}

	r.log.Info("lowest resolved",
		zap.Stringer("strategy", s),
		zap.Int("spans", len(seeds)),
		zap.Uint64("lowest", lowest),
		zap.Bool("found", ok),
	)

	return lowest, ok, nil
}

// pick resolves StrategyAuto for seeds.
func (r *Runner) pick(seeds []interval.Interval) Strategy {
	if uint64(len(seeds)) > r.opts.scalarThreshold {
		return StrategyInterval
	}
	for _, s := range seeds {
		if s.Length > 1 {
			return StrategyInterval
		}
	}

	return StrategyScalar
}

// nonEmpty returns a copy of set without empty spans.
func nonEmpty(set []interval.Interval) []interval.Interval {
	var out []interval.Interval
	for _, iv := range set {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}

	return out
}
