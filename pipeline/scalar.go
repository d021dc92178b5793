// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stagemap/interval"
)

// ctxCheckEvery is how many identifiers a scalar worker handles between
// cancellation checks.
const ctxCheckEvery = 1 << 12

// TraceScalar walks v through every stage and returns the final identifier.
// Complexity: O(S·R).
func (r *Runner) TraceScalar(v uint64) uint64 {
	return r.chain.trace(v)
}

// TraceAll traces every value of an explicit list, in parallel, and returns
// the results in input order. The list length is not bounded by the scalar
// threshold: the caller already materialized it.
func (r *Runner) TraceAll(ctx context.Context, values []uint64) ([]uint64, error) {
	out := make([]uint64, len(values))
	if len(values) == 0 {
		return out, ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	size := chunkSize(uint64(len(values)), r.opts.workers)
	for lo := 0; lo < len(values); lo += int(size) {
		hi := min(lo+int(size), len(values))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				out[i] = r.chain.trace(values[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// MinScalar enumerates every identifier in ranges, traces each one, and
// returns the lowest result. ranges are split into chunks processed by up to
// Workers goroutines; each goroutine owns its chunk and its own result slot.
//
// Returns interval.ErrOverflow for a span whose end does not fit in a uint64,
// and ErrDomainTooLarge (before doing any work) when the total number of
// identifiers exceeds the scalar threshold. ok is false when ranges hold no
// identifiers.
//
// Complexity: O(N·S·R) where N is the total cardinality of ranges.
func (r *Runner) MinScalar(ctx context.Context, ranges []interval.Interval) (lowest uint64, ok bool, err error) {
	if err := interval.Validate(ranges); err != nil {
		return 0, false, fmt.Errorf("pipeline: %w", err)
	}
	total, overflow := cardinality(ranges)
	if overflow || total > r.opts.scalarThreshold {
		return 0, false, fmt.Errorf("%w: %d spans exceed %d identifiers",
			ErrDomainTooLarge, len(ranges), r.opts.scalarThreshold)
	}
	if total == 0 {
		return 0, false, ctx.Err()
	}

	chunks := split(ranges, chunkSize(total, r.opts.workers))
	mins := make([]uint64, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			best := uint64(math.MaxUint64)
			for v := chunk.Start; v < chunk.End(); v++ {
				if (v-chunk.Start)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				best = min(best, r.chain.trace(v))
			}
			mins[i] = best

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return 0, false, err
	}

	lowest = mins[0]
	for _, m := range mins[1:] {
		lowest = min(lowest, m)
	}
	r.log.Debug("scalar enumeration finished",
		zap.Uint64("identifiers", total),
		zap.Int("chunks", len(chunks)),
	)

	return lowest, true, nil
}

// cardinality sums span lengths, reporting overflow instead of wrapping.
func cardinality(set []interval.Interval) (total uint64, overflow bool) {
	for _, iv := range set {
		if iv.Length > math.MaxUint64-total {
			return 0, true
		}
		total += iv.Length
	}

	return total, false
}

// chunkSize spreads total items over roughly four chunks per worker.
func chunkSize(total uint64, workers int) uint64 {
	parts := uint64(max(workers, 1)) * 4
	size := total / parts
	if total%parts != 0 {
		size++
	}

	return max(size, 1)
}

// split cuts every non-empty span into pieces of at most size identifiers.
func split(set []interval.Interval, size uint64) []interval.Interval {
	var out []interval.Interval
	for _, iv := range set {
		for iv.Length > 0 {
			n := min(iv.Length, size)
			out = append(out, interval.Interval{Start: iv.Start, Length: n})
			iv.Start += n
			iv.Length -= n
		}
	}

	return out
}
