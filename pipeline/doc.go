// SPDX-License-Identifier: MIT

// Package pipeline folds identifiers and identifier ranges through an ordered
// chain of categories (seed → soil → … → location).
//
// 🚀 Two ways through the chain:
//
//	Interval path: Runner.Run pushes whole spans through every stage with
//	category.MapIntervals. Cost depends on the number of spans and rules,
//	not on how many identifiers the spans hold, so billions of seeds are
//	as cheap as fourteen.
//
//	Scalar path: Runner.TraceScalar walks one identifier through every
//	stage. TraceAll and MinScalar fan this out across workers. It exists
//	for short explicit lists and as an oracle for the interval path; it is
//	refused (ErrDomainTooLarge) once the input holds more identifiers than
//	the configured scalar threshold.
//
// ✨ Key features:
//   - NewChain resolves stage names against a catalog once and fails with
//     ErrMissingCategory on any unknown name
//   - Run / FindMinimum: pure fold + lowest final value
//   - RunParallel: one worker per input span, end to end through the chain
//   - Lowest: strategy dispatcher (StrategyAuto / StrategyInterval / StrategyScalar)
//   - overlap warnings from the chain's categories are logged through zap
//
// Concurrency:
//
//	Stages are strictly sequential, since stage n+1 needs all of stage n.
//	Independent input spans and independent scalar chunks are processed in
//	parallel via errgroup, bounded by WithWorkers. Chains and runners are
//	immutable and safe for concurrent use.
//
// ⚙️ Usage:
//
//	chain, err := pipeline.NewChain(names, catalog)
//	if err != nil { ... }
//	r := pipeline.NewRunner(chain, pipeline.WithLogger(logger))
//	lowest, ok := pipeline.FindMinimum(r.Run(seedRanges))
package pipeline
