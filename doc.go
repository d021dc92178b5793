// Package stagemap resolves sets of integer identifiers through an ordered
// chain of remapping stages, operating on whole intervals instead of
// individual values.
//
// 🚀 What is stagemap?
//
//	A small, dependency-light engine for staged range translation:
//		• Intervals: half-open uint64 spans with split, subtract and normalize
//		• Categories: validated rule tables with first-match semantics
//		• Pipelines: stage chains, a parallel interval runner and a scalar oracle
//		• Almanac: a text format for seeds and rule blocks, plus a CLI
//
// ✨ Why choose stagemap?
//
//   - Range-native – billions of seeds cost no more than a handful of spans
//   - Verified – every interval result is cross-checked against scalar tracing
//   - Explicit – overlapping rules are reported as warnings, never hidden
//
// Everything is organized under four subpackages:
//
//	interval/  : Interval type and set helpers (TotalLength, Normalize, Equal)
//	category/  : RangeRule, Category, MapIntervals
//	pipeline/  : Chain, Runner (Run, RunParallel, Lowest) and scalar strategy
//	almanac/   : participle-based almanac parser and seed readings
//
// Quick ASCII example:
//
//	[10 ──────────── 30)        rule 100 15 5 claims [15,20)
//	[10,15) ──────────────────▶ [10,15)   identity
//	[15,20) ──────────────────▶ [100,105) shifted
//	[20,30) ──────────────────▶ [20,30)   identity
//
//	go get github.com/katalvlaran/stagemap
package stagemap
