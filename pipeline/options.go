// SPDX-License-Identifier: MIT

package pipeline

import (
	"runtime"

	"go.uber.org/zap"
)

// Defaults (single source of truth).
const (
	// DefaultWorkers = 0 resolves to runtime.GOMAXPROCS(0) at NewRunner time.
	DefaultWorkers = 0

	// DefaultScalarThreshold is the largest number of identifiers the scalar
	// path will enumerate (about one million).
	DefaultScalarThreshold uint64 = 1 << 20

	// DefaultCoalesce merges touching/overlapping spans after every stage so
	// the working set stays small.
	DefaultCoalesce = true
)

const panicWorkersNegative = "pipeline: WithWorkers: n must be >= 0"

// Option mutates Options. Options apply in order; the last one wins.
type Option func(*Options)

// Options is the resolved runner configuration. Fields are unexported;
// use the WithX constructors.
type Options struct {
	workers         int
	scalarThreshold uint64
	coalesce        bool
	logger          *zap.Logger
}

// DefaultOptions returns the documented defaults with workers already
// resolved and a no-op logger.
func DefaultOptions() Options {
	return Options{
		workers:         runtime.GOMAXPROCS(0),
		scalarThreshold: DefaultScalarThreshold,
		coalesce:        DefaultCoalesce,
		logger:          zap.NewNop(),
	}
}

// WithWorkers bounds the number of goroutines used by RunParallel, TraceAll
// and MinScalar. 0 means runtime.GOMAXPROCS(0). Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithScalarThreshold sets the largest input cardinality the scalar path
// accepts. 0 disables the scalar path entirely.
func WithScalarThreshold(n uint64) Option {
	return func(o *Options) { o.scalarThreshold = n }
}

// WithCoalesce toggles merging of spans between stages.
func WithCoalesce(on bool) Option {
	return func(o *Options) { o.coalesce = on }
}

// WithLogger routes runner logs to l. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// Workers returns the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// ScalarThreshold returns the scalar-path cardinality limit.
func (o Options) ScalarThreshold() uint64 { return o.scalarThreshold }

// Coalesce reports whether spans are merged between stages.
func (o Options) Coalesce() bool { return o.coalesce }

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
