// SPDX-License-Identifier: MIT

// Package census: functional configuration for Run.
//
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which applies setters over the defaults.
package census

// DEFAULTS - single source of truth for zero-value behaviour.
const (
	// DefaultSamples is the number of random inputs measured per network.
	// Zero disables sampling.
	DefaultSamples = 10000

	// DefaultSeed selects the deterministic default stream (see rngFromSeed).
	DefaultSeed int64 = 0

	// DefaultWorkers bounds the number of networks checked concurrently.
	DefaultWorkers = 4

	// DefaultValueRange is the exclusive upper bound for sampled values.
	DefaultValueRange = 1000

	// DefaultMaxRange is the longest slice exhaustively checked against the
	// range layer. Zero skips the range check.
	DefaultMaxRange = 8
)

const (
	panicSamplesInvalid    = "census: WithSamples: n must be >= 0"
	panicWorkersInvalid    = "census: WithWorkers: n must be >= 1"
	panicValueRangeInvalid = "census: WithValueRange: n must be >= 1"
	panicMaxRangeInvalid   = "census: WithMaxRange: n must be in 0..10"
)

// maxRangeLimit caps WithMaxRange; length 10 already means 102,247,563
// inputs.
const maxRangeLimit = 10

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the effective configuration of a Run.
type Options struct {
	samples    int
	seed       int64
	workers    int
	valueRange int
	maxRange   int
}

// WithSamples sets how many random inputs are measured per network.
// Panics if n < 0.
func WithSamples(n int) Option {
	if n < 0 {
		panic(panicSamplesInvalid)
	}
	return func(o *Options) { o.samples = n }
}

// WithSeed fixes the sampling seed; 0 selects the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers bounds concurrent network checks. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithValueRange sets the exclusive upper bound of sampled values. Small
// ranges produce many ties. Panics if n < 1.
func WithValueRange(n int) Option {
	if n < 1 {
		panic(panicValueRangeInvalid)
	}
	return func(o *Options) { o.valueRange = n }
}

// WithMaxRange sets the longest slice checked against the range layer.
// Panics unless 0 ≤ n ≤ 10.
func WithMaxRange(n int) Option {
	if n < 0 || n > maxRangeLimit {
		panic(panicMaxRangeInvalid)
	}
	return func(o *Options) { o.maxRange = n }
}

func defaultOptions() Options {
	return Options{
		samples:    DefaultSamples,
		seed:       DefaultSeed,
		workers:    DefaultWorkers,
		valueRange: DefaultValueRange,
		maxRange:   DefaultMaxRange,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
