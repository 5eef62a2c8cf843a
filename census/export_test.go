package census

// Test-only accessors for unexported helpers.

// OptionsSnapshot exposes resolved options to black-box tests.
type OptionsSnapshot struct {
	Samples    int
	Seed       int64
	Workers    int
	ValueRange int
	MaxRange   int
}

func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Samples:    o.samples,
		Seed:       o.seed,
		Workers:    o.workers,
		ValueRange: o.valueRange,
		MaxRange:   o.maxRange,
	}
}

var (
	DeriveSeed = deriveSeed
	Distinct   = distinct
)
