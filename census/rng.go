// Package census - RNG utilities for sampled measurements.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - One RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Run derives one stream per
//     network before fanning out, so workers never share a *rand.Rand.
package census

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64
// finalizer, so neighbouring stream ids give unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once; a nil base uses defaultRNGSeed as parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// fillProbes draws len(dst) values in [0, valueRange) and tags them with
// their positions. The first presorted values are put in ascending order.
//
// Complexity: O(n + p log p) for p = presorted.
func fillProbes(dst []Probe, rng *rand.Rand, valueRange, presorted int) {
	for i := range dst {
		dst[i].Value = rng.Intn(valueRange)
	}
	// insertion sort of a prefix of at most a few elements
	for i := 1; i < presorted && i < len(dst); i++ {
		for j := i; j > 0 && dst[j].Value < dst[j-1].Value; j-- {
			dst[j].Value, dst[j-1].Value = dst[j-1].Value, dst[j].Value
		}
	}
	for i := range dst {
		dst[i].Source = i
	}
}
