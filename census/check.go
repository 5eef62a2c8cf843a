package census

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/katalvlaran/ordstat/instrument"
)

// maxFailures caps the failures kept per report.
const maxFailures = 8

// Failure is one input on which a network disagreed with a stable sort.
type Failure struct {
	Input []int
	Got   Probe
	Want  Probe
	Count int
}

// Report summarizes one network.
//
//   - Cases      - exhaustive inputs checked (all duplicate patterns).
//   - Worst      - largest comparison count seen, sampled inputs included.
//   - Mean       - mean comparisons over duplicate-free permutations.
//   - Samples    - random inputs measured; 0 when sampling was off.
//   - SampleMean - mean comparisons over the random inputs.
//   - Failures   - wrong answers, at most a few.
type Report struct {
	Network    Network
	Cases      int
	Worst      int
	Mean       float64
	Samples    int
	SampleMean float64
	Failures   []Failure
}

// OK reports whether every answer was right and within budget.
func (r Report) OK() bool {
	return len(r.Failures) == 0 && r.Worst <= r.Network.Bound
}

// Check runs nw on every permutation of every duplicate pattern of its
// arity. Each answer must be the very argument a stable sort puts at
// nw.Rank (same value and same source position).
//
// Inputs whose first nw.Presorted values are not ascending are skipped.
func Check(nw Network) Report {
	rep := Report{Network: nw}

	var c instrument.Counter
	less := instrument.Count(&c, byValue)
	probes := make([]Probe, nw.Arity)
	ref := make([]Probe, nw.Arity)

	var total, perms int
	for in := range Inputs(nw.Arity) {
		if !ascending(in[:nw.Presorted]) {
			continue
		}
		for i, v := range in {
			probes[i] = Probe{Value: v, Source: i}
		}

		want := stableRank(ref, probes, nw.Rank)
		c.Reset()
		got := nw.Run(probes, less)
		n := int(c.Load())

		rep.Cases++
		rep.Worst = max(rep.Worst, n)
		if distinct(in) {
			total += n
			perms++
		}
		if got != want && len(rep.Failures) < maxFailures {
			rep.Failures = append(rep.Failures, Failure{
				Input: slices.Clone(in), Got: got, Want: want, Count: n,
			})
		}
	}
	if perms > 0 {
		rep.Mean = float64(total) / float64(perms)
	}
	return rep
}

// Sample measures nw on random inputs only, with the options of Run. The
// stream is the one Run gives the first network, so for equal options
// Sample(nw) and Run over {nw} report the same sampled mean.
//
// Cases and Mean stay zero; Worst is the largest count among the samples.
func Sample(nw Network, opts ...Option) Report {
	o := gatherOptions(opts...)
	rep := Report{Network: nw}
	sample(&rep, deriveRNG(rngFromSeed(o.seed), 0), o.samples, o.valueRange)
	return rep
}

// sample measures nw on random inputs, the way a benchmark run would, and
// folds the results into rep.
func sample(rep *Report, rng *rand.Rand, samples, valueRange int) {
	nw := rep.Network

	var c instrument.Counter
	less := instrument.Count(&c, byValue)
	probes := make([]Probe, nw.Arity)
	ref := make([]Probe, nw.Arity)

	var total int64
	for i := 0; i < samples; i++ {
		fillProbes(probes, rng, valueRange, nw.Presorted)
		want := stableRank(ref, probes, nw.Rank)
		c.Reset()
		got := nw.Run(probes, less)
		n := c.Load()

		total += n
		rep.Worst = max(rep.Worst, int(n))
		if got != want && len(rep.Failures) < maxFailures {
			in := make([]int, len(probes))
			for j, p := range probes {
				in[j] = p.Value
			}
			rep.Failures = append(rep.Failures, Failure{Input: in, Got: got, Want: want, Count: int(n)})
		}
	}
	rep.Samples = samples
	if samples > 0 {
		rep.SampleMean = float64(total) / float64(samples)
	}
}

// stableRank copies probes into buf, stable-sorts it by value and returns
// the entry at rank k.
func stableRank(buf, probes []Probe, k int) Probe {
	copy(buf, probes)
	slices.SortStableFunc(buf, func(a, b Probe) int { return cmp.Compare(a.Value, b.Value) })
	return buf[k]
}

func ascending(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
