package census

import (
	"slices"

	"github.com/katalvlaran/ordstat/instrument"
	"github.com/katalvlaran/ordstat/selection"
)

// RangeFailure is one input on which a range function returned the wrong
// position or spent more comparisons than allowed.
type RangeFailure struct {
	Op     string
	Input  []int
	Got    [2]int
	Want   [2]int
	Count  int
	Budget int
}

// RangeReport summarizes CheckRange.
type RangeReport struct {
	MaxLen   int
	Cases    int
	Failures []RangeFailure
}

// OK reports whether the range layer passed every case.
func (r RangeReport) OK() bool { return len(r.Failures) == 0 }

// MinMaxBudget is the comparison budget of a joint min-max scan over n
// elements: ⌈3n/2⌉-2 for n ≥ 2, zero otherwise.
func MinMaxBudget(n int) int {
	if n < 2 {
		return 0
	}
	return (3*n+1)/2 - 2
}

// CheckRange runs the range layer over every permutation of every duplicate
// pattern of length 0..maxLen. The minimum must be the first occurrence and
// the maximum the last one; single scans must cost n-1 comparisons and the
// joint scan at most MinMaxBudget(n). Empty input must yield the end index.
func CheckRange(maxLen int) RangeReport {
	rep := RangeReport{MaxLen: maxLen}

	var c instrument.Counter
	less := instrument.Count(&c, byValue)

	fail := func(f RangeFailure) {
		if len(rep.Failures) < maxFailures {
			rep.Failures = append(rep.Failures, f)
		}
	}

	for n := 0; n <= maxLen; n++ {
		probes := make([]Probe, n)
		scan := max(n-1, 0)
		budget := MinMaxBudget(n)

		for in := range Inputs(n) {
			for i, v := range in {
				probes[i] = Probe{Value: v, Source: i}
			}
			wantLo, wantHi := firstMin(in), lastMax(in)
			rep.Cases++

			c.Reset()
			lo := selection.MinElementFunc(probes, less)
			if k := int(c.Load()); lo != wantLo || k != scan {
				fail(RangeFailure{Op: "MinElement", Input: slices.Clone(in), Got: [2]int{lo, lo}, Want: [2]int{wantLo, wantLo}, Count: k, Budget: scan})
			}

			c.Reset()
			hi := selection.MaxElementFunc(probes, less)
			if k := int(c.Load()); hi != wantHi || k != scan {
				fail(RangeFailure{Op: "MaxElement", Input: slices.Clone(in), Got: [2]int{hi, hi}, Want: [2]int{wantHi, wantHi}, Count: k, Budget: scan})
			}

			c.Reset()
			lo, hi = selection.MinMaxElementFunc(probes, less)
			if k := int(c.Load()); lo != wantLo || hi != wantHi || k > budget {
				fail(RangeFailure{Op: "MinMaxElement", Input: slices.Clone(in), Got: [2]int{lo, hi}, Want: [2]int{wantLo, wantHi}, Count: k, Budget: budget})
			}

			c.Reset()
			pl, ph, ok := selection.MinMaxSeq(slices.Values(probes), less)
			lo, hi = n, n
			if ok {
				lo, hi = pl.Source, ph.Source
			}
			if k := int(c.Load()); lo != wantLo || hi != wantHi || k > budget {
				fail(RangeFailure{Op: "MinMaxSeq", Input: slices.Clone(in), Got: [2]int{lo, hi}, Want: [2]int{wantLo, wantHi}, Count: k, Budget: budget})
			}
		}
	}
	return rep
}

// firstMin returns the index of the first minimum, len(s) when empty.
func firstMin(s []int) int {
	best := len(s)
	for i, v := range s {
		if best == len(s) || v < s[best] {
			best = i
		}
	}
	return best
}

// lastMax returns the index of the last maximum, len(s) when empty.
func lastMax(s []int) int {
	best := len(s)
	for i, v := range s {
		if best == len(s) || v >= s[best] {
			best = i
		}
	}
	return best
}
