package selection_test

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/ordstat/census"
	"github.com/katalvlaran/ordstat/instrument"
	"github.com/katalvlaran/ordstat/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinMaxElement_Scenario checks the documented nine-element example:
// min 1 at index 3, max 6 at its last occurrence (index 6).
func TestMinMaxElement_Scenario(t *testing.T) {
	xs := []int{3, 6, 2, 1, 4, 5, 6, 2, 3}

	lo, hi := selection.MinMaxElement(xs)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 6, hi)
	assert.Equal(t, 3, selection.MinElement(xs))
	assert.Equal(t, 6, selection.MaxElement(xs))
}

// TestElements_Empty verifies the end index for empty input.
func TestElements_Empty(t *testing.T) {
	var xs []int
	assert.Equal(t, 0, selection.MinElement(xs))
	assert.Equal(t, 0, selection.MaxElement(xs))

	lo, hi := selection.MinMaxElement(xs)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)

	_, _, ok := selection.MinMaxSeq(slices.Values(xs), cmp.Less[int])
	assert.False(t, ok)
}

// TestElements_Single verifies that one element costs nothing.
func TestElements_Single(t *testing.T) {
	var c instrument.Counter
	less := instrument.Count(&c, cmp.Less[int])
	xs := []int{42}

	lo, hi := selection.MinMaxElementFunc(xs, less)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
	assert.Equal(t, 0, selection.MinElementFunc(xs, less))
	assert.Equal(t, int64(0), c.Load())
}

// TestElements_Exhaustive delegates to the census range check: all inputs
// up to length 8, tie rules and comparison budgets.
func TestElements_Exhaustive(t *testing.T) {
	rep := census.CheckRange(8)
	require.Empty(t, rep.Failures)
	assert.Equal(t, 1+1+3+13+75+541+4683+47293+545835, rep.Cases)
}

// TestMinMaxElement_Budget checks ⌈3n/2⌉-2 on longer ascending and
// descending inputs.
func TestMinMaxElement_Budget(t *testing.T) {
	var c instrument.Counter
	less := instrument.Count(&c, cmp.Less[int])

	for _, n := range []int{2, 3, 10, 11, 100, 101} {
		up := make([]int, n)
		down := make([]int, n)
		for i := range up {
			up[i] = i
			down[i] = n - i
		}

		c.Reset()
		lo, hi := selection.MinMaxElementFunc(up, less)
		assert.Equal(t, 0, lo)
		assert.Equal(t, n-1, hi)
		assert.LessOrEqual(t, c.Load(), int64(census.MinMaxBudget(n)), "ascending n=%d", n)

		c.Reset()
		lo, hi = selection.MinMaxElementFunc(down, less)
		assert.Equal(t, n-1, lo)
		assert.Equal(t, 0, hi)
		assert.LessOrEqual(t, c.Load(), int64(census.MinMaxBudget(n)), "descending n=%d", n)
	}
}

// TestElementN_Remaining verifies that Remaining counts from the found
// element to the end of the window.
func TestElementN_Remaining(t *testing.T) {
	xs := []int{3, 6, 2, 1, 4, 5, 6, 2, 3}

	c := selection.MinElementN(xs, 0, len(xs))
	assert.Equal(t, selection.Cursor{Index: 3, Remaining: 6}, c)

	c = selection.MaxElementN(xs, 2, 4)
	assert.Equal(t, selection.Cursor{Index: 5, Remaining: 1}, c, "window [2,1,4,5]")

	lo, hi := selection.MinMaxElementN(xs, 4, 5)
	assert.Equal(t, selection.Cursor{Index: 7, Remaining: 2}, lo)
	assert.Equal(t, selection.Cursor{Index: 6, Remaining: 3}, hi)

	c = selection.MinElementN(xs, 4, 0)
	assert.Equal(t, selection.Cursor{Index: 4}, c)
	assert.False(t, c.Found())
}

// TestCursor_Rest chains counted scans to list every minimum in order.
func TestCursor_Rest(t *testing.T) {
	xs := []int{2, 1, 3, 1, 1, 4}

	var idx []int
	first, n := 0, len(xs)
	for n > 0 {
		c := selection.MinElementN(xs, first, n)
		if xs[c.Index] != 1 {
			break
		}
		idx = append(idx, c.Index)
		first, n = c.Rest()
	}
	assert.Equal(t, []int{1, 3, 4}, idx)
}

// TestMinMaxSeq_MatchesSlice compares the iterator form with the slice form.
func TestMinMaxSeq_MatchesSlice(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for in := range census.Inputs(n) {
			probes := make([]census.Probe, n)
			for i, v := range in {
				probes[i] = census.Probe{Value: v, Source: i}
			}
			byValue := func(a, b census.Probe) bool { return a.Value < b.Value }

			lo, hi, ok := selection.MinMaxSeq(slices.Values(probes), byValue)
			require.True(t, ok)
			wl, wh := selection.MinMaxElementFunc(probes, byValue)
			require.Equal(t, wl, lo.Source, "input %v", in)
			require.Equal(t, wh, hi.Source, "input %v", in)
		}
	}
}

// TestMinMaxElement_NaN verifies that cmp.Less orders NaN first.
func TestMinMaxElement_NaN(t *testing.T) {
	xs := []float64{2, math.NaN(), -1, 5}
	lo, hi := selection.MinMaxElement(xs)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)
}
