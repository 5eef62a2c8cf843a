package selection_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/ordstat/census"
	"github.com/katalvlaran/ordstat/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectRank_Scenarios covers the documented rank examples.
func TestSelectRank_Scenarios(t *testing.T) {
	v, err := selection.SelectRank(2, 3, 6, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, v, "median of {1,2,3,4,6}")

	v, err = selection.SelectRank(2, 0, 0, 0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	i, err := selection.SelectIndex([]int{0, 0, 0, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, i, "stability picks the third zero")
}

// TestSelectRank_Errors verifies arity and rank validation.
func TestSelectRank_Errors(t *testing.T) {
	_, err := selection.SelectRank[int](0)
	assert.ErrorIs(t, err, selection.ErrArity, "no values")

	_, err = selection.SelectRank(0, 1, 2, 3, 4, 5, 6, 7, 8)
	assert.ErrorIs(t, err, selection.ErrArity, "eight values")

	_, err = selection.SelectRank(3, 1, 2, 3)
	assert.ErrorIs(t, err, selection.ErrRank, "rank past the end")

	_, err = selection.SelectRank(-1, 1, 2, 3)
	assert.ErrorIs(t, err, selection.ErrRank, "negative rank")

	i, err := selection.SelectIndexFunc([]int{}, 0, cmp.Less[int])
	assert.ErrorIs(t, err, selection.ErrArity)
	assert.Equal(t, -1, i)

	_, err = selection.Median[float64]()
	assert.ErrorIs(t, err, selection.ErrArity)
}

// TestSelectIndexFunc_AllRanks checks runtime dispatch for every arity 1..7,
// every rank and every duplicate pattern.
func TestSelectIndexFunc_AllRanks(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for in := range census.Inputs(n) {
			for k := 0; k < n; k++ {
				got, err := selection.SelectIndexFunc(in, k, cmp.Less[int])
				require.NoError(t, err)
				require.Equal(t, stableIndex(in, k), got, "n=%d k=%d input %v", n, k, in)
			}
		}
	}
}

// TestMedian_RuntimeArity verifies the lower-median rule for Median.
func TestMedian_RuntimeArity(t *testing.T) {
	cases := []struct {
		vals []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{2, 1}, 1},
		{[]int{9, 4, 7, 1}, 4},
		{[]int{5, 3, 1, 4, 2}, 3},
		{[]int{6, 5, 4, 3, 2, 1}, 3},
		{[]int{1, 7, 2, 6, 3, 5, 4}, 4},
	}
	for _, tc := range cases {
		got, err := selection.Median(tc.vals...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.vals)
	}
}

// TestSelectRankFunc_CustomRelation orders strings by length; ties keep
// argument order.
func TestSelectRankFunc_CustomRelation(t *testing.T) {
	byLen := func(a, b string) bool { return len(a) < len(b) }

	got, err := selection.SelectRankFunc(1, byLen, "ccc", "a", "bb", "dd")
	require.NoError(t, err)
	assert.Equal(t, "bb", got)

	got, err = selection.SelectRankFunc(2, byLen, "ccc", "a", "bb", "dd")
	require.NoError(t, err)
	assert.Equal(t, "dd", got)
}
