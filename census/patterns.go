package census

import "iter"

// Patterns returns every duplicate pattern of length n: the non-decreasing
// sequences that start at 0 and grow by 0 or 1 at each step. There are
// 2^(n-1) of them for n ≥ 1. Together with their distinct permutations they
// cover every way n values can compare, ties included.
//
// Patterns(0) holds a single empty pattern.
func Patterns(n int) [][]int {
	if n <= 0 {
		return [][]int{{}}
	}

	out := make([][]int, 0, 1<<(n-1))
	for mask := 0; mask < 1<<(n-1); mask++ {
		p := make([]int, n)
		for i := 1; i < n; i++ {
			p[i] = p[i-1] + (mask>>(i-1))&1
		}
		out = append(out, p)
	}
	return out
}

// NextPermutation rearranges s into the next permutation in lexicographic
// order and reports true. If s is already the last one it is reset to the
// first (ascending) order and false is returned. Repeated values yield each
// distinct permutation once.
//
// Complexity: O(len(s)).
func NextPermutation(s []int) bool {
	n := len(s)
	i := n - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		reverse(s)
		return false
	}

	j := n - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])
	return true
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Inputs yields every distinct permutation of every pattern of length n.
// The yielded slice is reused between iterations; copy it to keep it.
func Inputs(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, p := range Patterns(n) {
			for {
				if !yield(p) {
					return
				}
				if !NextPermutation(p) {
					break
				}
			}
		}
	}
}

// distinct reports whether a permutation of a pattern has no repeated value.
// A pattern of length n is duplicate-free exactly when its maximum is n-1.
func distinct(in []int) bool {
	for _, v := range in {
		if v == len(in)-1 {
			return true
		}
	}
	return len(in) <= 1
}
