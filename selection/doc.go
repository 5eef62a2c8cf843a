// Package selection finds order statistics of small tuples with as few
// comparisons as known, and extrema of slices with the classic optimal
// budgets, all without sorting, allocating, or losing stability.
//
// 🚀 What is stable selection?
//
//	Rank k of n values is the value a *stable* sort would put at index k.
//	With duplicates present, "which 3" matters: callers holding pointers,
//	or values with payloads, get back the exact argument the stable sort
//	would have placed there.
//
//	  vals  = [3a, 1, 3b, 0, 3c]      (3a, 3b, 3c compare equal)
//	  sort  = [0, 1, 3a, 3b, 3c]
//	  rank2 = 3a, rank3 = 3b, rank4 = 3c
//
// ✨ Key features:
//   - Hand-built decision trees for every rank of 2..7 values
//     (Select0Of2 … Select6Of7), median of 5 in 6 comparisons, median of 7 in
//     10, lower median of 6 in 8 (6 with a presorted triple).
//   - Stability by construction: each comparison uses the strict (<) or
//     reflexive (≤) form of the relation depending on which operand came
//     first, so ties always resolve like a stable sort.
//   - Runtime-arity dispatch: SelectRank / SelectIndexFunc / Median.
//   - Range layer: MinElement, MaxElement, MinMaxElement, their counted
//     (…N) forms returning a resumable Cursor, and MinMaxSeq over iter.Seq.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ordstat/selection"
//
//	m := selection.MedianOf5(3, 6, 2, 1, 4, cmp.Less[int])          // 3
//	v, err := selection.SelectRank(1, 9, 4, 7)                     // 7, nil
//	lo, hi := selection.MinMaxElement([]int{3, 6, 2, 1, 4, 5, 6})  // 3, 6
//
//	// Address identity: select among pointers.
//	p := selection.MedianOf3(&xs[0], &xs[1], &xs[2], selection.Indirect(byKey))
//
// Comparison budgets (worst case):
//
//	n  rank: 0  1  2  3  4  5  6
//	2        1  1
//	3        2  3  2
//	4        3  4  4  3
//	5        4  6  6  6  4
//	6        5  7  8  8  7  5
//	7        6  8 10 10 10  8  6
//
//	MinElement / MaxElement: n-1.   MinMaxElement: ⌈3n/2⌉-2.
//
// Relations:
//
//	Every function takes a Less[T] that must be a strict weak ordering.
//	The cmp.Ordered variants use cmp.Less, which orders NaN first.
//	Violations are not detected; the result is then some argument.
//
// Concurrency:
//
//	All functions are pure. They are safe for concurrent use as long as the
//	relation is.
package selection
