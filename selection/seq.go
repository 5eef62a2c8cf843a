package selection

import "iter"

// MinMaxSeq returns the first minimum and the last maximum of seq under
// less, with ok == false when seq yields nothing.
//
// It uses the same pairwise reduction as MinMaxElementFunc, so a sequence of
// n values costs at most ⌈3n/2⌉-2 comparisons, and it consumes seq once.
func MinMaxSeq[T any](seq iter.Seq[T], less Less[T]) (lo, hi T, ok bool) {
	r := newRanker(less)

	var (
		mn, mx, held item[T]
		n            int
	)
	for v := range seq {
		x := item[T]{v, n}
		switch {
		case n == 0:
			held = x
		case n == 1:
			mn, mx = order2(r, held, x)
		case n%2 == 0:
			held = x
		default:
			a, b := order2(r, held, x)
			mn = min2(r, mn, a)
			mx = max2(r, mx, b)
		}
		n++
	}

	switch {
	case n == 0:
		return lo, hi, false
	case n == 1:
		return held.v, held.v, true
	case n%2 == 1:
		mn = min2(r, mn, held)
		mx = max2(r, mx, held)
	}
	return mn.v, mx.v, true
}
