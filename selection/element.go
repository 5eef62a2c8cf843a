package selection

import "cmp"

// Range layer: extrema over slices of any length, built from the 2-element
// networks so ties follow the same stable rules.
//
//   - minimum: first occurrence among ties, n-1 comparisons.
//   - maximum: last occurrence among ties (the element a stable sort puts
//     last), n-1 comparisons.
//   - both:    pairwise reduction, at most ⌈3n/2⌉-2 comparisons.
//
// The plain variants return len(s) for an empty slice. The counted (N)
// variants scan the window s[first:first+n] and return a Cursor; they panic
// if the window is out of range, like a slice expression would.

// MinElement returns the index of the first minimum of s, or len(s) if s is
// empty.
func MinElement[S ~[]E, E cmp.Ordered](s S) int {
	return MinElementFunc(s, cmp.Less[E])
}

// MinElementFunc is MinElement with a caller-supplied relation.
func MinElementFunc[S ~[]E, E any](s S, less Less[E]) int {
	c := MinElementNFunc(s, 0, len(s), less)
	if !c.Found() {
		return len(s)
	}
	return c.Index
}

// MaxElement returns the index of the last maximum of s, or len(s) if s is
// empty.
func MaxElement[S ~[]E, E cmp.Ordered](s S) int {
	return MaxElementFunc(s, cmp.Less[E])
}

// MaxElementFunc is MaxElement with a caller-supplied relation.
func MaxElementFunc[S ~[]E, E any](s S, less Less[E]) int {
	c := MaxElementNFunc(s, 0, len(s), less)
	if !c.Found() {
		return len(s)
	}
	return c.Index
}

// MinMaxElement returns the indices of the first minimum and the last
// maximum of s, or (len(s), len(s)) if s is empty.
func MinMaxElement[S ~[]E, E cmp.Ordered](s S) (lo, hi int) {
	return MinMaxElementFunc(s, cmp.Less[E])
}

// MinMaxElementFunc is MinMaxElement with a caller-supplied relation.
//
// Complexity: at most ⌈3n/2⌉-2 calls to less for n ≥ 2, none for n ≤ 1.
func MinMaxElementFunc[S ~[]E, E any](s S, less Less[E]) (lo, hi int) {
	l, h := MinMaxElementNFunc(s, 0, len(s), less)
	if !l.Found() {
		return len(s), len(s)
	}
	return l.Index, h.Index
}

// MinElementN scans s[first:first+n] for its first minimum.
func MinElementN[S ~[]E, E cmp.Ordered](s S, first, n int) Cursor {
	return MinElementNFunc(s, first, n, cmp.Less[E])
}

// MinElementNFunc is MinElementN with a caller-supplied relation.
// An empty window (n ≤ 0) yields Cursor{first, 0}.
func MinElementNFunc[S ~[]E, E any](s S, first, n int, less Less[E]) Cursor {
	if n <= 0 {
		return Cursor{Index: first}
	}
	end := first + n
	w := s[first:end]

	r := newRanker(less)
	best := item[E]{w[0], first}
	for i := 1; i < n; i++ {
		best = min2(r, best, item[E]{w[i], first + i})
	}
	return Cursor{Index: best.pos, Remaining: end - best.pos}
}

// MaxElementN scans s[first:first+n] for its last maximum.
func MaxElementN[S ~[]E, E cmp.Ordered](s S, first, n int) Cursor {
	return MaxElementNFunc(s, first, n, cmp.Less[E])
}

// MaxElementNFunc is MaxElementN with a caller-supplied relation.
// An empty window (n ≤ 0) yields Cursor{first, 0}.
func MaxElementNFunc[S ~[]E, E any](s S, first, n int, less Less[E]) Cursor {
	if n <= 0 {
		return Cursor{Index: first}
	}
	end := first + n
	w := s[first:end]

	r := newRanker(less)
	best := item[E]{w[0], first}
	for i := 1; i < n; i++ {
		best = max2(r, best, item[E]{w[i], first + i})
	}
	return Cursor{Index: best.pos, Remaining: end - best.pos}
}

// MinMaxElementN scans s[first:first+n] for its first minimum and last
// maximum.
func MinMaxElementN[S ~[]E, E cmp.Ordered](s S, first, n int) (lo, hi Cursor) {
	return MinMaxElementNFunc(s, first, n, cmp.Less[E])
}

// MinMaxElementNFunc is MinMaxElementN with a caller-supplied relation.
//
// Elements are taken two at a time: the pair is ordered with one
// comparison, then its low end is folded into the running minimum and its
// high end into the running maximum. An odd element left at the end costs
// two comparisons.
//
// Complexity: at most ⌈3n/2⌉-2 calls to less for n ≥ 2.
func MinMaxElementNFunc[S ~[]E, E any](s S, first, n int, less Less[E]) (lo, hi Cursor) {
	if n <= 0 {
		c := Cursor{Index: first}
		return c, c
	}
	end := first + n
	w := s[first:end]
	if n == 1 {
		c := Cursor{Index: first, Remaining: 1}
		return c, c
	}

	r := newRanker(less)
	mn, mx := order2(r, item[E]{w[0], first}, item[E]{w[1], first + 1})

	i := 2
	for ; i+1 < n; i += 2 {
		a, b := order2(r, item[E]{w[i], first + i}, item[E]{w[i+1], first + i + 1})
		mn = min2(r, mn, a)
		mx = max2(r, mx, b)
	}
	if i < n {
		x := item[E]{w[i], first + i}
		mn = min2(r, mn, x)
		mx = max2(r, mx, x)
	}

	return Cursor{Index: mn.pos, Remaining: end - mn.pos},
		Cursor{Index: mx.pos, Remaining: end - mx.pos}
}
