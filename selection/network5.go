package selection

func min5[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	return min2(r, min4(r, a, b, c, d), e)
}

func max5[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	return max2(r, max4(r, a, b, c, d), e)
}

// second5 returns rank 1 of five. Six comparisons.
//
// After ordering two pairs and their minima, a is below b, c and d, so the
// answer is a when e falls below a, and the least of b, c, e otherwise.
func second5[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	if r.precedes(c, a) {
		a, b, c, d = c, d, a, b
	}
	if r.precedes(e, a) {
		return a
	}
	return min3(r, b, c, e)
}

// median5Pairs returns rank 2 of five given a ≼ b and c ≼ d.
// The smaller of the two pair minima has three elements above it and can
// be dropped; what is left is rank 1 of four with one known pair.
func median5Pairs[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	if r.precedes(c, a) {
		return second4Ordered(r, a, b, d, e)
	}
	return second4Ordered(r, c, d, b, e)
}

func median5[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	return median5Pairs(r, a, b, c, d, e)
}

// median5Chain returns rank 2 of five given a ≼ b ≼ c; d and e are free.
// b is the answer unless d and e land on the same side of it.
func median5Chain[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	if r.precedes(d, b) {
		if r.precedes(e, b) {
			return max3(r, a, d, e)
		}
		return b
	}
	if r.precedes(e, b) {
		return b
	}
	return min3(r, c, d, e)
}

// median5Avg sorts a, b, c first, then probes d and e against the middle.
// Seven comparisons in the worst case, 88/15 on average over distinct
// permutations.
func median5Avg[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	a, b = order2(r, a, b)
	if r.precedes(c, b) {
		if r.precedes(c, a) {
			return median5Chain(r, c, a, b, d, e)
		}
		return median5Chain(r, a, c, b, d, e)
	}
	return median5Chain(r, a, b, c, d, e)
}

// median5ChainPair returns rank 2 of five given a ≼ b ≼ c and d ≼ e.
// Three comparisons.
func median5ChainPair[T any](r ranker[T], a, b, c, d, e item[T]) item[T] {
	if r.precedes(d, a) {
		return mid3Ordered(r, a, b, e)
	}
	return second4Pairs(r, b, c, d, e)
}

// Select0Of5 returns the minimum of five values. Four comparisons.
func Select0Of5[T any](a, b, c, d, e T, less Less[T]) T {
	return min5(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}

// Select1Of5 returns rank 1 of five values. Six comparisons.
func Select1Of5[T any](a, b, c, d, e T, less Less[T]) T {
	return second5(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}

// Select2Of5 returns the median of five values in at most six comparisons,
// the optimum for this problem.
func Select2Of5[T any](a, b, c, d, e T, less Less[T]) T {
	return median5(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}

// Select2Of5Avg returns the median of five values using a tree tuned for the
// expected count on random input: 88/15 ≈ 5.87 comparisons on average, seven
// in the worst case. Prefer Select2Of5 when the worst case matters.
func Select2Of5Avg[T any](a, b, c, d, e T, less Less[T]) T {
	return median5Avg(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}

// Select3Of5 returns rank 3 of five values. Six comparisons.
func Select3Of5[T any](a, b, c, d, e T, less Less[T]) T {
	return second5(newRanker(less).mirror(), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}

// Select4Of5 returns the maximum of five values. Four comparisons.
func Select4Of5[T any](a, b, c, d, e T, less Less[T]) T {
	return max5(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}).v
}
