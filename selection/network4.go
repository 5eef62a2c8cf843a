package selection

func min4[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	return min2(r, min3(r, a, b, c), d)
}

func max4[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	return max2(r, max3(r, a, b, c), d)
}

// second4Pairs returns rank 1 of four given a ≼ b and c ≼ d.
// Two comparisons.
func second4Pairs[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	if r.precedes(c, a) {
		return min2(r, a, d)
	}
	return min2(r, b, c)
}

// third4Pairs returns rank 2 of four given a ≼ b and c ≼ d.
// Two comparisons.
func third4Pairs[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	if r.precedes(d, b) {
		return max2(r, a, d)
	}
	return max2(r, b, c)
}

// second4Ordered returns rank 1 of four given a ≼ b. Three comparisons.
func second4Ordered[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	c, d = order2(r, c, d)
	return second4Pairs(r, a, b, c, d)
}

func second4[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	a, b = order2(r, a, b)
	return second4Ordered(r, a, b, c, d)
}

func third4[T any](r ranker[T], a, b, c, d item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	return third4Pairs(r, a, b, c, d)
}

// Select0Of4 returns the minimum of four values. Three comparisons.
func Select0Of4[T any](a, b, c, d T, less Less[T]) T {
	return min4(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}).v
}

// Select1Of4 returns the lower median of four values. Four comparisons.
func Select1Of4[T any](a, b, c, d T, less Less[T]) T {
	return second4(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}).v
}

// Select2Of4 returns the upper median of four values. Four comparisons.
func Select2Of4[T any](a, b, c, d T, less Less[T]) T {
	return third4(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}).v
}

// Select3Of4 returns the maximum of four values. Three comparisons.
func Select3Of4[T any](a, b, c, d T, less Less[T]) T {
	return max4(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}).v
}
