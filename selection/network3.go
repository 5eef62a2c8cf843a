package selection

func min3[T any](r ranker[T], a, b, c item[T]) item[T] {
	return min2(r, min2(r, a, b), c)
}

func max3[T any](r ranker[T], a, b, c item[T]) item[T] {
	return max2(r, max2(r, a, b), c)
}

// mid3Ordered returns the middle of a, b, c given a ≼ b.
// At most two comparisons.
func mid3Ordered[T any](r ranker[T], a, b, c item[T]) item[T] {
	if !r.precedes(c, b) {
		return b
	}
	return max2(r, a, c)
}

func mid3[T any](r ranker[T], a, b, c item[T]) item[T] {
	a, b = order2(r, a, b)
	return mid3Ordered(r, a, b, c)
}

// Select0Of3 returns the minimum of three values. Two comparisons.
func Select0Of3[T any](a, b, c T, less Less[T]) T {
	return min3(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}).v
}

// Select1Of3 returns the median of three values.
// Three comparisons in the worst case, two in the best.
func Select1Of3[T any](a, b, c T, less Less[T]) T {
	return mid3(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}).v
}

// Select2Of3 returns the maximum of three values. Two comparisons.
func Select2Of3[T any](a, b, c T, less Less[T]) T {
	return max3(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}).v
}
