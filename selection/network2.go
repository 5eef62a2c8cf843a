package selection

// order2 returns a and b in stable order. One comparison.
func order2[T any](r ranker[T], a, b item[T]) (item[T], item[T]) {
	if r.precedes(b, a) {
		return b, a
	}
	return a, b
}

// min2 returns the first of a and b in stable order. One comparison.
func min2[T any](r ranker[T], a, b item[T]) item[T] {
	if r.precedes(b, a) {
		return b
	}
	return a
}

// max2 returns the last of a and b in stable order. One comparison.
func max2[T any](r ranker[T], a, b item[T]) item[T] {
	if r.precedes(b, a) {
		return a
	}
	return b
}

// Select0Of2 returns the smaller of a and b; a wins a tie.
// One comparison.
func Select0Of2[T any](a, b T, less Less[T]) T {
	return min2(newRanker(less), item[T]{a, 0}, item[T]{b, 1}).v
}

// Select1Of2 returns the larger of a and b; b wins a tie.
// One comparison.
func Select1Of2[T any](a, b T, less Less[T]) T {
	return max2(newRanker(less), item[T]{a, 0}, item[T]{b, 1}).v
}
