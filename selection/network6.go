package selection

func min6[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	return min2(r, min5(r, a, b, c, d, e), f)
}

func max6[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	return max2(r, max5(r, a, b, c, d, e), f)
}

// second6 returns rank 1 of six. Seven comparisons.
func second6[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	e, f = order2(r, e, f)
	if r.precedes(c, a) {
		a, b, c, d = c, d, a, b
	}
	if r.precedes(e, a) {
		return min2(r, a, f)
	}
	return min3(r, b, c, e)
}

// third6Fork returns rank 2 of six given a ≼ b, a ≼ c ≼ d and e ≼ f.
func third6Fork[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	if r.precedes(c, b) {
		if r.precedes(e, c) {
			return mid3Ordered(r, a, c, f)
		}
		return min3(r, b, d, e)
	}
	// a ≼ b ≼ c ≼ d: d is out.
	return median5ChainPair(r, a, b, c, e, f)
}

// third6Pairs returns rank 2 of six given a ≼ b, c ≼ d and e ≼ f.
// Five comparisons.
func third6Pairs[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	if r.precedes(c, a) {
		return third6Fork(r, c, d, a, b, e, f)
	}
	return third6Fork(r, a, b, c, d, e, f)
}

func third6[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	e, f = order2(r, e, f)
	return third6Pairs(r, a, b, c, d, e, f)
}

// third6Presorted returns rank 2 of six given a ≼ b ≼ c. Six comparisons.
func third6Presorted[T any](r ranker[T], a, b, c, d, e, f item[T]) item[T] {
	d, e = order2(r, d, e)
	if r.precedes(d, a) {
		if r.precedes(f, d) {
			return min2(r, a, e)
		}
		return second4Ordered(r, a, b, e, f)
	}
	if r.precedes(d, b) {
		if r.precedes(f, d) {
			return d
		}
		return min3(r, b, e, f)
	}
	if r.precedes(f, b) {
		return b
	}
	return min3(r, c, d, f)
}

// Select0Of6 returns the minimum of six values. Five comparisons.
func Select0Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return min6(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select1Of6 returns rank 1 of six values. Seven comparisons.
func Select1Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return second6(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select2Of6 returns the lower median of six values in at most eight
// comparisons, the optimum for unordered input.
func Select2Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return third6(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select2Of6Presorted returns the lower median of six values when a, b, c
// are already in stable order (a ≼ b ≼ c, ties in argument order).
// At most six comparisons. The result is unspecified if the precondition
// does not hold.
func Select2Of6Presorted[T any](a, b, c, d, e, f T, less Less[T]) T {
	return third6Presorted(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select3Of6 returns the upper median of six values. Eight comparisons.
func Select3Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return third6(newRanker(less).mirror(), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select4Of6 returns rank 4 of six values. Seven comparisons.
func Select4Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return second6(newRanker(less).mirror(), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}

// Select5Of6 returns the maximum of six values. Five comparisons.
func Select5Of6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return max6(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}).v
}
