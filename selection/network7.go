package selection

func min7[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	return min2(r, min6(r, a, b, c, d, e, f), g)
}

func max7[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	return max2(r, max6(r, a, b, c, d, e, f), g)
}

// second7 returns rank 1 of seven. Eight comparisons.
func second7[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	e, f = order2(r, e, f)
	if r.precedes(c, a) {
		a, b, c, d = c, d, a, b
	}
	if r.precedes(g, e) {
		if r.precedes(a, g) {
			return min3(r, b, c, g)
		}
		return min2(r, a, e)
	}
	if r.precedes(a, e) {
		return min3(r, b, c, e)
	}
	return min3(r, a, f, g)
}

// third7 returns rank 2 of seven. Ten comparisons.
//
// The pair whose maximum is larger gets g attached to its minimum; the
// larger maximum then has three elements below it and drops out, leaving
// rank 2 of six over three known pairs.
func third7[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	e, f = order2(r, e, f)
	if r.precedes(d, b) {
		a, g = order2(r, a, g)
		return third6Pairs(r, a, g, c, d, e, f)
	}
	c, g = order2(r, c, g)
	return third6Pairs(r, a, b, c, g, e, f)
}

// median7Wedge returns rank 3 of seven given a ≼ b, g ≼ b, a ≼ c ≼ d and
// e ≼ f. Five comparisons.
func median7Wedge[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	if r.precedes(c, e) {
		// a is below b, c, d, e and f: out.
		if r.precedes(b, d) {
			return median5ChainPair(r, c, e, f, g, b)
		}
		return second4Ordered(r, e, f, d, g)
	}
	if r.precedes(c, f) {
		if r.precedes(c, g) {
			return min3(r, d, f, g)
		}
		return mid3Ordered(r, e, c, b)
	}
	if r.precedes(f, g) {
		return mid3Ordered(r, a, c, g)
	}
	return third4Pairs(r, a, b, e, f)
}

// median7 returns rank 3 of seven in at most ten comparisons.
func median7[T any](r ranker[T], a, b, c, d, e, f, g item[T]) item[T] {
	a, b = order2(r, a, b)
	c, d = order2(r, c, d)
	e, f = order2(r, e, f)
	if r.precedes(c, a) {
		a, b, c, d = c, d, a, b
	}
	if !r.precedes(g, b) {
		// b, c, d and g lie above a, so a is rank 2 at most.
		return third6Pairs(r, b, g, c, d, e, f)
	}
	return median7Wedge(r, a, b, c, d, e, f, g)
}

// Select0Of7 returns the minimum of seven values. Six comparisons.
func Select0Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return min7(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select1Of7 returns rank 1 of seven values. Eight comparisons.
func Select1Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return second7(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select2Of7 returns rank 2 of seven values. Ten comparisons.
func Select2Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return third7(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select3Of7 returns the median of seven values in at most ten comparisons.
func Select3Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return median7(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select4Of7 returns rank 4 of seven values. Ten comparisons.
func Select4Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return third7(newRanker(less).mirror(), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select5Of7 returns rank 5 of seven values. Eight comparisons.
func Select5Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return second7(newRanker(less).mirror(), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}

// Select6Of7 returns the maximum of seven values. Six comparisons.
func Select6Of7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return max7(newRanker(less), item[T]{a, 0}, item[T]{b, 1}, item[T]{c, 2}, item[T]{d, 3}, item[T]{e, 4}, item[T]{f, 5}, item[T]{g, 6}).v
}
