package selection

// Median dispatchers fix the rank at (n-1)/2: the median for odd n and the
// lower median for even n.

// MedianOf3 returns the median of three values. At most three comparisons.
func MedianOf3[T any](a, b, c T, less Less[T]) T {
	return Select1Of3(a, b, c, less)
}

// MedianOf4 returns the lower median (rank 1) of four values.
func MedianOf4[T any](a, b, c, d T, less Less[T]) T {
	return Select1Of4(a, b, c, d, less)
}

// MedianOf5 returns the median of five values. At most six comparisons.
func MedianOf5[T any](a, b, c, d, e T, less Less[T]) T {
	return Select2Of5(a, b, c, d, e, less)
}

// MedianOf5Avg is MedianOf5 tuned for the average case. See Select2Of5Avg.
func MedianOf5Avg[T any](a, b, c, d, e T, less Less[T]) T {
	return Select2Of5Avg(a, b, c, d, e, less)
}

// MedianOf6 returns the lower median (rank 2) of six values.
func MedianOf6[T any](a, b, c, d, e, f T, less Less[T]) T {
	return Select2Of6(a, b, c, d, e, f, less)
}

// MedianOf6Presorted returns the lower median of six values whose first three
// are already in stable order. At most six comparisons.
func MedianOf6Presorted[T any](a, b, c, d, e, f T, less Less[T]) T {
	return Select2Of6Presorted(a, b, c, d, e, f, less)
}

// MedianOf7 returns the median of seven values. At most ten comparisons.
func MedianOf7[T any](a, b, c, d, e, f, g T, less Less[T]) T {
	return Select3Of7(a, b, c, d, e, f, g, less)
}
