package selection

import "cmp"

// SelectRank returns the value a stable sort of vals would put at index k,
// using the natural order of T.
//
// Returns ErrArity if len(vals) is outside 1..7, ErrRank if k is outside
// 0..len(vals)-1.
//
// Example:
//
//	v, _ := selection.SelectRank(2, 3, 6, 2, 1, 4) // v == 3
func SelectRank[T cmp.Ordered](k int, vals ...T) (T, error) {
	return SelectRankFunc(k, cmp.Less[T], vals...)
}

// SelectRankFunc is SelectRank with a caller-supplied relation.
func SelectRankFunc[T any](k int, less Less[T], vals ...T) (T, error) {
	it, err := selectItem(vals, k, less)
	return it.v, err
}

// SelectIndexFunc returns the index i such that s[i] is the element a
// stable sort of s would put at index k. It does not modify s.
//
// Returns ErrArity if len(s) is outside 1..7, ErrRank if k is outside
// 0..len(s)-1. On error the index is -1.
func SelectIndexFunc[S ~[]E, E any](s S, k int, less Less[E]) (int, error) {
	it, err := selectItem[E](s, k, less)
	if err != nil {
		return -1, err
	}
	return it.pos, nil
}

// SelectIndex is SelectIndexFunc using the natural order of E.
func SelectIndex[S ~[]E, E cmp.Ordered](s S, k int) (int, error) {
	return SelectIndexFunc(s, k, cmp.Less[E])
}

// Median returns the median of vals, the lower one for an even count.
func Median[T cmp.Ordered](vals ...T) (T, error) {
	return MedianFunc(cmp.Less[T], vals...)
}

// MedianFunc is Median with a caller-supplied relation.
func MedianFunc[T any](less Less[T], vals ...T) (T, error) {
	if len(vals) == 0 {
		var zero T
		return zero, ErrArity
	}
	return SelectRankFunc((len(vals)-1)/2, less, vals...)
}

func selectItem[T any](vals []T, k int, less Less[T]) (item[T], error) {
	n := len(vals)
	if n < 1 || n > maxArity {
		return item[T]{pos: -1}, ErrArity
	}
	if k < 0 || k >= n {
		return item[T]{pos: -1}, ErrRank
	}

	var buf [maxArity]item[T]
	for i, v := range vals {
		buf[i] = item[T]{v, i}
	}
	return pick(newRanker(less), k, buf[:n]), nil
}

// pick routes rank k of len(x) tagged operands to its network.
// Ranks above the middle use the mirrored network of rank n-1-k.
func pick[T any](r ranker[T], k int, x []item[T]) item[T] {
	n := len(x)
	if k > (n-1)/2 && k != n-1 {
		r, k = r.mirror(), n-1-k
	}

	switch n {
	case 1:
		return x[0]
	case 2:
		if k == 0 {
			return min2(r, x[0], x[1])
		}
		return max2(r, x[0], x[1])
	case 3:
		switch k {
		case 0:
			return min3(r, x[0], x[1], x[2])
		case 1:
			return mid3(r, x[0], x[1], x[2])
		}
		return max3(r, x[0], x[1], x[2])
	case 4:
		switch k {
		case 0:
			return min4(r, x[0], x[1], x[2], x[3])
		case 1:
			return second4(r, x[0], x[1], x[2], x[3])
		}
		return max4(r, x[0], x[1], x[2], x[3])
	case 5:
		switch k {
		case 0:
			return min5(r, x[0], x[1], x[2], x[3], x[4])
		case 1:
			return second5(r, x[0], x[1], x[2], x[3], x[4])
		case 2:
			return median5(r, x[0], x[1], x[2], x[3], x[4])
		}
		return max5(r, x[0], x[1], x[2], x[3], x[4])
	case 6:
		switch k {
		case 0:
			return min6(r, x[0], x[1], x[2], x[3], x[4], x[5])
		case 1:
			return second6(r, x[0], x[1], x[2], x[3], x[4], x[5])
		case 2:
			return third6(r, x[0], x[1], x[2], x[3], x[4], x[5])
		}
		return max6(r, x[0], x[1], x[2], x[3], x[4], x[5])
	}

	switch k {
	case 0:
		return min7(r, x[0], x[1], x[2], x[3], x[4], x[5], x[6])
	case 1:
		return second7(r, x[0], x[1], x[2], x[3], x[4], x[5], x[6])
	case 2:
		return third7(r, x[0], x[1], x[2], x[3], x[4], x[5], x[6])
	case 3:
		return median7(r, x[0], x[1], x[2], x[3], x[4], x[5], x[6])
	}
	return max7(r, x[0], x[1], x[2], x[3], x[4], x[5], x[6])
}
