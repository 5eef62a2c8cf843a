package selection

// Compare applies less in its strict or reflexive form.
//
//   - strict == true  → less(a, b)      ("a < b")
//   - strict == false → !less(b, a)     ("a ≤ b")
//
// Networks choose strict per comparison from the original positions of the
// two operands: the form is strict exactly when b came first. Equal values
// therefore resolve in favour of the earlier argument, which is what a stable
// sort does.
//
// Complexity: one call to less.
func Compare[T any](strict bool, a, b T, less Less[T]) bool {
	if strict {
		return less(a, b)
	}
	return !less(b, a)
}

// precedes reports whether x comes before y in the stable order
// (value first, then original position). It calls less exactly once.
func (r ranker[T]) precedes(x, y item[T]) bool {
	if r.mirrored {
		return Compare(x.pos < y.pos, y.v, x.v, r.less)
	}
	return Compare(y.pos < x.pos, x.v, y.v, r.less)
}
