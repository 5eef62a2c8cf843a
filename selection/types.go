// Package selection - core types shared by the fixed-arity networks and the
// range layer.
package selection

// maxArity is the largest tuple size served by a hand-built network.
const maxArity = 7

// Less reports whether a is ordered strictly before b.
//
// The relation must be a strict weak ordering: irreflexive, transitive,
// and with "neither less(a,b) nor less(b,a)" transitive as well. Values for
// which neither direction holds are ties; ties are resolved by the original
// argument position, exactly as a stable sort would resolve them.
//
// A relation that violates these rules is not detected. The result is then
// some argument, but which one is unspecified.
type Less[T any] func(a, b T) bool

// Indirect lifts a relation over V to a relation over *V.
//
// Pass pointers into a network to get address identity back: the returned
// pointer is one of the arguments, never a copy.
//
//	xs := []Order{...}
//	p := selection.Select2Of5(&xs[0], &xs[1], &xs[2], &xs[3], &xs[4],
//		selection.Indirect(byPrice))
//	p.Filled = true // mutates xs[i] in place
func Indirect[V any](less Less[V]) Less[*V] {
	return func(a, b *V) bool { return less(*a, *b) }
}

// item is an operand tagged with its position in the caller's input.
// The tag only steers tie-breaking and never leaves the package except as
// an index.
type item[T any] struct {
	v   T
	pos int
}

// ranker evaluates the stable "precedes" order over tagged operands.
// A mirrored ranker orders by the converse relation with reversed tags, so
// rank k under it is rank n-1-k under the plain one.
type ranker[T any] struct {
	less     Less[T]
	mirrored bool
}

func newRanker[T any](less Less[T]) ranker[T] {
	return ranker[T]{less: less}
}

// mirror returns the ranker for the reversed order.
func (r ranker[T]) mirror() ranker[T] {
	return ranker[T]{less: r.less, mirrored: !r.mirrored}
}

// Cursor is the result of a counted range scan.
//
//   - Index     - position of the found element in the scanned slice.
//   - Remaining - distance from Index to the end of the scanned window,
//     counting the element itself. Zero means the window was empty and
//     Index equals the window start.
type Cursor struct {
	Index     int
	Remaining int
}

// Rest returns the window that follows the found element, ready to be
// passed back to a counted scan.
func (c Cursor) Rest() (first, n int) {
	if c.Remaining == 0 {
		return c.Index, 0
	}
	return c.Index + 1, c.Remaining - 1
}

// Found reports whether the scan located an element.
func (c Cursor) Found() bool { return c.Remaining > 0 }
