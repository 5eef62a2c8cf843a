package selection_test

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/ordstat/instrument"
	"github.com/katalvlaran/ordstat/selection"
)

// ExampleMedianOf5 picks a quickselect pivot from five samples and reports
// how many comparisons it took.
func ExampleMedianOf5() {
	var c instrument.Counter
	less := instrument.Count(&c, cmp.Less[int])

	m := selection.MedianOf5(3, 6, 2, 1, 4, less)
	fmt.Printf("median=%d comparisons=%d\n", m, c.Load())
	// Output:
	// median=3 comparisons=6
}

// ExampleSelect2Of5 shows stability: among equal keys the argument that a
// stable sort puts at rank 2 comes back.
func ExampleSelect2Of5() {
	type order struct {
		price int
		id    string
	}
	byPrice := func(a, b order) bool { return a.price < b.price }

	o := selection.Select2Of5(
		order{10, "a"}, order{10, "b"}, order{10, "c"}, order{30, "d"}, order{40, "e"},
		byPrice,
	)
	fmt.Println(o.id)
	// Output:
	// c
}

// ExampleIndirect selects among pointers and mutates the chosen element.
func ExampleIndirect() {
	names := []string{"delta", "alpha", "charlie"}
	byName := selection.Indirect(func(a, b string) bool { return a < b })

	p := selection.MedianOf3(&names[0], &names[1], &names[2], byName)
	*p = strings.ToUpper(*p)
	fmt.Println(names)
	// Output:
	// [delta alpha CHARLIE]
}

// ExampleSelectRank uses the natural order of the values.
func ExampleSelectRank() {
	v, err := selection.SelectRank(2, 3, 6, 2, 1, 4)
	fmt.Println(v, err)

	_, err = selection.SelectRank(0, 1, 2, 3, 4, 5, 6, 7, 8)
	fmt.Println(err)
	// Output:
	// 3 <nil>
	// selection: arity out of range 1..7
}

// ExampleMinMaxElement finds the first minimum and the last maximum.
func ExampleMinMaxElement() {
	xs := []int{3, 6, 2, 1, 4, 5, 6, 2, 3}
	lo, hi := selection.MinMaxElement(xs)
	fmt.Printf("min xs[%d]=%d, max xs[%d]=%d\n", lo, xs[lo], hi, xs[hi])
	// Output:
	// min xs[3]=1, max xs[6]=6
}

// ExampleMinMaxSeq works on any iterator, not only slices.
func ExampleMinMaxSeq() {
	words := []string{"pear", "fig", "banana", "kiwi"}
	byLen := func(a, b string) bool { return len(a) < len(b) }

	lo, hi, ok := selection.MinMaxSeq(slices.Values(words), byLen)
	fmt.Println(lo, hi, ok)
	// Output:
	// fig banana true
}
