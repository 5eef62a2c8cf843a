// Package instrument counts how many times a relation is evaluated.
//
// Wrap a comparison function with Count, run the code under test, read the
// total with Load. The counter is atomic, so one Counter may be shared by
// wrapped relations running on several goroutines.
//
//	var c instrument.Counter
//	less := instrument.Count(&c, cmp.Less[int])
//	selection.MedianOf5(3, 6, 2, 1, 4, less)
//	fmt.Println(c.Load()) // ≤ 6
package instrument

import "sync/atomic"

// Counter accumulates relation calls. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// Load returns the number of calls recorded so far.
func (c *Counter) Load() int64 { return c.n.Load() }

// Reset clears the counter.
func (c *Counter) Reset() { c.n.Store(0) }

// Swap returns the current count and clears the counter in one step.
// Useful when measuring one call after another.
func (c *Counter) Swap() int64 { return c.n.Swap(0) }

// Add records delta calls.
func (c *Counter) Add(delta int64) { c.n.Add(delta) }

// Count returns a relation that behaves like less and records every call
// in c. It panics if c or less is nil.
func Count[T any](c *Counter, less func(a, b T) bool) func(a, b T) bool {
	if c == nil {
		panic("instrument: nil Counter")
	}
	if less == nil {
		panic("instrument: nil relation")
	}
	return func(a, b T) bool {
		c.n.Add(1)
		return less(a, b)
	}
}
