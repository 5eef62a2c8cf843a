package census

import (
	"fmt"

	"github.com/katalvlaran/ordstat/selection"
)

// Probe is one network argument. Networks compare Value only; Source is the
// argument position, so the returned Probe tells which argument came back.
type Probe struct {
	Value  int
	Source int
}

// byValue orders probes by value alone; ties are left to the network.
func byValue(a, b Probe) bool { return a.Value < b.Value }

// Network describes one fixed-arity selection entry point.
//
//   - Name      - the exported function name in package selection.
//   - Arity     - number of arguments.
//   - Rank      - the stable rank it returns.
//   - Bound     - documented worst-case comparison count.
//   - Presorted - leading arguments that must already be in stable order.
//   - Run       - calls the function with in[0..Arity-1].
type Network struct {
	Name      string
	Arity     int
	Rank      int
	Bound     int
	Presorted int
	Run       func(in []Probe, less selection.Less[Probe]) Probe
}

// Catalog returns every network of package selection, ordered by arity then
// rank. The slice is freshly allocated on each call.
func Catalog() []Network {
	return []Network{
		{Name: "Select0Of2", Arity: 2, Rank: 0, Bound: 1, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of2(in[0], in[1], l)
		}},
		{Name: "Select1Of2", Arity: 2, Rank: 1, Bound: 1, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of2(in[0], in[1], l)
		}},

		{Name: "Select0Of3", Arity: 3, Rank: 0, Bound: 2, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of3(in[0], in[1], in[2], l)
		}},
		{Name: "Select1Of3", Arity: 3, Rank: 1, Bound: 3, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of3(in[0], in[1], in[2], l)
		}},
		{Name: "Select2Of3", Arity: 3, Rank: 2, Bound: 2, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of3(in[0], in[1], in[2], l)
		}},

		{Name: "Select0Of4", Arity: 4, Rank: 0, Bound: 3, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of4(in[0], in[1], in[2], in[3], l)
		}},
		{Name: "Select1Of4", Arity: 4, Rank: 1, Bound: 4, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of4(in[0], in[1], in[2], in[3], l)
		}},
		{Name: "Select2Of4", Arity: 4, Rank: 2, Bound: 4, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of4(in[0], in[1], in[2], in[3], l)
		}},
		{Name: "Select3Of4", Arity: 4, Rank: 3, Bound: 3, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select3Of4(in[0], in[1], in[2], in[3], l)
		}},

		{Name: "Select0Of5", Arity: 5, Rank: 0, Bound: 4, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of5(in[0], in[1], in[2], in[3], in[4], l)
		}},
		{Name: "Select1Of5", Arity: 5, Rank: 1, Bound: 6, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of5(in[0], in[1], in[2], in[3], in[4], l)
		}},
		{Name: "Select2Of5", Arity: 5, Rank: 2, Bound: 6, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of5(in[0], in[1], in[2], in[3], in[4], l)
		}},
		{Name: "Select2Of5Avg", Arity: 5, Rank: 2, Bound: 7, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of5Avg(in[0], in[1], in[2], in[3], in[4], l)
		}},
		{Name: "Select3Of5", Arity: 5, Rank: 3, Bound: 6, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select3Of5(in[0], in[1], in[2], in[3], in[4], l)
		}},
		{Name: "Select4Of5", Arity: 5, Rank: 4, Bound: 4, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select4Of5(in[0], in[1], in[2], in[3], in[4], l)
		}},

		{Name: "Select0Of6", Arity: 6, Rank: 0, Bound: 5, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select1Of6", Arity: 6, Rank: 1, Bound: 7, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select2Of6", Arity: 6, Rank: 2, Bound: 8, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select2Of6Presorted", Arity: 6, Rank: 2, Bound: 6, Presorted: 3, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of6Presorted(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select3Of6", Arity: 6, Rank: 3, Bound: 8, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select3Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select4Of6", Arity: 6, Rank: 4, Bound: 7, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select4Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},
		{Name: "Select5Of6", Arity: 6, Rank: 5, Bound: 5, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select5Of6(in[0], in[1], in[2], in[3], in[4], in[5], l)
		}},

		{Name: "Select0Of7", Arity: 7, Rank: 0, Bound: 6, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select0Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select1Of7", Arity: 7, Rank: 1, Bound: 8, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select1Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select2Of7", Arity: 7, Rank: 2, Bound: 10, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select2Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select3Of7", Arity: 7, Rank: 3, Bound: 10, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select3Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select4Of7", Arity: 7, Rank: 4, Bound: 10, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select4Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select5Of7", Arity: 7, Rank: 5, Bound: 8, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select5Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
		{Name: "Select6Of7", Arity: 7, Rank: 6, Bound: 6, Run: func(in []Probe, l selection.Less[Probe]) Probe {
			return selection.Select6Of7(in[0], in[1], in[2], in[3], in[4], in[5], in[6], l)
		}},
	}
}

// Lookup returns the catalog entries with the given names, in the order
// given. With no names it returns the whole catalog.
func Lookup(names ...string) ([]Network, error) {
	all := Catalog()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Network, len(all))
	for _, nw := range all {
		byName[nw.Name] = nw
	}

	out := make([]Network, 0, len(names))
	for _, name := range names {
		nw, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
		}
		out = append(out, nw)
	}
	return out, nil
}
