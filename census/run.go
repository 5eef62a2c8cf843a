package census

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of Run.
type Result struct {
	Reports []Report
	Range   RangeReport
}

// OK reports whether every network and the range layer passed.
func (r Result) OK() bool {
	for _, rep := range r.Reports {
		if !rep.OK() {
			return false
		}
	}
	return r.Range.OK()
}

// Run checks networks exhaustively and, unless sampling is disabled,
// measures them on random inputs. The range layer is checked alongside when
// the max range option is positive.
//
// Work is spread over a bounded errgroup; reports come back in the order of
// networks regardless of scheduling. Each network gets its own RNG stream
// derived from the seed, so results do not depend on the worker count.
//
// Returns ErrNoNetworks if networks is empty, or ctx.Err() if ctx is done
// before all work is scheduled.
func Run(ctx context.Context, networks []Network, opts ...Option) (Result, error) {
	if len(networks) == 0 {
		return Result{}, ErrNoNetworks
	}
	o := gatherOptions(opts...)

	res := Result{Reports: make([]Report, len(networks))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	base := rngFromSeed(o.seed)
	for i, nw := range networks {
		rng := deriveRNG(base, uint64(i))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep := Check(nw)
			if o.samples > 0 {
				sample(&rep, rng, o.samples, o.valueRange)
			}
			res.Reports[i] = rep
			return nil
		})
	}

	if o.maxRange > 0 {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Range = CheckRange(o.maxRange)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
