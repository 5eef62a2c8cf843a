package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/ordstat/census"
	"github.com/spf13/cobra"
)

var errCensusFailed = errors.New("census failed")

type censusOpts struct {
	config   string
	samples  int
	seed     int64
	workers  int
	networks []string
	maxRange int
}

func newCensusCmd() *cobra.Command {
	var opts censusOpts

	cmd := &cobra.Command{
		Use:   "census",
		Short: "Verify every selection network against a stable sort",
		Long: `Census runs each selection network on every permutation of every
duplicate pattern of its arity and checks that it returns the very
argument a stable sort puts at its rank, within its comparison bound.
Random inputs are measured on top unless --samples is 0. The min/max
range layer is checked up to --max-range elements.

Settings may come from a TOML file given by --config; flags set on the
command line override it.`,
		Example: `  ordstat census
  ordstat census --network Select2Of5 --network Select3Of7 --samples 0
  ordstat census --config census.toml --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runCensus(cmd, cfg)
		},
	}

	d := defaultCensusConfig()
	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML file with census settings")
	f.IntVar(&opts.samples, "samples", d.Samples, "random inputs per network (0 disables sampling)")
	f.Int64Var(&opts.seed, "seed", d.Seed, "seed for random inputs")
	f.IntVarP(&opts.workers, "workers", "w", d.Workers, "networks checked concurrently")
	f.StringSliceVarP(&opts.networks, "network", "n", nil, "network to check (repeatable; default all)")
	f.IntVar(&opts.maxRange, "max-range", d.MaxRange, "longest input for the range layer check (0 skips it)")

	return cmd
}

// resolve layers explicitly set flags over the config file over defaults.
func (o censusOpts) resolve(cmd *cobra.Command) (censusConfig, error) {
	cfg := defaultCensusConfig()
	if o.config != "" {
		var err error
		if cfg, err = loadCensusConfig(o.config); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("samples") {
		cfg.Samples = o.samples
	}
	if f.Changed("seed") {
		cfg.Seed = o.seed
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("network") {
		cfg.Networks = o.networks
	}
	if f.Changed("max-range") {
		cfg.MaxRange = o.maxRange
	}
	return cfg, cfg.validate()
}

func runCensus(cmd *cobra.Command, cfg censusConfig) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	networks, err := census.Lookup(cfg.Networks...)
	if err != nil {
		return err
	}
	logger.Debug("Census settings", "networks", len(networks), "samples", cfg.Samples,
		"seed", cfg.Seed, "workers", cfg.Workers, "max_range", cfg.MaxRange)

	prog := newProgress(logger)
	res, err := census.Run(ctx, networks, cfg.options()...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d networks", len(networks)))

	w := cmd.OutOrStdout()
	printCensus(w, newStyles(w), res)

	if !res.OK() {
		return fmt.Errorf("%w: %d of %d networks, %d range cases", errCensusFailed,
			failedReports(res.Reports), len(res.Reports), len(res.Range.Failures))
	}
	return nil
}

func printCensus(w io.Writer, st styles, res census.Result) {
	fmt.Fprintln(w, st.title.Render("Selection census"))
	fmt.Fprintf(w, "%-20s %2s %2s %5s %5s %7s %7s %6s  %s\n",
		"NETWORK", "N", "K", "BOUND", "WORST", "MEAN", "SAMPLED", "CASES", "STATUS")
	for _, rep := range res.Reports {
		sampled := "-"
		if rep.Samples > 0 {
			sampled = fmt.Sprintf("%.3f", rep.SampleMean)
		}
		nw := rep.Network
		fmt.Fprintf(w, "%-20s %2d %2d %5d %5d %7.3f %7s %6d  %s\n",
			nw.Name, nw.Arity, nw.Rank, nw.Bound, rep.Worst, rep.Mean, sampled, rep.Cases, st.status(rep.OK()))
	}

	if res.Range.MaxLen > 0 {
		fmt.Fprintf(w, "range layer: %d inputs up to length %d: %s\n",
			res.Range.Cases, res.Range.MaxLen, st.status(res.Range.OK()))
	} else {
		fmt.Fprintln(w, st.dim.Render("range layer: skipped"))
	}

	for _, rep := range res.Reports {
		for _, f := range rep.Failures {
			fmt.Fprintf(w, "  %s: input %v: got %d from %d, want %d from %d (%d comparisons)\n",
				rep.Network.Name, f.Input, f.Got.Value, f.Got.Source, f.Want.Value, f.Want.Source, f.Count)
		}
	}
	for _, f := range res.Range.Failures {
		fmt.Fprintf(w, "  %s: input %v: got %v, want %v (%d comparisons, budget %d)\n",
			f.Op, f.Input, f.Got, f.Want, f.Count, f.Budget)
	}
}

func failedReports(reps []census.Report) int {
	n := 0
	for _, rep := range reps {
		if !rep.OK() {
			n++
		}
	}
	return n
}
