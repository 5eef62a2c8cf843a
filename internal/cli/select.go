package cli

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/katalvlaran/ordstat/census"
	"github.com/katalvlaran/ordstat/instrument"
	"github.com/katalvlaran/ordstat/selection"
	"github.com/spf13/cobra"
)

func newSelectCmd() *cobra.Command {
	var rank int

	cmd := &cobra.Command{
		Use:   "select [flags] <value>...",
		Short: "Print the stable rank-k value of up to seven numbers",
		Long: `Select prints the value a stable sort of the arguments would place at
index --rank (0-based), which argument it came from, and how many
comparisons the selection network spent. Without --rank the lower
median is selected.`,
		Example: `  ordstat select --rank 2 3 6 2 1 4
  ordstat select 0 0 1 1 1 1 1`,
		Args: cobra.RangeArgs(1, 7),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseValues(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rank") {
				rank = (len(vals) - 1) / 2
			}

			var c instrument.Counter
			idx, err := selection.SelectIndexFunc(vals, rank, instrument.Count(&c, cmp.Less[float64]))
			if err != nil {
				return fmt.Errorf("select rank %d of %d: %w", rank, len(vals), err)
			}
			loggerFromContext(cmd.Context()).Debug("selected", "rank", rank, "arity", len(vals), "index", idx)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rank %d of %d: %s (argument %d)\n", rank, len(vals), formatValue(vals[idx]), idx)
			fmt.Fprintf(w, "comparisons: %d (bound %d)\n", c.Load(), networkBound(len(vals), rank))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rank, "rank", "k", 0, "0-based rank to select (default: lower median)")
	return cmd
}

// networkBound returns the worst-case budget of the network serving rank k
// of n values; a single value needs none.
func networkBound(n, k int) int {
	for _, nw := range census.Catalog() {
		if nw.Arity == n && nw.Rank == k {
			return nw.Bound
		}
	}
	return 0
}

func parseValues(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
