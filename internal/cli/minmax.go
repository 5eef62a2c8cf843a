package cli

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/ordstat/census"
	"github.com/katalvlaran/ordstat/instrument"
	"github.com/katalvlaran/ordstat/selection"
	"github.com/spf13/cobra"
)

func newMinMaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minmax <value>...",
		Short: "Print the first minimum and last maximum of the arguments",
		Long: `Minmax scans the arguments two at a time and prints the first minimum,
the last maximum, and the number of comparisons against the ⌈3n/2⌉-2
budget.`,
		Example: `  ordstat minmax 3 6 2 1 4 5 6 2 3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseValues(args)
			if err != nil {
				return err
			}

			var c instrument.Counter
			lo, hi := selection.MinMaxElementFunc(vals, instrument.Count(&c, cmp.Less[float64]))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "min: %s (index %d)\n", formatValue(vals[lo]), lo)
			fmt.Fprintf(w, "max: %s (index %d)\n", formatValue(vals[hi]), hi)
			fmt.Fprintf(w, "comparisons: %d (budget %d)\n", c.Load(), census.MinMaxBudget(len(vals)))
			return nil
		},
	}
}
