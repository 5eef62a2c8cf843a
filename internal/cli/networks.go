package cli

import (
	"fmt"

	"github.com/katalvlaran/ordstat/census"
	"github.com/spf13/cobra"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the fixed-arity selection networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			st := newStyles(w)

			fmt.Fprintln(w, st.title.Render("Selection networks"))
			fmt.Fprintf(w, "%-20s %5s %4s %5s %9s\n", "NETWORK", "ARITY", "RANK", "BOUND", "PRESORTED")
			for _, nw := range census.Catalog() {
				fmt.Fprintf(w, "%-20s %5d %4d %5d %9d\n", nw.Name, nw.Arity, nw.Rank, nw.Bound, nw.Presorted)
			}
			return nil
		},
	}
}
