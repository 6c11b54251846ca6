package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/problems"
)

func (a *app) newProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the built-in problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tintegrand\tinterval\texact")
			for _, p := range problems.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.15g\n", p.Name, p.Description, p.Interval(), p.Reference())
			}

			return tw.Flush()
		},
	}
}
