package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/gauss"
	"github.com/katalvlaran/lvquad/quad"
)

func (a *app) newNodesCommand() *cobra.Command {
	var (
		method string
		lo, hi float64
	)

	cmd := &cobra.Command{
		Use:   "nodes N",
		Short: "Print the N-point Gauss–Legendre nodes and weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N %q: %w", args[0], err)
			}
			m, err := gauss.ParseMethod(method)
			if err != nil {
				return err
			}
			rule, err := gauss.Solve(n, gauss.WithMethod(m))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("a") || cmd.Flags().Changed("b") {
				if rule, err = quad.Map(rule, quad.Interval{A: lo, B: hi}); err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "i\tnode\tweight")
			for i := range rule.Nodes {
				fmt.Fprintf(tw, "%d\t%+.16f\t%.16f\n", i+1, rule.Nodes[i], rule.Weights[i])
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&method, "method", gauss.MethodNewton.String(), "node solver: newton or golub-welsch")
	cmd.Flags().Float64Var(&lo, "a", -1, "lower bound of the target interval")
	cmd.Flags().Float64Var(&hi, "b", 1, "upper bound of the target interval")

	return cmd
}
