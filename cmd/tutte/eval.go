package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tutte/internal/runner"
)

func newEvalCmd(a *app) *cobra.Command {
	var x, y, domain string
	cmd := &cobra.Command{
		Use:   "eval <family> [params...] --x X --y Y",
		Short: "Evaluate the Tutte polynomial at (x, y)",
		Example: `  tutte eval cycle 5 --x 2 --y 0               # acyclic orientations
  tutte eval wheel 6 --x 1/2 --y 3 --domain rat
  tutte eval grid 3 3 --x 1.5 --y 0.5 --domain float`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eval, err := runner.Evaluator(domain, x, y)
			if err != nil {
				return err
			}
			g, err := a.runner.BuildArgs(args)
			if err != nil {
				return err
			}
			p, _, err := a.runner.Polynomial(cmd.Context(), g)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eval(p))

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&x, "x", "", "x value")
	f.StringVar(&y, "y", "", "y value")
	f.StringVar(&domain, "domain", runner.DomainInt, "number domain: int, rat or float")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
