package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxplus/maxplus"
)

func (c *CLI) powerCommand() *cobra.Command {
	var (
		src source
		p   int
	)

	cmd := &cobra.Command{
		Use:     "power",
		Short:   "Compute the max-plus power Aᵖ",
		Example: `  maxplus power -p 3 --row "ε 2 ε" --row "ε ε 4" --row "3 ε ε"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := src.load()
			if err != nil {
				return err
			}
			res, err := maxplus.Power(m, p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("A^%d", p))
			fmt.Fprintln(w, matrixTable(res, c.Config.Precision, nil))
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().IntVarP(&p, "power", "p", 2, "exponent, at least 1")

	return cmd
}
