package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxplus/internal/render"
	"github.com/katalvlaran/maxplus/karp"
	"github.com/katalvlaran/maxplus/maxplus"
)

func (c *CLI) graphCommand() *cobra.Command {
	var (
		src    source
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the precedence digraph of a matrix",
		Long: `Graph writes the precedence digraph (one edge per finite cell) as DOT, SVG or PNG.
Strongly connected components share a fill colour; critical vertices are drawn
with a double outline.`,
		Example: `  maxplus graph -f matrix.toml --format svg -o graph.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := src.load()
			if err != nil {
				return err
			}
			opts, err := c.graphOptions(m)
			if err != nil {
				return err
			}
			dot, err := render.ToDOT(m, opts)
			if err != nil {
				return err
			}
			data, err := render.Render(cmd.Context(), dot, format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", render.FormatDOT, "output format: dot, svg or png")

	return cmd
}

// graphOptions collects components and, when the matrix has a cycle, its critical vertices.
func (c *CLI) graphOptions(m *maxplus.Matrix) (render.Options, error) {
	opts := render.Options{Precision: c.Config.Precision}

	var err error
	if opts.Components, err = maxplus.Components(m); err != nil {
		return opts, err
	}

	lambda, err := karp.Eigenvalue(m)
	switch {
	case errors.Is(err, karp.ErrNoCycle):
		c.Logger.Debug("no cycle, critical vertices skipped")
		return opts, nil
	case err != nil:
		return opts, err
	}
	opts.Critical, err = maxplus.CriticalNodes(m, lambda, c.options()...)

	return opts, err
}
