package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxplus/maxplus"
	"github.com/katalvlaran/maxplus/spectrum"
)

func (c *CLI) analyzeCommand() *cobra.Command {
	var src source

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the eigenvalue and eigenspace of a matrix",
		Long: `Analyze runs the full pipeline on a matrix: Karp eigenvalue, definite matrix,
F-W matrix, strongly and weakly transitive closures, fundamental vectors, an
independent basis and the eigenspace V(A).`,
		Example: `  maxplus analyze --row "0 1" --row "2 0"
  maxplus analyze -f matrix.toml --precision 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := src.load()
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.OutOrStdout(), m)
		},
	}
	src.bind(cmd)

	return cmd
}

// runAnalyze analyzes m and prints the report. A non-definite matrix still
// prints the stages computed before the rejection.
func (c *CLI) runAnalyze(w io.Writer, m *maxplus.Matrix) error {
	prog := newProgress(c.Logger)
	an := spectrum.NewAnalyzer(c.Logger, c.options()...)

	rep, err := an.Analyze(m)
	var nd *spectrum.NotDefiniteError
	switch {
	case errors.As(err, &nd):
		printReport(w, rep, c.Config.Precision)
		printWarning(w, "no eigenspace: %s", nd.Reason)
		return err
	case err != nil:
		return err
	}

	printReport(w, rep, c.Config.Precision)
	if !rep.Irreducible {
		printWarning(w, "reducible matrix: %d strongly connected components", len(rep.Components))
	}
	prog.done("Analyzed %d×%d matrix", m.Dim(), m.Dim())

	return nil
}
