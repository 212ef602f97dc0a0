// Package cli implements the maxplus command-line interface.
//
// Commands:
//   - analyze: eigenvalue, closures, fundamental vectors and the eigenspace of a matrix
//   - power: the max-plus power Aᵖ
//   - graph: the precedence digraph as DOT, SVG or PNG
//   - edit: an interactive grid editor that analyzes the entered matrix
//   - version: build information
//
// A matrix comes from a TOML file (--file) or from repeated --row flags.
// Settings are read from MAXPLUS_* environment variables and overridden by flags.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxplus/internal/config"
	"github.com/katalvlaran/maxplus/internal/input"
	"github.com/katalvlaran/maxplus/maxplus"
)

const appName = "maxplus"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version and the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	verbose   bool
	tolerance float64
	precision int
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Max-plus eigenvalue and eigenspace calculator",
		Long:         `maxplus computes the eigenvalue of a square max-plus matrix with Karp's algorithm, checks that the normalized matrix is definite and prints a basis of its eigenspace.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().Float64Var(&c.tolerance, "tolerance", maxplus.DefaultTolerance, "tolerance for weight comparisons (overrides MAXPLUS_TOLERANCE)")
	root.PersistentFlags().IntVar(&c.precision, "precision", 6, "significant digits per cell, -1 for shortest exact (overrides MAXPLUS_PRECISION)")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.powerCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// configure loads the environment, applies flag overrides and sets the log level.
func (c *CLI) configure(cmd *cobra.Command) error {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = c.tolerance
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = c.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Config = cfg

	return nil
}

func (c *CLI) options() []maxplus.Option {
	return []maxplus.Option{maxplus.WithTolerance(c.Config.Tolerance)}
}

// =============================================================================
// Matrix Source
// =============================================================================

// source is the --file / --row flag pair shared by the matrix commands.
type source struct {
	file string
	rows []string
}

func (s *source) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "TOML matrix file")
	cmd.Flags().StringArrayVarP(&s.rows, "row", "r", nil, `matrix row, repeatable (e.g. --row "0 1" --row "2 ε")`)
}

func (s *source) given() bool { return s.file != "" || len(s.rows) > 0 }

func (s *source) load() (*maxplus.Matrix, error) {
	switch {
	case s.file != "" && len(s.rows) > 0:
		return nil, errors.New("use either --file or --row, not both")
	case s.file != "":
		return input.LoadFile(s.file)
	case len(s.rows) > 0:
		return input.ParseRowFlags(s.rows)
	default:
		return nil, errors.New("no matrix given: use --file or --row")
	}
}
