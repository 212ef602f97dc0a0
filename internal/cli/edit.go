package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxplus/internal/input"
	"github.com/katalvlaran/maxplus/maxplus"
)

// =============================================================================
// EditorModel - Interactive matrix entry
// =============================================================================

// EditorModel is the bubbletea model of the grid editor.
//
// Keys: arrows/tab move, digits . - + type into the cell, backspace deletes,
// e sets the cell to ε, enter validates and accepts, esc cancels.
type EditorModel struct {
	Cells     [][]string
	Row, Col  int
	Err       string
	Matrix    *maxplus.Matrix // set when the grid was accepted
	Cancelled bool

	fresh bool // next typed character replaces the cell
}

// NewEditorModel creates an n×n grid with every cell ε.
func NewEditorModel(n int) EditorModel {
	cells := make([][]string, n)
	for i := range cells {
		cells[i] = make([]string, n)
		for j := range cells[i] {
			cells[i][j] = maxplus.EpsSymbol
		}
	}
	return EditorModel{Cells: cells, fresh: true}
}

// NewEditorModelFrom seeds the grid with the cells of m.
func NewEditorModelFrom(m *maxplus.Matrix) EditorModel {
	return EditorModel{Cells: m.Grid(maxplus.DefaultPrecision), fresh: true}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.Cells)
	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up":
		m.Row = max(m.Row-1, 0)
		m.fresh = true
	case "down":
		m.Row = min(m.Row+1, n-1)
		m.fresh = true
	case "left":
		m.Col = max(m.Col-1, 0)
		m.fresh = true
	case "right":
		m.Col = min(m.Col+1, n-1)
		m.fresh = true
	case "tab":
		pos := (m.Row*n + m.Col + 1) % (n * n)
		m.Row, m.Col = pos/n, pos%n
		m.fresh = true
	case "enter":
		mat, err := maxplus.ParseRows(m.Cells)
		if err != nil {
			m.Err = err.Error()
			return m, nil
		}
		m.Matrix, m.Err = mat, ""
		return m, tea.Quit
	case "backspace":
		cell := []rune(m.Cells[m.Row][m.Col])
		if len(cell) > 0 {
			m.Cells[m.Row][m.Col] = string(cell[:len(cell)-1])
		}
		m.fresh = false
	case "e":
		m.Cells[m.Row][m.Col] = maxplus.EpsSymbol
		m.fresh = true
	default:
		if len(key.Runes) != 1 || !strings.ContainsRune("0123456789.-+", key.Runes[0]) {
			return m, nil
		}
		cell := m.Cells[m.Row][m.Col]
		if m.fresh || cell == maxplus.EpsSymbol {
			cell = ""
		}
		m.Cells[m.Row][m.Col] = cell + string(key.Runes)
		m.fresh = false
	}

	return m, nil
}

func (m EditorModel) View() string {
	var b strings.Builder

	n := len(m.Cells)
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Matrix %d×%d", n, n)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→/tab move  e ε  ⏎ analyze  esc cancel"))
	b.WriteString("\n\n")

	headers := make([]string, n)
	for j := range headers {
		headers[j] = vertexName(j)
	}
	display := make([][]string, n)
	for i := range m.Cells {
		display[i] = make([]string, n)
		for j, cell := range m.Cells[i] {
			if cell == "" {
				cell = " "
			}
			display[i][j] = cell
		}
	}
	b.WriteString(gridTable(headers, display, func(i, j int) bool { return i == m.Row && j == m.Col }))

	if m.Err != "" {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError + " " + m.Err))
	}
	b.WriteString("\n")

	return b.String()
}

func (c *CLI) editCommand() *cobra.Command {
	var (
		src  source
		dim  int
		save string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Enter a matrix interactively and analyze it",
		Example: `  maxplus edit --dim 3
  maxplus edit -f matrix.toml --save edited.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var model EditorModel
			if src.given() {
				seed, err := src.load()
				if err != nil {
					return err
				}
				model = NewEditorModelFrom(seed)
			} else {
				if err := maxplus.ValidateDimension(dim); err != nil {
					return fmt.Errorf("--dim %d: %w", dim, err)
				}
				model = NewEditorModel(dim)
			}

			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fm, ok := final.(EditorModel)
			if !ok || fm.Cancelled || fm.Matrix == nil {
				printInfo(w, "Cancelled")
				return nil
			}
			if save != "" {
				data, err := input.Encode(fm.Matrix)
				if err != nil {
					return err
				}
				if err := os.WriteFile(save, data, 0o644); err != nil {
					printError(w, "could not save %s", save)
					return err
				}
				printFile(w, save)
			}

			return c.runAnalyze(w, fm.Matrix)
		},
	}
	src.bind(cmd)
	cmd.Flags().IntVarP(&dim, "dim", "n", 3, "dimension of an empty grid (1-7)")
	cmd.Flags().StringVar(&save, "save", "", "write the accepted matrix to a TOML file")

	return cmd
}
