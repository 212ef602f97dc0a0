package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/maxplus/maxplus"
	"github.com/katalvlaran/maxplus/spectrum"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - headers
	colorDim    = lipgloss.Color("240") // Dim gray - ε and muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleEpsCell  = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	styleMarkCell = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// =============================================================================
// Grids
// =============================================================================

func vertexName(i int) string { return fmt.Sprintf("x%d", i+1) }

// gridTable renders cells with vertex names on both axes. mark(i, j) selects the
// highlighted cells; ε cells are dimmed.
func gridTable(headers []string, cells [][]string, mark func(i, j int) bool) string {
	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = append([]string{vertexName(i)}, row...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, headers...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleHeader
			}
			if row >= len(cells) || col-1 >= len(cells[row]) {
				return styleCell
			}
			if mark != nil && mark(row, col-1) {
				return styleMarkCell
			}
			if cells[row][col-1] == maxplus.EpsSymbol {
				return styleEpsCell
			}
			return styleCell
		})

	return t.Render()
}

// matrixTable renders m; cells on the listed diagonal positions are highlighted.
func matrixTable(m *maxplus.Matrix, prec int, diag []int) string {
	headers := make([]string, m.Dim())
	for j := range headers {
		headers[j] = vertexName(j)
	}

	return gridTable(headers, m.Grid(prec), func(i, j int) bool {
		return i == j && slices.Contains(diag, i)
	})
}

// vectorTable renders labeled vectors as columns.
func vectorTable(vs []maxplus.LabeledVector, prec int) string {
	if len(vs) == 0 {
		return ""
	}
	n := len(vs[0].Vector)
	headers := make([]string, len(vs))
	cells := make([][]string, n)
	for i := range cells {
		cells[i] = make([]string, len(vs))
	}
	for k, v := range vs {
		headers[k] = v.Label
		for i := 0; i < n && i < len(v.Vector); i++ {
			cells[i][k] = v.Vector[i].Format(prec)
		}
	}

	return gridTable(headers, cells, nil)
}

// =============================================================================
// Report
// =============================================================================

// printReport prints every populated stage of rep in pipeline order.
func printReport(w io.Writer, rep *spectrum.Report, prec int) {
	printTitle(w, "Matrix A")
	fmt.Fprintln(w, matrixTable(rep.Input, prec, nil))
	printKeyValue(w, "eigenvalue λ", StyleNumber.Render(maxplus.FromFloat(rep.Eigenvalue).Format(prec)))
	printKeyValue(w, "components", formatComponents(rep.Components))
	printKeyValue(w, "irreducible", fmt.Sprint(rep.Irreducible))

	if rep.Definite != nil {
		printTitle(w, "Definite matrix D = A − λ")
		fmt.Fprintln(w, matrixTable(rep.Definite, prec, nil))
	}
	if rep.FloydWarshall != nil {
		printTitle(w, "F-W matrix")
		fmt.Fprintln(w, matrixTable(rep.FloydWarshall, prec, nil))
	}
	if rep.StrongClosure != nil {
		printTitle(w, "Strongly transitive closure Γ(D)")
		fmt.Fprintln(w, matrixTable(rep.StrongClosure, prec, nil))
	}
	if rep.WeakClosure != nil {
		printTitle(w, "Weakly transitive closure Δ(D)")
		fmt.Fprintln(w, matrixTable(rep.WeakClosure, prec, rep.CriticalNodes))
		printKeyValue(w, "critical", formatVertices(rep.CriticalNodes))
	}
	if len(rep.Fundamental) > 0 {
		printTitle(w, "Fundamental vectors")
		fmt.Fprintln(w, vectorTable(rep.Fundamental, prec))
		labels := make([]string, len(rep.Basis))
		for i, b := range rep.Basis {
			labels[i] = b.Label
		}
		printKeyValue(w, "basis", strings.Join(labels, ", "))
	}
	if rep.Eigenspace != "" {
		fmt.Fprintln(w)
		printSuccess(w, "%s", StyleNumber.Render(rep.Eigenspace))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("session %s · tolerance %g · %s",
		rep.ID, rep.Tolerance, rep.Stats.Duration)))
}

func formatVertices(vs []int) string {
	if len(vs) == 0 {
		return "none"
	}
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = vertexName(v)
	}
	return strings.Join(names, " ")
}

func formatComponents(sccs [][]int) string {
	parts := make([]string, len(sccs))
	for i, c := range sccs {
		parts[i] = "{" + formatVertices(c) + "}"
	}
	return strings.Join(parts, " ")
}
