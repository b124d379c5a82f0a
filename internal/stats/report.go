package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Report styles (package-level for consistent terminal output).
var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	statsBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	statsHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statsLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	statsLabelStyle  = lipgloss.NewStyle().Bold(true)
	statsMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// highComplexity marks function renames worth flagging in red.
const highComplexity = 10

// WriteJSON writes the stats report as formatted JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteText writes the stats report as human-readable styled text.
func WriteText(w io.Writer, report *Report) error {
	if report.Summary.TotalDiagnostics == 0 {
		fmt.Fprintln(w, statsMutedStyle.Render("No naming issues to summarize."))
		return nil
	}

	if len(report.Functions) > 0 {
		rows := make([][]string, 0, len(report.Functions))
		for _, f := range report.Functions {
			rows = append(rows, []string{
				fmt.Sprintf("%d", f.Complexity),
				f.Function,
				f.Suggested,
				fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(statsBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return statsHeaderStyle
				}
				// Color the complexity column.
				if col == 0 && row >= 0 && row < len(report.Functions) {
					if report.Functions[row].Complexity >= highComplexity {
						return statsHighStyle
					}
					return statsLowStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("COMPLEXITY", "FUNCTION", "SUGGESTED", "FILE").
			Rows(rows...)

		fmt.Fprintln(w, t)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, statsHeaderStyle.Render("--- Summary ---"))
	fmt.Fprintf(w, "%s  %d\n", statsLabelStyle.Render("Naming issues:"), report.Summary.TotalDiagnostics)
	for _, kind := range []string{"Function", "Argument", "Structure", "Field"} {
		if count := report.Summary.KindCounts[kind]; count > 0 {
			fmt.Fprintf(w, "  %-10s  %d\n", kind, count)
		}
	}
	if len(report.Functions) > 0 {
		fmt.Fprintf(w, "%s  %.1f\n", statsLabelStyle.Render("Avg complexity of flagged functions:"), report.Summary.AvgComplexity)
		fmt.Fprintf(w, "%s  %d\n", statsLabelStyle.Render("Max complexity of flagged functions:"), report.Summary.MaxComplexity)
	}

	return nil
}
