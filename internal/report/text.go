package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/declint/internal/lint"
)

// WriteText writes diagnostics as human-readable styled text to the
// writer, grouped per source file. Output uses lipgloss for color
// and formatting when the output is a TTY; degrades gracefully for
// pipes and CI.
func WriteText(w io.Writer, diags []lint.Diagnostic) error {
	s := DefaultStyles()

	if len(diags) == 0 {
		fmt.Fprintln(w, s.Pass.Render("No naming issues found."))
		return nil
	}

	files := groupByFile(diags)

	for i, file := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeFileSection(w, file.name, file.diags, s)
	}

	// Summary line.
	fmt.Fprintf(w, "\n%s\n",
		s.Header.Render(fmt.Sprintf(
			"%d file(s) checked against naming conventions, %d issue(s) found",
			len(files), len(diags))))

	return nil
}

// fileGroup pairs a file name with its diagnostics.
type fileGroup struct {
	name  string
	diags []lint.Diagnostic
}

// groupByFile buckets diagnostics per file, files sorted by name,
// diagnostics kept in emission order.
func groupByFile(diags []lint.Diagnostic) []fileGroup {
	byFile := make(map[string][]lint.Diagnostic)
	for _, d := range diags {
		byFile[d.File] = append(byFile[d.File], d)
	}

	names := make([]string, 0, len(byFile))
	for name := range byFile {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]fileGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, fileGroup{name: name, diags: byFile[name]})
	}
	return groups
}

func writeFileSection(w io.Writer, file string, diags []lint.Diagnostic, s Styles) {
	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", file)))

	// Diagnostics table using lipgloss/table.
	rows := make([][]string, 0, len(diags))
	for _, d := range diags {
		rows = append(rows, []string{
			string(d.Kind),
			d.IdentText,
			d.ExpectedCase.Describe(),
			d.SuggestedText,
		})
	}

	t := table.New().
		Width(76). // Leave 4 chars for left indent.
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			// Color the kind column based on its value.
			if col == 0 && row >= 0 && row < len(rows) {
				return s.KindStyle(rows[row][0])
			}
			if col == 3 {
				return s.Suggestion
			}
			return s.TableCell
		}).
		Headers("KIND", "IDENTIFIER", "EXPECTED", "SUGGESTION").
		Rows(rows...)

	fmt.Fprintln(w, t)

	// Positions, one per diagnostic, for editor jumping.
	for _, d := range diags {
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("    %s: %s", d.Location, d.Message())))
	}
}
