package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for per-file section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// Function, Argument, Structure, and Field color-code the
	// identifier kinds.
	Function  lipgloss.Style
	Argument  lipgloss.Style
	Structure lipgloss.Style
	Field     lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Suggestion styles suggested rewrites.
	Suggestion lipgloss.Style

	// Pass styles PASS indicators.
	Pass lipgloss.Style

	// Fail styles FAIL indicators.
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Function:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Argument:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Structure: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Field:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// KindStyle returns the appropriate style for a given kind label.
func (s Styles) KindStyle(kind string) lipgloss.Style {
	switch kind {
	case "Function":
		return s.Function
	case "Argument":
		return s.Argument
	case "Structure":
		return s.Structure
	case "Field":
		return s.Field
	default:
		return s.Muted
	}
}
