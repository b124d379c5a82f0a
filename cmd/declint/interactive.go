package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/declint/internal/lint"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	kindFunctionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	kindArgumentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	kindStructureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	kindFieldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// checkModel is the Bubble Tea model for browsing check diagnostics.
type checkModel struct {
	diags    []lint.Diagnostic
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newCheckModel(diags []lint.Diagnostic) checkModel {
	h := help.New()
	content := renderCheckContent(diags)
	return checkModel{
		diags:   diags,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderCheckContent(diags []lint.Diagnostic) string {
	var sb strings.Builder

	byFile := make(map[string][]lint.Diagnostic)
	for _, d := range diags {
		byFile[d.File] = append(byFile[d.File], d)
	}
	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Declint Check: %d file(s), %d diagnostic(s)",
			len(files), len(diags))))
	sb.WriteString("\n\n")

	if len(diags) == 0 {
		sb.WriteString(statusStyle.Render("No naming issues found."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, file := range files {
		fileDiags := byFile[file]

		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("=== %s ===", file)))
		sb.WriteString("\n")

		rows := make([][]string, 0, len(fileDiags))
		for _, d := range fileDiags {
			rows = append(rows, []string{
				string(d.Kind),
				d.IdentText,
				d.SuggestedText,
				d.Location,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				if col == 0 && row >= 0 && row < len(rows) {
					switch lint.IdentKind(rows[row][0]) {
					case lint.KindFunction:
						return kindFunctionStyle
					case lint.KindArgument:
						return kindArgumentStyle
					case lint.KindStructure:
						return kindStructureStyle
					case lint.KindField:
						return kindFieldStyle
					}
				}
				return lipgloss.NewStyle()
			}).
			Headers("KIND", "IDENTIFIER", "SUGGESTED", "LOCATION").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func (m checkModel) Init() tea.Cmd {
	return nil
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m checkModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveCheck launches the Bubble Tea TUI for browsing check
// diagnostics.
func runInteractiveCheck(diags []lint.Diagnostic) error {
	model := newCheckModel(diags)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
