package journal

import (
	"github.com/bnema/kiroku/internal/shell"
	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette shared by the journal view and the interactive shell.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Time     lipgloss.Style
	ID       lipgloss.Style
	Text     lipgloss.Style
	Link     lipgloss.Style
	Pending  lipgloss.Style
	Editing  lipgloss.Style
	Section  lipgloss.Style
	Empty    lipgloss.Style
	Warning  lipgloss.Style
	Tab      lipgloss.Style
	TabFocus lipgloss.Style
	Help     lipgloss.Style
}

func NewStyles(theme shell.Theme) Styles {
	accent, text, muted, link, warn := lipgloss.Color("39"), lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("159"), lipgloss.Color("203")
	if theme == shell.ThemeLight {
		accent, text, muted, link, warn = lipgloss.Color("25"), lipgloss.Color("236"), lipgloss.Color("244"), lipgloss.Color("31"), lipgloss.Color("160")
	}

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(text),
		Header:   lipgloss.NewStyle().Foreground(muted),
		Day:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Time:     lipgloss.NewStyle().Foreground(muted),
		ID:       lipgloss.NewStyle().Faint(true),
		Text:     lipgloss.NewStyle().Foreground(text),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(link),
		Pending:  lipgloss.NewStyle().Bold(true).Foreground(warn),
		Editing:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Section:  lipgloss.NewStyle().MarginTop(1),
		Empty:    lipgloss.NewStyle().Faint(true),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(warn),
		Tab:      lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		TabFocus: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
