package tui

import (
	"fmt"
	"strings"

	journalrender "github.com/bnema/kiroku/internal/adapters/render/journal"
	solvedrender "github.com/bnema/kiroku/internal/adapters/render/solved"
	"github.com/bnema/kiroku/internal/shell"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerRows = 2
	footerRows = 2
)

func (m Model) View() string {
	styles := journalrender.NewStyles(m.state.Theme)

	sections := []string{m.tabBar(styles), ""}
	switch m.state.Tab {
	case shell.TabJournal:
		sections = append(sections, m.journalView(styles))
	case shell.TabSolved:
		sections = append(sections, m.solvedView(styles))
	case shell.TabSparks:
		sections = append(sections, RenderFrame(m.frame, m.width, m.canvasRows()))
	}

	if m.mode != inputNone {
		sections = append(sections, m.input.View())
	}
	if m.err != "" {
		sections = append(sections, styles.Warning.Render(m.err))
	}
	sections = append(sections, styles.Help.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tabBar(styles journalrender.Styles) string {
	tabs := make([]string, 0, len(shell.Tabs)+1)
	for i, tab := range shell.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == m.state.Tab {
			tabs = append(tabs, styles.TabFocus.Render(label))
			continue
		}
		tabs = append(tabs, styles.Tab.Render(label))
	}
	tabs = append(tabs, styles.Header.Render("theme: "+m.state.Theme.String()))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) journalView(styles journalrender.Styles) string {
	cursor, _ := m.selectedID()
	return journalrender.RenderDays(shell.DayGroups(m.state), journalrender.RenderOptions{
		Theme:         m.state.Theme,
		Query:         m.state.Journal.DayQuery,
		PendingDelete: m.state.Journal.PendingDelete,
		Editing:       m.state.Journal.Editing,
		Cursor:        cursor,
	}, styles)
}

func (m Model) solvedView(styles journalrender.Styles) string {
	solved := m.state.Solved
	if solved.Handle == "" {
		return styles.Empty.Render("Press h to enter a handle.")
	}

	header := fmt.Sprintf("handle: %s", solved.Handle)
	if solved.Search != "" {
		header += fmt.Sprintf("  search: %q", solved.Search)
	}
	lines := []string{styles.Title.Render("Solved problems"), styles.Header.Render(header)}

	if solved.Loading {
		lines = append(lines, fmt.Sprintf("%s Fetching solved problems...", m.spinner.View()))
		return strings.Join(lines, "\n")
	}

	filtered := shell.FilteredProblems(m.state)
	lines = append(lines, styles.Header.Render(solvedrender.Counts(solved.Problems)), "")
	lines = append(lines, strings.TrimRight(solvedrender.Table(shell.VisibleProblems(m.state), len(filtered)), "\n"))
	if shell.CanLoadMore(m.state) {
		lines = append(lines, styles.Help.Render("m: load more"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) help() string {
	if m.mode != inputNone {
		return "enter: confirm  esc: cancel"
	}

	common := "tab: switch  t: theme  q: quit"
	switch m.state.Tab {
	case shell.TabJournal:
		if m.state.Journal.PendingDelete != "" {
			return "y: delete  n: keep"
		}
		return "a: add  e: edit  d: delete  /: filter days  j/k: move  " + common
	case shell.TabSolved:
		return "h: handle  /: search  r: refetch  m: more  " + common
	default:
		return "move the mouse  " + common
	}
}
