package journal

import (
	"fmt"
	"strings"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/shell"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const shortIDLength = 8

type RenderOptions struct {
	Theme         shell.Theme
	Query         string
	ShowIDs       bool
	PendingDelete domain.EntryID
	Editing       domain.EntryID
	Cursor        domain.EntryID
}

// RenderDays draws the grouped journal. It is also used directly by the
// interactive shell.
func RenderDays(groups []domain.DayGroup, opts RenderOptions, s Styles) string {
	total := 0
	for _, group := range groups {
		total += len(group.Entries)
	}

	header := fmt.Sprintf("days: %d  entries: %d", len(groups), total)
	if q := strings.TrimSpace(opts.Query); q != "" {
		header += fmt.Sprintf("  filter: %q", q)
	}
	lines := []string{s.Title.Render("Journal"), s.Header.Render(header)}

	if len(groups) == 0 {
		lines = append(lines, s.Empty.Render("No journal entries."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, group := range groups {
		lines = append(lines, s.Section.Render(renderGroup(group, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGroup(group domain.DayGroup, opts RenderOptions, s Styles) string {
	parts := []string{s.Day.Render(group.Day)}
	for _, item := range group.Entries {
		parts = append(parts, renderEntry(item, opts, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEntry(item domain.IndexedEntry, opts RenderOptions, s Styles) string {
	marker := "  "
	if item.Entry.ID == opts.Cursor && opts.Cursor != "" {
		marker = "> "
	}

	prefix := []string{marker, s.Time.Render(item.Entry.DisplayTime())}
	if opts.ShowIDs {
		prefix = append(prefix, " ", s.ID.Render(fmt.Sprintf("#%d %s", item.Index, ShortID(item.Entry.ID))))
	}
	prefix = append(prefix, "  ")

	body := RenderText(item.Entry.Text, s)
	switch item.Entry.ID {
	case opts.PendingDelete:
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.Pending.Render("delete this entry? (y/n)"))
	case opts.Editing:
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.Editing.Render("editing..."))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(prefix, ""), body)
}

// RenderText styles each segment on its own. On a styled terminal every URL
// is wrapped in an OSC 8 hyperlink pointing at that exact URL; plain output
// keeps the bare URL.
func RenderText(text string, s Styles) string {
	hyperlinks := lipgloss.ColorProfile() != termenv.Ascii

	var b strings.Builder
	for _, segment := range domain.SplitLinks(text) {
		switch {
		case segment.Link && hyperlinks:
			b.WriteString(termenv.Hyperlink(segment.Text, s.Link.Render(segment.Text)))
		case segment.Link:
			b.WriteString(s.Link.Render(segment.Text))
		default:
			b.WriteString(s.Text.Render(segment.Text))
		}
	}
	return b.String()
}

func ShortID(id domain.EntryID) string {
	if len(id) <= shortIDLength {
		return string(id)
	}
	return string(id[:shortIDLength])
}
