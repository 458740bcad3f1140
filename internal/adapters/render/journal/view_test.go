package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/shell"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroups() []domain.DayGroup {
	monday := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	return domain.GroupByDay([]domain.JournalEntry{
		{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", Text: "solved https://codeforces.com/contest/1/problem/A today", CreatedAt: monday},
		{ID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", Text: "rest day", CreatedAt: monday.Add(26 * time.Hour)},
	})
}

func TestRenderDays(t *testing.T) {
	output, err := Render(sampleGroups(), RenderOptions{ShowIDs: true})

	require.NoError(t, err)
	assert.Contains(t, output, "Journal")
	assert.Contains(t, output, "days: 2  entries: 2")
	assert.Contains(t, output, "Tuesday, March 3, 2026")
	assert.Contains(t, output, "Monday, March 2, 2026")
	assert.Contains(t, output, "09:05")
	assert.Contains(t, output, "#0 0f8fad5b")
	assert.Contains(t, output, "https://codeforces.com/contest/1/problem/A")
	assert.Less(t, strings.Index(output, "Tuesday"), strings.Index(output, "Monday"))
}

func TestRenderDaysEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{Query: "friday", Theme: shell.ThemeLight})

	require.NoError(t, err)
	assert.Contains(t, output, "No journal entries.")
	assert.Contains(t, output, `filter: "friday"`)
}

func TestRenderDaysHidesIDsByDefault(t *testing.T) {
	output := RenderDays(sampleGroups(), RenderOptions{}, NewStyles(shell.ThemeDark))

	assert.NotContains(t, output, "0f8fad5b")
}

func TestRenderDaysMarksPendingDeleteAndEditing(t *testing.T) {
	groups := sampleGroups()
	output := RenderDays(groups, RenderOptions{
		PendingDelete: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Editing:       "0f8fad5b-d9cb-469f-a165-70867728950e",
	}, NewStyles(shell.ThemeDark))

	assert.Contains(t, output, "delete this entry? (y/n)")
	assert.Contains(t, output, "editing...")
}

func TestRenderTextKeepsTextAroundLinks(t *testing.T) {
	output := RenderText("see http://a.b/c and more", NewStyles(shell.ThemeDark))

	assert.Contains(t, output, "see ")
	assert.Contains(t, output, "http://a.b/c")
	assert.Contains(t, output, " and more")
}

func withColorProfile(t *testing.T, profile termenv.Profile) {
	t.Helper()
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(profile)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })
}

func TestRenderTextEmitsHyperlinkForEachURL(t *testing.T) {
	withColorProfile(t, termenv.ANSI256)

	output := RenderText("see https://a.b/c now and http://x.y", NewStyles(shell.ThemeDark))

	assert.Contains(t, output, "\x1b]8;;https://a.b/c\x1b\\")
	assert.Contains(t, output, "\x1b]8;;http://x.y\x1b\\")
	assert.Equal(t, 2, strings.Count(output, "\x1b]8;;\x1b\\"))
}

func TestRenderTextRestylesTextAfterLink(t *testing.T) {
	withColorProfile(t, termenv.ANSI256)
	styles := NewStyles(shell.ThemeDark)

	output := RenderText("see https://a.b/c and more", styles)

	closing := "\x1b]8;;\x1b\\"
	tail := output[strings.LastIndex(output, closing)+len(closing):]
	assert.Equal(t, styles.Text.Render(" and more"), tail)
	assert.True(t, strings.HasPrefix(tail, "\x1b["), "text after a link keeps its own style")
}

func TestRenderTextPlainProfileKeepsBareURL(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	output := RenderText("see https://a.b/c now", NewStyles(shell.ThemeDark))

	assert.Equal(t, "see https://a.b/c now", output)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "12345678", ShortID("123456789"))
}
