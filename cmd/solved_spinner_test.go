package cmd

import (
	"context"
	"io"
	"testing"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvedProgressSummarizesPerPlatform(t *testing.T) {
	m := newSolvedProgressModel("tourist", nil)
	assert.Contains(t, m.View(), "Fetching solved problems for tourist")

	next, cmd := m.Update(solvedFetchedMsg{problems: []domain.SolvedProblem{
		{Platform: domain.PlatformCodeforces, ContestID: "1850", Index: "A"},
		{Platform: domain.PlatformCodeforces, ContestID: "1850", Index: "B"},
		{Platform: domain.PlatformAtCoder, ContestID: "abc300", ProblemID: "abc300_a"},
	}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	done, ok := next.(solvedProgressModel)
	require.True(t, ok)
	assert.Len(t, done.problems, 3)
	assert.Contains(t, done.View(), "tourist  Codeforces: 2  AtCoder: 1")

	_, cmd = done.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestFetchSolvedWithProgressReturnsProblems(t *testing.T) {
	want := []domain.SolvedProblem{{Platform: domain.PlatformAtCoder, ContestID: "abc300", ProblemID: "abc300_a"}}

	got, err := fetchSolvedWithProgress(context.Background(), io.Discard, "tourist",
		func(_ context.Context, handle string) []domain.SolvedProblem {
			assert.Equal(t, "tourist", handle)
			return want
		})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
