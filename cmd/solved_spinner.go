package cmd

import (
	"context"
	"fmt"
	"io"

	solvedrender "github.com/bnema/kiroku/internal/adapters/render/solved"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type solvedFetchedMsg struct {
	problems []domain.SolvedProblem
}

// solvedProgressModel spins while both judges are queried, then leaves a
// per-platform summary line behind.
type solvedProgressModel struct {
	spinner  spinner.Model
	handle   string
	fetch    tea.Cmd
	problems []domain.SolvedProblem
	fetched  bool
}

var solvedSummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func newSolvedProgressModel(handle string, fetch tea.Cmd) solvedProgressModel {
	return solvedProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		handle: handle,
		fetch:  fetch,
	}
}

func (m solvedProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m solvedProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.fetched {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case solvedFetchedMsg:
		m.problems = msg.problems
		m.fetched = true
		return m, tea.Quit
	}

	return m, nil
}

func (m solvedProgressModel) View() string {
	if m.fetched {
		return solvedSummaryStyle.Render(fmt.Sprintf("%s  %s", m.handle, solvedrender.Counts(m.problems))) + "\n"
	}

	return fmt.Sprintf("%s Fetching solved problems for %s from %s and %s...",
		m.spinner.View(), m.handle, domain.PlatformCodeforces, domain.PlatformAtCoder)
}

// fetchSolvedWithProgress runs fetch behind a spinner on output and returns
// the merged problems.
func fetchSolvedWithProgress(ctx context.Context, output io.Writer, handle string, fetch func(context.Context, string) []domain.SolvedProblem) ([]domain.SolvedProblem, error) {
	fetchCmd := func() tea.Msg {
		return solvedFetchedMsg{problems: fetch(ctx, handle)}
	}

	p := tea.NewProgram(
		newSolvedProgressModel(handle, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(solvedProgressModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if !result.fetched {
		return nil, fmt.Errorf("fetch solved problems for %s: interrupted", handle)
	}

	return result.problems, nil
}
