// Package journal renders journal day groups for the terminal.
package journal

import (
	"errors"
	"io"

	"github.com/bnema/kiroku/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	groups []domain.DayGroup
	opts   RenderOptions
	styles Styles
	output string
}

func newModel(groups []domain.DayGroup, opts RenderOptions) model {
	return model{
		groups: groups,
		opts:   opts,
		styles: NewStyles(opts.Theme),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = RenderDays(m.groups, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(groups []domain.DayGroup, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(groups, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
