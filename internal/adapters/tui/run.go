package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return fmt.Errorf("unexpected final tui model type %T", finalModel)
	}
	final.shutdown()

	return nil
}
