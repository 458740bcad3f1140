package cmd

import (
	"github.com/bnema/kiroku/internal/adapters/tui"
	"github.com/bnema/kiroku/internal/shell"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	var handle string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.New(cmd.Context(), app.journal, app.solved, tui.Options{
				StartTab: shell.TabJournal,
				Handle:   handle,
				Logger:   app.logger,
			})
			return tui.Run(cmd.Context(), model)
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "Preset the handle used on the Solved tab")

	return cmd
}

func newSparksCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sparks",
		Short: "Full-screen particle field that follows the mouse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.New(cmd.Context(), app.journal, app.solved, tui.Options{
				StartTab: shell.TabSparks,
				Logger:   app.logger,
			})
			return tui.Run(cmd.Context(), model)
		},
	}
}
