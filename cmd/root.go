package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func Execute() error {
	return runRoot(newRootCmd())
}

// runRoot executes root and always releases the wired app afterwards. cobra
// skips post-run hooks when a command fails, so the release happens here.
func runRoot(root *cobra.Command, closeApp func() error) error {
	runErr := root.Execute()
	return errors.Join(runErr, closeApp())
}

func newRootCmd() (*cobra.Command, func() error) {
	rootCmd := &cobra.Command{
		Use:           "kiroku",
		Short:         "kiroku: a practice journal and solved-problem tracker",
		Long:          "kiroku keeps a dated journal of your competitive-programming practice, lists the problems a Codeforces/AtCoder handle has solved, and draws a pointer-following particle field in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() error { return nil }
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newJournalCmd(app),
		newSolvedCmd(app),
		newSparksCmd(app),
		newUICmd(app),
	)

	return rootCmd, app.close
}
