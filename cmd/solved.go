package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	solvedrender "github.com/bnema/kiroku/internal/adapters/render/solved"
	"github.com/bnema/kiroku/internal/adapters/schedule"
	"github.com/bnema/kiroku/internal/application"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/spf13/cobra"
)

func newSolvedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solved",
		Short: "List problems a Codeforces/AtCoder handle has solved",
	}

	cmd.AddCommand(
		newSolvedFetchCmd(app),
		newSolvedWatchCmd(app),
	)

	return cmd
}

type solvedOutput struct {
	Handle   string                 `json:"handle"`
	Search   string                 `json:"search,omitempty"`
	Total    int                    `json:"total"`
	Showing  int                    `json:"showing"`
	Problems []domain.SolvedProblem `json:"problems"`
}

func newSolvedFetchCmd(app *app) *cobra.Command {
	var search string
	var pages int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch <handle>",
		Short: "Fetch, merge and page through solved problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.TrimSpace(args[0])
			if handle == "" {
				return errors.New("handle is empty")
			}
			if pages < 0 {
				return fmt.Errorf("--pages must be >= 0, got %d", pages)
			}

			var problems []domain.SolvedProblem
			if asJSON {
				problems = app.solved.FetchForHandle(cmd.Context(), handle)
			} else {
				var err error
				problems, err = fetchSolvedWithProgress(cmd.Context(), cmd.ErrOrStderr(), handle, app.solved.FetchForHandle)
				if err != nil {
					return err
				}
			}

			filtered := application.Search(problems, search)
			page := application.Paginate(filtered, visibleForPages(pages, len(filtered)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(solvedOutput{
					Handle:   handle,
					Search:   search,
					Total:    len(filtered),
					Showing:  len(page),
					Problems: page,
				})
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), solvedrender.Table(page, len(filtered)))
			return err
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text to match against problem names")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to show (0 shows everything)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// visibleForPages walks the load-more sequence pages times; zero means all.
func visibleForPages(pages int, total int) int {
	if pages == 0 {
		return total
	}

	visible := application.PageSize
	for i := 1; i < pages; i++ {
		visible = application.NextVisible(visible, total)
	}
	return visible
}

func newSolvedWatchCmd(app *app) *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "watch <handle>",
		Short: "Re-fetch solved problems on a schedule until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.TrimSpace(args[0])
			if handle == "" {
				return errors.New("handle is empty")
			}
			if spec == "" {
				spec = app.cfg.Watch.Schedule
			}
			if err := schedule.Validate(spec); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return app.runner.Run(ctx, spec, func(ctx context.Context) {
				problems := app.solved.FetchForHandle(ctx, handle)
				if ctx.Err() != nil {
					return
				}
				app.logger.Info().Str("handle", handle).Int("solved", len(problems)).Msg("watch fetch complete")
				_, _ = fmt.Fprintf(out, "%s  %s  %s\n", app.now().Format("2006-01-02 15:04"), handle, solvedrender.Counts(problems))
			})
		},
	}

	cmd.Flags().StringVar(&spec, "schedule", "", "Cron spec or @every duration (default from watch.schedule)")

	return cmd
}
