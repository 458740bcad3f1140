package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	journalrender "github.com/bnema/kiroku/internal/adapters/render/journal"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/spf13/cobra"
)

const noIndex = -1

func newJournalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j"},
		Short:   "Write and browse dated journal entries",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalEditCmd(app),
		newJournalDeleteCmd(app),
		newJournalClearCmd(app),
		newJournalListCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append an entry stamped with the current time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, added, err := app.journal.Append(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !added {
				return nil
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s %s)\n",
				journalrender.ShortID(entry.ID), entry.CalendarDay(), entry.DisplayTime())
			return err
		},
	}
}

func newJournalEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace the text of an entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.journal.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			changed, err := app.journal.Edit(cmd.Context(), entry.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if !changed {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "unchanged %s: new text is empty\n", journalrender.ShortID(entry.ID))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "edited %s\n", journalrender.ShortID(entry.ID))
			return err
		},
	}
}

func newJournalDeleteCmd(app *app) *cobra.Command {
	var index int
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an entry after confirmation",
		Args: func(cmd *cobra.Command, args []string) error {
			hasIndex := cmd.Flags().Changed("index")
			if hasIndex && len(args) > 0 {
				return errors.New("pass either an entry id or --index, not both")
			}
			if !hasIndex && len(args) != 1 {
				return errors.New("delete requires an entry id or --index")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var entry domain.JournalEntry
			var err error
			if len(args) == 1 {
				entry, err = app.journal.Resolve(cmd.Context(), args[0])
			} else {
				entry, err = app.journal.EntryAt(cmd.Context(), index)
			}
			if err != nil {
				return err
			}

			if !assumeYes {
				confirmed, err := confirm(cmd, fmt.Sprintf("Delete entry %s from %s %q?",
					journalrender.ShortID(entry.ID), entry.CalendarDay(), preview(entry.Text)))
				if err != nil {
					return err
				}
				if !confirmed {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "kept")
					return err
				}
			}

			if err := app.journal.Delete(cmd.Context(), entry.ID); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", journalrender.ShortID(entry.ID))
			return err
		},
	}

	cmd.Flags().IntVar(&index, "index", noIndex, "Delete by position in the stored sequence (0-based)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newJournalClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry (also resets an unreadable store)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.journal.ClearAll(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "journal cleared")
			return err
		},
	}
}

type journalEntryOutput struct {
	Index     int       `json:"index"`
	ID        string    `json:"id"`
	Time      string    `json:"time"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type journalDayOutput struct {
	Day     string               `json:"day"`
	Entries []journalEntryOutput `json:"entries"`
}

func newJournalListCmd(app *app) *cobra.Command {
	var filter string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show entries grouped by day, newest day first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := app.journal.Days(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toDayOutputs(groups))
			}

			rendered, err := app.journalRenderer(groups, journalrender.RenderOptions{Query: filter, ShowIDs: true})
			if err != nil {
				return fmt.Errorf("render journal: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only show days whose label contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func toDayOutputs(groups []domain.DayGroup) []journalDayOutput {
	days := make([]journalDayOutput, 0, len(groups))
	for _, group := range groups {
		day := journalDayOutput{Day: group.Day, Entries: make([]journalEntryOutput, 0, len(group.Entries))}
		for _, item := range group.Entries {
			day.Entries = append(day.Entries, journalEntryOutput{
				Index:     item.Index,
				ID:        string(item.Entry.ID),
				Time:      item.Entry.DisplayTime(),
				Text:      item.Entry.Text,
				CreatedAt: item.Entry.CreatedAt,
			})
		}
		days = append(days, day)
	}
	return days
}

// confirm asks a y/N question on stdout and reads the answer from stdin.
// Anything but y or yes, including EOF, declines.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func preview(text string) string {
	const limit = 40
	line, _, _ := strings.Cut(text, "\n")
	runes := []rune(line)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return line
}
