package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mgaray/aula/internal/session"
)

var dayCaser = cases.Title(language.English)

func (a *App) listCmd() *cobra.Command {
	var profileID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the week's classes",
		Long: `List all classes in the weekly schedule, grouped by day.

Without --profile the default profile's schedule is shown.`,
		Example: `  aula list
  aula list --profile=2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			p, err := a.resolveProfile(ctx, profileID)
			if err != nil {
				return err
			}

			sessions, err := a.repo.ListSessions(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("listing sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Printf("No classes scheduled for %s.\n", p.Name)
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%s %s's week", p.Emoji, p.Name)))
			for _, day := range session.Days() {
				first := true
				for _, s := range sessions {
					if s.Day != day {
						continue
					}
					if first {
						fmt.Printf("\n%s\n", formatDay(dayCaser.String(string(day))))
						first = false
					}
					line := fmt.Sprintf("  #%d %s-%s  %s", s.ID, s.StartTime, s.EndTime, s.Name)
					if s.Location != "" {
						line += formatMuted(" · " + s.Location)
					}
					if s.Teacher != "" {
						line += formatMuted(" · " + s.Teacher)
					}
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&profileID, "profile", 0, "Profile ID (defaults to the first profile)")
	return cmd
}
