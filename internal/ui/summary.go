package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	var profileID int64

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the week summary",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			p, err := a.resolveProfile(ctx, profileID)
			if err != nil {
				return err
			}

			ws, err := summary.BuildWeekSummary(ctx, a.repo, p.ID)
			if err != nil {
				return err
			}

			sepWidth := termWidth()
			if sepWidth > 60 {
				sepWidth = 60
			}
			sep := formatMuted(strings.Repeat("─", sepWidth))

			fmt.Println(formatHeader(fmt.Sprintf("%s %s's week", p.Emoji, p.Name)))
			fmt.Println(sep)
			fmt.Printf("  classes:    %s\n", formatStats(fmt.Sprintf("%d", ws.Stats.SessionCount)))
			fmt.Printf("  class time: %s\n", formatStats(summary.FormatHours(ws.Stats.TotalMinutes)))

			if ws.Stats.SessionCount > 0 {
				fmt.Println(sep)
				for _, day := range session.Days() {
					mins := ws.Stats.MinutesPerDay[day]
					if mins == 0 {
						continue
					}
					label := dayCaser.String(string(day))
					if day == ws.Stats.BusiestDay {
						label += " *"
					}
					fmt.Printf("  %-12s %s\n", label, summary.FormatHours(mins))
				}
			}

			if len(ws.Stats.Teachers) > 0 {
				fmt.Println(sep)
				fmt.Println(formatHeader("  Teachers"))
				for _, t := range ws.Stats.Teachers {
					fmt.Printf("  %-20s %s\n", t.Teacher, summary.FormatHours(t.Minutes))
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&profileID, "profile", 0, "Profile ID (defaults to the first profile)")
	return cmd
}
