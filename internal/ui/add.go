package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaray/aula/internal/session"
)

func (a *App) addCmd() *cobra.Command {
	var (
		profileID int64
		day       string
		start     string
		end       string
		location  string
		teacher   string
		colorTag  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a class to the schedule",
		Long: `Add a class to the weekly schedule.

Day, times and color may be omitted: the new class then follows the
most recently added one, starting where it ends, with a color not used
by the last few additions.`,
		Example: `  aula add "Algebra" --day=monday --start=09:00 --end=10:30
  aula add "Study hall"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := a.resolveProfile(ctx, profileID)
			if err != nil {
				return err
			}

			sessions, err := a.repo.ListSessions(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("listing sessions: %w", err)
			}
			defaults := session.ProposeDefaults(sessions, nil)
			if day == "" {
				day = string(defaults.Day)
			}
			if start == "" {
				start = defaults.StartTime
			}
			if end == "" {
				end = defaults.EndTime
			}
			if colorTag == "" {
				colorTag = string(defaults.Color)
			}

			s, err := session.New(p.ID, args[0], day, start, end, location, teacher, colorTag)
			if err != nil {
				return err
			}
			if err := a.repo.CreateSession(ctx, s); err != nil {
				return fmt.Errorf("creating session: %w", err)
			}

			fmt.Printf("Added #%d %q %s %s-%s [%s]\n", s.ID, s.Name, s.Day, s.StartTime, s.EndTime, s.Color)
			return nil
		},
	}

	cmd.Flags().Int64Var(&profileID, "profile", 0, "Profile ID (defaults to the first profile)")
	cmd.Flags().StringVar(&day, "day", "", "Weekday (monday-friday)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Room or location")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher name")
	cmd.Flags().StringVar(&colorTag, "color", "", "Color tag (red, blue, green, yellow, purple, orange)")
	return cmd
}
