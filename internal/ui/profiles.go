package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaray/aula/internal/profile"
)

func (a *App) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List profiles",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			if _, err := a.repo.EnsureDefaultProfile(ctx); err != nil {
				return err
			}
			profiles, err := a.repo.ListProfiles(ctx)
			if err != nil {
				return fmt.Errorf("listing profiles: %w", err)
			}

			fmt.Println(formatHeader(fmt.Sprintf("Profiles (%d/%d)", len(profiles), profile.MaxProfiles)))
			for _, p := range profiles {
				fmt.Printf("  #%d %s %s %s\n", p.ID, p.Emoji, p.Name, formatMuted("("+p.Theme+")"))
			}
			return nil
		},
	}
}
