// Package ui provides the aula command line interface.
package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaray/aula/internal/config"
	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Storage is the persistence surface the CLI needs.
type Storage interface {
	tui.Storage
	EnsureDefaultProfile(ctx context.Context) (*profile.Profile, error)
}

// App holds the CLI application state.
type App struct {
	repo    Storage
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given storage and config.
func NewApp(repo Storage, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "aula",
		Short: "A weekly class schedule for your terminal",
		Long: `Aula keeps a weekly class schedule per profile.

Running it without a subcommand opens the interactive schedule grid:
drag blocks to reschedule them, drag their edges to stretch them.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			active, err := a.repo.EnsureDefaultProfile(context.Background())
			if err != nil {
				return fmt.Errorf("preparing profile: %w", err)
			}
			return tui.Run(a.repo, a.config, active)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.profilesCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.summaryCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("aula %s (commit: %s)\n", Version, Commit)
		},
	}
}

// resolveProfile returns the profile for a --profile flag value, or the
// default profile when the flag is zero.
func (a *App) resolveProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	if id == 0 {
		return a.repo.EnsureDefaultProfile(ctx)
	}
	p, err := a.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %d", profile.ErrProfileNotFound, id)
	}
	return p, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the underlying storage.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
