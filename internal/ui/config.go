package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaray/aula/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(formatHeader("Configuration"))
			fmt.Printf("  file:        %s\n", config.DefaultConfigPath())
			fmt.Printf("  db_path:     %s\n", a.config.Storage.DBPath)
			fmt.Printf("  theme:       %s\n", a.config.UI.Theme)
			fmt.Printf("  time_format: %s\n", a.config.UI.TimeFormat)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.config.Save(); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.DefaultConfigPath())
			return nil
		},
	})

	return cmd
}
