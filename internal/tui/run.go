package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/config"
	"github.com/mgaray/aula/internal/profile"
)

// Run starts the TUI on the given profile's schedule. Cell motion
// reporting is required for the drag and resize gestures.
func Run(repo Storage, cfg *config.Config, active *profile.Profile) error {
	p := tea.NewProgram(
		New(repo, cfg, active),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
