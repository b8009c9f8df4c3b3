// Package tui provides the terminal user interface for aula.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Title and chrome
	TitleStyle    lipgloss.Style
	RulerStyle    lipgloss.Style
	SeparatorStyle lipgloss.Style

	// Day label column
	DayLabelStyle       lipgloss.Style
	DayLabelActiveStyle lipgloss.Style

	// Schedule blocks, one style per color tag
	blockStyles map[session.Color]lipgloss.Style

	// Gesture preview and keyboard selection
	BlockPreviewStyle  lipgloss.Style
	BlockSelectedStyle lipgloss.Style

	// Empty lane background
	EmptyCellStyle lipgloss.Style

	// Status message and help line
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Profile picker
	ProfileTileStyle         lipgloss.Style
	ProfileTileSelectedStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalTitleStyle        lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalValueStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// Option toggles inside forms (day, color, emoji pickers)
	OptionActiveStyle   lipgloss.Style
	OptionInactiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorWarning = theme.Color(t.Warning)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.RulerStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgHighlight).
		Background(s.colorBg)

	s.DayLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DayLabelActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Blocks paint the class color as background with the base background
	// as text, which stays readable on both dark and light themes.
	s.blockStyles = make(map[session.Color]lipgloss.Style, 6)
	for _, c := range session.Colors() {
		s.blockStyles[c] = lipgloss.NewStyle().
			Foreground(s.colorBg).
			Background(theme.Color(t.ClassColor(c)))
	}

	s.BlockPreviewStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorWarning).
		Bold(true)

	s.BlockSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ProfileTileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Foreground(s.colorFg).
		Padding(0, 2)

	s.ProfileTileSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Foreground(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	modal := t.Modal()
	s.ModalBgColor = theme.Color(modal.BaseBg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(modal.ModalBorder)).
		Background(s.ModalBgColor).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(modal.ModalBorder)).
		Background(s.ModalBgColor)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextMuted)).
		Background(s.ModalBgColor)

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextPrimary)).
		Background(s.ModalBgColor)

	s.ModalInputStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextPrimary)).
		Background(s.ModalBgColor)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextPrimary)).
		Background(theme.Color(modal.Highlight))

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextMuted)).
		Background(s.ModalBgColor).
		Padding(0, 1)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(modal.ModalBorder)).
		Bold(true).
		Padding(0, 1)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextMuted)).
		Background(s.ModalBgColor).
		Italic(true)

	s.OptionActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(modal.ModalBorder)).
		Bold(true).
		Padding(0, 1)

	s.OptionInactiveStyle = lipgloss.NewStyle().
		Foreground(theme.Color(modal.TextMuted)).
		Background(s.ModalBgColor).
		Padding(0, 1)

	return s
}

// BlockStyle returns the style for a session block with the given color tag.
func (s *Styles) BlockStyle(c session.Color) lipgloss.Style {
	if style, ok := s.blockStyles[c]; ok {
		return style
	}
	return s.EmptyCellStyle
}

// profileThemeColors tints profile tiles by the profile's theme tag.
var profileThemeColors = map[string]string{
	"classic": "#89b4fa",
	"ocean":   "#74c7ec",
	"sunset":  "#fab387",
	"forest":  "#a6e3a1",
	"berry":   "#f38ba8",
	"dark":    "#585b70",
	"gold":    "#f9e2af",
	"fire":    "#eb6f92",
}

// ProfileThemeColor returns the tile accent for a profile theme tag.
func ProfileThemeColor(tag string) lipgloss.Color {
	if hex, ok := profileThemeColors[tag]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(profileThemeColors["classic"])
}
