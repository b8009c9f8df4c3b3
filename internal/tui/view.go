package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mgaray/aula/internal/grid"
	"github.com/mgaray/aula/internal/session"
)

var dayCaser = cases.Title(language.English)

// dayTitle renders a day tag as a display name ("monday" -> "Monday").
func dayTitle(d session.Day) string {
	return dayCaser.String(string(d))
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var base string
	if m.view == ViewProfiles {
		base = m.renderProfiles()
	} else {
		base = m.renderSchedule()
	}

	if m.mode == ModeModal {
		return compositeOverlay(base, m.renderModal(), m.width, m.height, m.styles.ModalBgColor)
	}
	return base
}

func (m *Model) renderSchedule() string {
	mt := m.metrics()

	lines := make([]string, 0, gridTop+len(session.Days())*(dayRowLines+1)+2)

	title := fmt.Sprintf(" %s %s · aula", m.activeProfile.Emoji, m.activeProfile.Name)
	lines = append(lines,
		m.styles.TitleStyle.Render(padCell(title, m.width)),
		m.styles.EmptyCellStyle.Render(strings.Repeat(" ", m.width)),
		m.renderRuler(mt),
		m.styles.SeparatorStyle.Render(strings.Repeat("─", m.width)),
	)

	for i, day := range session.Days() {
		lines = append(lines, m.renderDayRow(day, i, mt)...)
		lines = append(lines, m.styles.SeparatorStyle.Render(strings.Repeat("─", m.width)))
	}

	if m.statusMsg != "" {
		lines = append(lines, m.styles.StatusStyle.Render(padCell(" "+m.statusMsg, m.width)))
	} else {
		lines = append(lines, m.styles.HelpStyle.Render(padCell(
			" a add · enter detail · drag to move · drag edges to resize · s summary · y copy · p profiles · q quit",
			m.width)))
	}

	return strings.Join(lines, "\n")
}

// renderRuler draws hour marks aligned with the lane area.
func (m *Model) renderRuler(mt gridMetrics) string {
	cells := make([]rune, mt.laneWidth)
	for i := range cells {
		cells[i] = ' '
	}
	for h := grid.DayStartMinutes / 60; h < grid.DayEndMinutes/60; h++ {
		col := (h*60 - grid.DayStartMinutes) * mt.laneWidth / grid.WindowMinutes
		for j, r := range []rune(hourLabel(h)) {
			if col+j < mt.laneWidth {
				cells[col+j] = r
			}
		}
	}
	return m.styles.RulerStyle.Render(strings.Repeat(" ", mt.laneLeft) + string(cells))
}

func hourLabel(h int) string {
	switch {
	case h == 12:
		return "12p"
	case h > 12:
		return fmt.Sprintf("%dp", h-12)
	default:
		return fmt.Sprintf("%da", h)
	}
}

// renderDayRow paints one day's sessions into dayRowLines terminal
// lines. Overlapping sessions occupy distinct lane bands computed by
// the grid layout, so each cell belongs to at most one session.
func (m *Model) renderDayRow(day session.Day, dayIdx int, mt gridMetrics) []string {
	inDay := m.daySessions(day)
	placements := grid.ComputeLanes(inDay)

	// Paint block ownership per cell.
	owners := make([][]int, dayRowLines)
	for line := range owners {
		owners[line] = make([]int, mt.laneWidth)
		for c := range owners[line] {
			owners[line][c] = -1
		}
	}
	bandTops := make([]int, len(inDay))
	for i, s := range inDay {
		p := placements[s.ID]
		top, bottom := laneBand(p.Lane, p.Lanes)
		bandTops[i] = top
		start, end := blockCells(grid.PositionOf(s.StartTime, s.EndTime), mt.laneWidth)
		for line := top; line < bottom; line++ {
			for c := start; c < end; c++ {
				owners[line][c] = i
			}
		}
	}

	labelStyle := m.styles.DayLabelStyle
	if dayIdx == m.cursorDay && m.view == ViewSchedule {
		labelStyle = m.styles.DayLabelActiveStyle
	}

	lines := make([]string, 0, dayRowLines)
	for line := 0; line < dayRowLines; line++ {
		label := strings.Repeat(" ", mt.laneLeft)
		if line == 0 {
			label = fmt.Sprintf(" %-*s", mt.laneLeft-1, dayTitle(day))
		}

		var parts []string
		parts = append(parts, labelStyle.Render(label))

		col := 0
		for col < mt.laneWidth {
			owner := owners[line][col]
			runStart := col
			for col < mt.laneWidth && owners[line][col] == owner {
				col++
			}
			width := col - runStart
			if owner < 0 {
				parts = append(parts, m.styles.EmptyCellStyle.Render(strings.Repeat(" ", width)))
				continue
			}
			s := inDay[owner]
			text := m.blockLineText(s, line-bandTops[owner])
			parts = append(parts, m.blockStyleFor(s).Render(padCell(text, width)))
		}

		lines = append(lines, strings.Join(parts, ""))
	}
	return lines
}

// blockLineText returns the label for one line within a block's band:
// the name first, then the time range, blank below.
func (m *Model) blockLineText(s *session.Session, lineInBand int) string {
	switch lineInBand {
	case 0:
		return " " + s.Name
	case 1:
		text := " " + m.formatTime(s.StartTime) + "-" + m.formatTime(s.EndTime)
		if s.Location != "" {
			text += " · " + s.Location
		}
		return text
	default:
		return ""
	}
}

func (m *Model) blockStyleFor(s *session.Session) lipgloss.Style {
	if m.gestures.Drag().IsActive() && s.ID == m.gestures.Drag().SessionID() {
		return m.styles.BlockPreviewStyle
	}
	if m.gestures.Resize().IsActive() && s.ID == m.gestures.Resize().SessionID() {
		return m.styles.BlockPreviewStyle
	}
	if sel := m.selectedSession(); sel != nil && sel.ID == s.ID && m.mode == ModeNormal {
		return m.styles.BlockSelectedStyle
	}
	return m.styles.BlockStyle(s.Color)
}

func (m *Model) renderProfiles() string {
	var tiles []string
	for i, p := range m.profiles {
		style := m.styles.ProfileTileStyle.BorderForeground(ProfileThemeColor(p.Theme))
		if i == m.profileCursor {
			style = m.styles.ProfileTileSelectedStyle.BorderForeground(ProfileThemeColor(p.Theme))
		}
		tiles = append(tiles, style.Render(p.Emoji+" "+p.Name))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.TitleStyle.Render("Who is studying?"),
		"",
		body,
		"",
		m.styles.HelpStyle.Render("enter select · n new · e edit · d delete · esc back"),
	)

	screen := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	if m.statusMsg != "" {
		return screen + "\n" + m.styles.StatusStyle.Render(padCell(" "+m.statusMsg, m.width))
	}
	return screen
}

// padCell truncates or pads styled text to an exact cell width.
func padCell(text string, width int) string {
	text = ansi.Cut(text, 0, width)
	if w := lipgloss.Width(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}
