package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
	"github.com/mgaray/aula/internal/tui/commands"
)

// handleKeys dispatches key presses for the current mode and view.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	if m.view == ViewProfiles {
		return m.handleProfileKeys(msg)
	}
	return m.handleScheduleKeys(msg)
}

func (m *Model) handleScheduleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.gestures.Drag().IsActive() {
			m.gestures.Drag().Cancel()
			return m, m.setStatus("Move canceled")
		}

	case "h", "left":
		if m.cursorDay > 0 {
			m.cursorDay--
			m.cursorIdx = 0
		}
	case "l", "right":
		if m.cursorDay < len(session.Days())-1 {
			m.cursorDay++
			m.cursorIdx = 0
		}
	case "k", "up":
		if m.cursorIdx > 0 {
			m.cursorIdx--
		}
	case "j", "down":
		if m.cursorIdx < m.dayCount(session.DayAt(m.cursorDay))-1 {
			m.cursorIdx++
		}

	case "enter":
		if s := m.selectedSession(); s != nil {
			m.openSessionDetail(s)
		}
	case "a":
		m.openSessionForm(nil)
	case "e":
		if s := m.selectedSession(); s != nil {
			m.openSessionForm(s)
		}
	case "d":
		if s := m.selectedSession(); s != nil {
			m.confirmSession = s
			m.mode = ModeModal
			m.modalType = ModalConfirmDelete
		}

	case "s":
		m.mode = ModeModal
		m.modalType = ModalWeekSummary
		return m, commands.WeekSummary(m.repo, m.activeProfile.ID)

	case "y":
		text := summaryText(m.activeProfile, summary.SummarizeWeek(m.sessions), m.formatTime)
		if err := clipboard.WriteAll(text); err != nil {
			return m, m.setStatus("Copy failed: " + err.Error())
		}
		return m, m.setStatus("Week summary copied")

	case "p":
		m.view = ViewProfiles
		m.profileCursor = m.activeProfileIndex()
	}
	return m, nil
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "p":
		m.view = ViewSchedule

	case "h", "left", "k", "up":
		if m.profileCursor > 0 {
			m.profileCursor--
		}
	case "l", "right", "j", "down":
		if m.profileCursor < len(m.profiles)-1 {
			m.profileCursor++
		}

	case "enter":
		if p := m.profileAt(m.profileCursor); p != nil {
			m.activeProfile = p
			m.view = ViewSchedule
			m.cursorDay = 0
			m.cursorIdx = 0
			return m, m.reloadSchedule()
		}

	case "n":
		m.openProfileForm(nil)
	case "e":
		if p := m.profileAt(m.profileCursor); p != nil {
			m.openProfileForm(p)
		}
	case "d":
		if p := m.profileAt(m.profileCursor); p != nil {
			m.confirmProfile = p
			m.mode = ModeModal
			m.modalType = ModalConfirmDeleteProfile
		}
	}
	return m, nil
}

func (m *Model) dayCount(day session.Day) int {
	count := 0
	for _, s := range m.sessions {
		if s.Day == day {
			count++
		}
	}
	return count
}

func (m *Model) profileAt(idx int) *profile.Profile {
	if idx < 0 || idx >= len(m.profiles) {
		return nil
	}
	return m.profiles[idx]
}

func (m *Model) activeProfileIndex() int {
	for i, p := range m.profiles {
		if p.ID == m.activeProfile.ID {
			return i
		}
	}
	return 0
}
