package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/tui/commands"
)

// Update handles all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case commands.ProfilesLoadedMsg:
		m.profiles = msg.Profiles
		found := false
		for _, p := range msg.Profiles {
			if p.ID == m.activeProfile.ID {
				m.activeProfile = p
				found = true
			}
		}
		if !found && len(msg.Profiles) > 0 {
			// Active profile was deleted; fall back to the first one.
			m.activeProfile = msg.Profiles[0]
			return m, m.reloadSchedule()
		}
		return m, nil

	case commands.SessionsLoadedMsg:
		m.sessions = msg.Sessions
		if count := m.dayCount(session.DayAt(m.cursorDay)); m.cursorIdx >= count {
			m.cursorIdx = 0
		}
		return m, nil

	case commands.SessionSavedMsg:
		m.closeModal()
		verb := "updated"
		if msg.Created {
			verb = "added"
		}
		return m, tea.Batch(m.reloadSchedule(), m.setStatus(fmt.Sprintf("%q %s", msg.Name, verb)))

	case commands.SessionDeletedMsg:
		m.closeModal()
		return m, tea.Batch(m.reloadSchedule(), m.setStatus(fmt.Sprintf("%q deleted", msg.Name)))

	case commands.ProfileSavedMsg:
		m.closeModal()
		verb := "updated"
		if msg.Created {
			verb = "created"
		}
		return m, tea.Batch(commands.LoadProfiles(m.repo), m.setStatus(fmt.Sprintf("Profile %q %s", msg.Profile.Name, verb)))

	case commands.ProfileDeletedMsg:
		m.closeModal()
		return m, tea.Batch(commands.LoadProfiles(m.repo), m.setStatus("Profile deleted"))

	case commands.WeekSummaryMsg:
		m.weekSummary = msg.Summary
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		return m, m.setStatus("Error: " + msg.Err.Error())

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	// Everything else, cursor blinks mostly, goes to the focused form input.
	if m.mode == ModeModal {
		return m, m.updateFormInputs(msg)
	}
	return m, nil
}
