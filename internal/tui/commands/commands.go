// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
)

// ProfilesLoadedMsg is sent when the profile list is loaded.
type ProfilesLoadedMsg struct {
	Profiles []*profile.Profile
}

// SessionsLoadedMsg is sent when a profile's sessions are loaded.
type SessionsLoadedMsg struct {
	Sessions []*session.Session
}

// SessionSavedMsg is sent after a session create or update.
type SessionSavedMsg struct {
	Name    string
	Created bool
}

// SessionDeletedMsg is sent after a session is deleted.
type SessionDeletedMsg struct {
	Name string
}

// ProfileSavedMsg is sent after a profile create or update.
type ProfileSavedMsg struct {
	Profile *profile.Profile
	Created bool
}

// ProfileDeletedMsg is sent after a profile is deleted.
type ProfileDeletedMsg struct {
	ID int64
}

// WeekSummaryMsg is sent when week summary data is ready.
type WeekSummaryMsg struct {
	Summary *summary.WeekSummary
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadProfiles loads all profiles.
func LoadProfiles(repo profile.Repository) tea.Cmd {
	return func() tea.Msg {
		profiles, err := repo.ListProfiles(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ProfilesLoadedMsg{Profiles: profiles}
	}
}

// LoadSessions loads the schedule for one profile.
func LoadSessions(repo session.Repository, profileID int64) tea.Cmd {
	return func() tea.Msg {
		sessions, err := repo.ListSessions(context.Background(), profileID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SessionsLoadedMsg{Sessions: sessions}
	}
}

// SaveSession creates the session when its ID is zero, updates it otherwise.
func SaveSession(repo session.Repository, s *session.Session) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if s.ID == 0 {
			if err := repo.CreateSession(ctx, s); err != nil {
				return ErrMsg{Err: err}
			}
			return SessionSavedMsg{Name: s.Name, Created: true}
		}
		if err := repo.UpdateSession(ctx, s); err != nil {
			return ErrMsg{Err: err}
		}
		return SessionSavedMsg{Name: s.Name}
	}
}

// DeleteSession removes a session.
func DeleteSession(repo session.Repository, s *session.Session) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteSession(context.Background(), s.ID); err != nil {
			return ErrMsg{Err: err}
		}
		return SessionDeletedMsg{Name: s.Name}
	}
}

// SaveProfile creates the profile when its ID is zero, updates it otherwise.
func SaveProfile(repo profile.Repository, p *profile.Profile) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if p.ID == 0 {
			if err := repo.CreateProfile(ctx, p); err != nil {
				return ErrMsg{Err: err}
			}
			return ProfileSavedMsg{Profile: p, Created: true}
		}
		if err := repo.UpdateProfile(ctx, p); err != nil {
			return ErrMsg{Err: err}
		}
		return ProfileSavedMsg{Profile: p}
	}
}

// DeleteProfile removes a profile and its sessions.
func DeleteProfile(repo profile.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteProfile(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return ProfileDeletedMsg{ID: id}
	}
}

// WeekSummary builds a week summary for one profile.
func WeekSummary(repo session.Repository, profileID int64) tea.Cmd {
	return func() tea.Msg {
		weekSummary, err := summary.BuildWeekSummary(context.Background(), repo, profileID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return WeekSummaryMsg{Summary: weekSummary}
	}
}
