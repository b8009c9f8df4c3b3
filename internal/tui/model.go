package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/config"
	"github.com/mgaray/aula/internal/grid"
	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
	"github.com/mgaray/aula/internal/tui/commands"
	"github.com/mgaray/aula/internal/tui/theme"
)

// Storage is the persistence surface the TUI needs.
type Storage interface {
	session.Repository
	profile.Repository
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// View identifies the main screen being shown.
type View int

const (
	ViewSchedule View = iota
	ViewProfiles
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalSessionForm
	ModalSessionDetail
	ModalConfirmDelete
	ModalProfileForm
	ModalConfirmDeleteProfile
	ModalWeekSummary
)

// statusDuration is how long a status message stays visible.
const statusDuration = 3 * time.Second

// clickGuardDuration suppresses the click that trails a resize release.
const clickGuardDuration = 300 * time.Millisecond

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   Storage
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Gesture state. The coordinator owns the drag and resize
	// controllers; dragMoved distinguishes a click from a real drag.
	gestures        *grid.Gestures
	dragMoved       bool
	clickGuardUntil time.Time

	// State
	view View
	mode Mode

	profiles      []*profile.Profile
	activeProfile *profile.Profile
	profileCursor int

	sessions  []*session.Session
	cursorDay int // 0=Monday
	cursorIdx int // index within the day's sessions

	// Modal state
	modalType      ModalType
	sessionForm    sessionForm
	profileForm    profileForm
	detailSession  *session.Session
	confirmSession *session.Session
	confirmProfile *profile.Profile
	weekSummary    *summary.WeekSummary

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string

	// Error state
	err error
}

// New creates a new TUI model showing the given profile's schedule.
func New(repo Storage, cfg *config.Config, active *profile.Profile) *Model {
	themeName := cfg.UI.Theme
	t, err := theme.Load(themeName)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	m := &Model{
		repo:          repo,
		config:        cfg,
		theme:         t,
		styles:        NewStyles(t),
		activeProfile: active,
		gestures:      grid.NewGestures(nil),
	}

	// Gesture commits persist synchronously through the repository; the
	// update loop reloads the schedule right after.
	m.gestures.SetMoveFunc(func(id int64, day session.Day, start, end string) error {
		return repo.MoveSession(context.Background(), id, day, start, end)
	})

	return m
}

// Init loads the profile list and the active schedule.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadProfiles(m.repo),
		commands.LoadSessions(m.repo, m.activeProfile.ID),
		textinput.Blink,
	)
}

// formatTime renders a block time label per the configured time format.
func (m *Model) formatTime(t string) string {
	if m.config.UI.TimeFormat == config.TimeFormat12h {
		return session.FormatTime12h(t)
	}
	return session.FormatTimeCompact(t)
}

// daySessions returns the sessions to render for one day, with any
// active gesture preview substituted in.
func (m *Model) daySessions(day session.Day) []*session.Session {
	return m.gestures.DaySessions(m.sessions, day)
}

// selectedSession returns the session under the keyboard cursor.
func (m *Model) selectedSession() *session.Session {
	day := session.DayAt(m.cursorDay)
	var inDay []*session.Session
	for _, s := range m.sessions {
		if s.Day == day {
			inDay = append(inDay, s)
		}
	}
	if len(inDay) == 0 {
		return nil
	}
	idx := m.cursorIdx
	if idx < 0 {
		idx = 0
	}
	if idx >= len(inDay) {
		idx = len(inDay) - 1
	}
	return inDay[idx]
}

// sessionByID finds a session in the loaded schedule.
func (m *Model) sessionByID(id int64) *session.Session {
	for _, s := range m.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// setStatus shows a transient status message.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// reloadSchedule re-reads the active profile's sessions from storage.
func (m *Model) reloadSchedule() tea.Cmd {
	return commands.LoadSessions(m.repo, m.activeProfile.ID)
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.detailSession = nil
	m.confirmSession = nil
	m.confirmProfile = nil
	m.weekSummary = nil
}
