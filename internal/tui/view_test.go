package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
)

func init() {
	// Pin the color profile so rendering is stable regardless of the
	// terminal the tests run in.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestViewSchedule(t *testing.T) {
	m := testModel(t)
	// Two hours is twelve cells here, wide enough for the full label.
	m.sessions = []*session.Session{
		{ID: 1, ProfileID: 1, Name: "Algebra", Day: session.Monday, StartTime: "09:00", EndTime: "11:00", Color: session.ColorBlue},
	}

	out := ansi.Strip(m.View())

	for _, want := range []string{"Student", "Algebra", "Monday", "Friday", "8a", "12p"} {
		if !strings.Contains(out, want) {
			t.Errorf("schedule view missing %q", want)
		}
	}
}

func TestViewNarrowBlockTruncatesLabel(t *testing.T) {
	m := testModel(t)
	// One hour is six cells; the label is cut to the block's width.
	m.sessions = []*session.Session{
		{ID: 1, ProfileID: 1, Name: "Algebra", Day: session.Monday, StartTime: "09:00", EndTime: "10:00", Color: session.ColorBlue},
	}

	out := ansi.Strip(m.View())
	if strings.Contains(out, "Algebra") {
		t.Error("a six-cell block cannot show the full seven-letter name")
	}
	if !strings.Contains(out, " Algeb") {
		t.Error("the visible prefix of the name should still render")
	}
}

func TestViewScheduleLineCount(t *testing.T) {
	m := testModel(t)

	lines := strings.Split(m.View(), "\n")
	// Header, five day rows with separators, and the help line.
	want := gridTop + len(session.Days())*(dayRowLines+1) + 1
	if len(lines) != want {
		t.Errorf("schedule view has %d lines, want %d", len(lines), want)
	}
}

func TestViewShowsStatusMessage(t *testing.T) {
	m := testModel(t)
	m.statusMsg = "Session moved"

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Session moved") {
		t.Error("status message should replace the help line")
	}
}

func TestViewDragPreviewRendered(t *testing.T) {
	m := testModel(t)
	m.sessions = []*session.Session{
		{ID: 1, ProfileID: 1, Name: "Algebra", Day: session.Monday, StartTime: "09:00", EndTime: "11:00", Color: session.ColorBlue},
	}

	if err := m.gestures.StartDrag(m.sessions[0], 0); err != nil {
		t.Fatal(err)
	}
	m.gestures.Drag().Update(session.Wednesday, 0.5)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Algebra") {
		t.Error("dragged session should render at its preview position")
	}
}

func TestViewProfilesScreen(t *testing.T) {
	m := testModel(t)
	m.view = ViewProfiles
	m.profiles = []*profile.Profile{
		{ID: 1, Name: "Student", Emoji: "🎓", Theme: "classic"},
		{ID: 2, Name: "Ana", Emoji: "🚀", Theme: "ocean"},
	}

	out := ansi.Strip(m.View())
	for _, want := range []string{"Who is studying?", "Student", "Ana"} {
		if !strings.Contains(out, want) {
			t.Errorf("profiles view missing %q", want)
		}
	}
}

func TestViewModalOverlaysSchedule(t *testing.T) {
	m := testModel(t)
	m.openSessionForm(nil)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "New class") {
		t.Error("open form should render on top of the schedule")
	}
}

func TestDayTitle(t *testing.T) {
	if got := dayTitle(session.Wednesday); got != "Wednesday" {
		t.Errorf("dayTitle(wednesday) = %q, want Wednesday", got)
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 8, want: "8a"},
		{hour: 11, want: "11a"},
		{hour: 12, want: "12p"},
		{hour: 13, want: "1p"},
		{hour: 21, want: "9p"},
	}
	for _, tt := range tests {
		if got := hourLabel(tt.hour); got != tt.want {
			t.Errorf("hourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
