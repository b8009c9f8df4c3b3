package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
)

func TestOpenSessionFormNewUsesDefaults(t *testing.T) {
	m := testModel(t)
	m.sessions = []*session.Session{
		{ID: 3, ProfileID: 1, Name: "Algebra", Day: session.Thursday, StartTime: "14:00", EndTime: "15:30", Color: session.ColorRed},
	}

	m.openSessionForm(nil)

	f := m.sessionForm
	if f.editing != nil {
		t.Error("new form should have no edit target")
	}
	if f.start.Value() != "15:30" || f.end.Value() != "16:30" {
		t.Errorf("prefilled times = %s-%s, want 15:30-16:30", f.start.Value(), f.end.Value())
	}
	if session.DayAt(f.dayIdx) != session.Thursday {
		t.Errorf("prefilled day = %s, want thursday", session.DayAt(f.dayIdx))
	}
	if session.Colors()[f.colorIdx] == session.ColorRed {
		t.Error("proposed color should differ from the newest session's")
	}
	if m.modalType != ModalSessionForm || m.mode != ModeModal {
		t.Error("form modal should be open")
	}
}

func TestOpenSessionFormEditPrefills(t *testing.T) {
	m := testModel(t)
	s := &session.Session{
		ID: 5, ProfileID: 1, Name: "Chemistry", Day: session.Friday,
		StartTime: "10:00", EndTime: "11:30", Location: "Lab 2", Teacher: "Khan", Color: session.ColorGreen,
	}

	m.openSessionForm(s)

	f := m.sessionForm
	if f.editing != s {
		t.Error("edit form should keep the target")
	}
	if f.name.Value() != "Chemistry" || f.location.Value() != "Lab 2" || f.teacher.Value() != "Khan" {
		t.Error("edit form should prefill text fields")
	}
	if session.Colors()[f.colorIdx] != session.ColorGreen {
		t.Error("edit form should prefill the color")
	}
}

func TestSessionFormSubmitValidation(t *testing.T) {
	m := testModel(t)
	m.openSessionForm(nil)
	m.sessionForm.name.SetValue("") // invalid
	m.sessionForm.focus = sessionFieldSave

	_, cmd := m.submitSessionForm()
	if cmd == nil {
		t.Fatal("submit should return a status command")
	}
	if m.modalType != ModalSessionForm {
		t.Error("invalid form should stay open")
	}
	if !strings.Contains(m.statusMsg, "Invalid session") {
		t.Errorf("statusMsg = %q, want a validation message", m.statusMsg)
	}
}

func TestSessionFormFieldCycle(t *testing.T) {
	m := testModel(t)
	m.openSessionForm(nil)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	for i := 0; i < sessionFieldCount; i++ {
		m.handleModalKeys(tab)
	}
	if m.sessionForm.focus != sessionFieldName {
		t.Errorf("focus = %d, tab should wrap around to the name", m.sessionForm.focus)
	}
}

func TestProfileFormSubmit(t *testing.T) {
	m := testModel(t)
	m.openProfileForm(nil)
	m.profileForm.name.SetValue("Ana")
	m.profileForm.themeIdx = 1

	_, cmd := m.submitProfileForm()
	if cmd == nil {
		t.Fatal("valid profile submit should return a save command")
	}
}

func TestEscapeClosesModal(t *testing.T) {
	m := testModel(t)
	m.openSessionForm(nil)

	m.handleModalKeys(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal || m.modalType != ModalNone {
		t.Error("esc should close the form")
	}
}

func TestSummaryText(t *testing.T) {
	p := &profile.Profile{Name: "Student", Emoji: "🎓"}
	ws := summary.SummarizeWeek([]*session.Session{
		{ID: 1, Day: session.Monday, StartTime: "09:00", EndTime: "10:30", Name: "Algebra", Location: "Room 12"},
		{ID: 2, Day: session.Wednesday, StartTime: "14:00", EndTime: "15:00", Name: "Chemistry"},
	})

	text := summaryText(p, ws, session.FormatTimeCompact)

	for _, want := range []string{
		"Student's week",
		"Monday",
		"9:00a-10:30a  Algebra (Room 12)",
		"Wednesday",
		"Chemistry",
		"Total: 2h30m across 2 classes",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Tuesday") {
		t.Error("days without classes should be omitted")
	}
}

func TestKeyOpensForm(t *testing.T) {
	m := testModel(t)
	m.handleKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if m.modalType != ModalSessionForm {
		t.Error("'a' should open the session form")
	}
}

func TestKeyMovesCursor(t *testing.T) {
	m := testModel(t)
	m.handleKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if m.cursorDay != 1 {
		t.Errorf("cursorDay = %d, want 1 after 'l'", m.cursorDay)
	}
	m.handleKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if m.cursorDay != 0 {
		t.Errorf("cursorDay = %d, want 0 after 'h'", m.cursorDay)
	}
}
