package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
	"github.com/mgaray/aula/internal/summary"
	"github.com/mgaray/aula/internal/tui/commands"
)

// Session form fields in focus order.
const (
	sessionFieldName = iota
	sessionFieldDay
	sessionFieldStart
	sessionFieldEnd
	sessionFieldLocation
	sessionFieldTeacher
	sessionFieldColor
	sessionFieldSave
	sessionFieldCancel
	sessionFieldCount
)

// Profile form fields in focus order.
const (
	profileFieldName = iota
	profileFieldEmoji
	profileFieldTheme
	profileFieldSave
	profileFieldCancel
	profileFieldCount
)

type sessionForm struct {
	editing  *session.Session // nil when creating
	name     textinput.Model
	start    textinput.Model
	end      textinput.Model
	location textinput.Model
	teacher  textinput.Model
	dayIdx   int
	colorIdx int
	focus    int
}

type profileForm struct {
	editing  *profile.Profile // nil when creating
	name     textinput.Model
	emojiIdx int
	themeIdx int
	focus    int
}

func newFormInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// openSessionForm opens the creation or edit form. New sessions are
// prefilled with proposed defaults from the current schedule.
func (m *Model) openSessionForm(s *session.Session) {
	f := sessionForm{
		editing:  s,
		name:     newFormInput("Class name", 64, 28),
		start:    newFormInput("HH:MM", 5, 7),
		end:      newFormInput("HH:MM", 5, 7),
		location: newFormInput("Room (optional)", 64, 28),
		teacher:  newFormInput("Teacher (optional)", 64, 28),
	}

	if s != nil {
		f.name.SetValue(s.Name)
		f.start.SetValue(s.StartTime)
		f.end.SetValue(s.EndTime)
		f.location.SetValue(s.Location)
		f.teacher.SetValue(s.Teacher)
		f.dayIdx = s.Day.Index()
		f.colorIdx = colorIndex(s.Color)
	} else {
		defaults := session.ProposeDefaults(m.sessions, nil)
		f.start.SetValue(defaults.StartTime)
		f.end.SetValue(defaults.EndTime)
		f.dayIdx = defaults.Day.Index()
		f.colorIdx = colorIndex(defaults.Color)
	}

	f.name.Focus()
	m.sessionForm = f
	m.mode = ModeModal
	m.modalType = ModalSessionForm
}

func (m *Model) openSessionDetail(s *session.Session) {
	m.detailSession = s
	m.mode = ModeModal
	m.modalType = ModalSessionDetail
}

func (m *Model) openProfileForm(p *profile.Profile) {
	f := profileForm{
		editing: p,
		name:    newFormInput("Profile name", 32, 24),
	}
	if p != nil {
		f.name.SetValue(p.Name)
		f.emojiIdx = indexOf(profile.Emojis, p.Emoji)
		f.themeIdx = indexOf(profile.Themes, p.Theme)
	}
	f.name.Focus()
	m.profileForm = f
	m.mode = ModeModal
	m.modalType = ModalProfileForm
}

func colorIndex(c session.Color) int {
	for i, color := range session.Colors() {
		if color == c {
			return i
		}
	}
	return 0
}

func indexOf(values []string, v string) int {
	for i, value := range values {
		if value == v {
			return i
		}
	}
	return 0
}

// handleModalKeys routes keys to the open modal.
func (m *Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalSessionForm:
		return m.handleSessionFormKeys(msg)
	case ModalProfileForm:
		return m.handleProfileFormKeys(msg)

	case ModalSessionDetail:
		switch msg.String() {
		case "e":
			s := m.detailSession
			m.closeModal()
			m.openSessionForm(s)
		case "d":
			m.confirmSession = m.detailSession
			m.modalType = ModalConfirmDelete
		case "esc", "q", "enter":
			m.closeModal()
		}

	case ModalConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			s := m.confirmSession
			return m, commands.DeleteSession(m.repo, s)
		case "n", "esc":
			m.closeModal()
		}

	case ModalConfirmDeleteProfile:
		switch msg.String() {
		case "y", "enter":
			return m, commands.DeleteProfile(m.repo, m.confirmProfile.ID)
		case "n", "esc":
			m.closeModal()
		}

	case ModalWeekSummary:
		switch msg.String() {
		case "y":
			if m.weekSummary == nil {
				return m, nil
			}
			text := summaryText(m.activeProfile, m.weekSummary, m.formatTime)
			if err := clipboard.WriteAll(text); err != nil {
				return m, m.setStatus("Copy failed: " + err.Error())
			}
			return m, m.setStatus("Week summary copied")
		case "esc", "q", "enter":
			m.closeModal()
		}
	}
	return m, nil
}

func (m *Model) handleSessionFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.sessionForm

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.focusSessionField((f.focus + 1) % sessionFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusSessionField((f.focus + sessionFieldCount - 1) % sessionFieldCount)
		return m, nil

	case "left":
		switch f.focus {
		case sessionFieldDay:
			f.dayIdx = (f.dayIdx + len(session.Days()) - 1) % len(session.Days())
			return m, nil
		case sessionFieldColor:
			f.colorIdx = (f.colorIdx + len(session.Colors()) - 1) % len(session.Colors())
			return m, nil
		}
	case "right":
		switch f.focus {
		case sessionFieldDay:
			f.dayIdx = (f.dayIdx + 1) % len(session.Days())
			return m, nil
		case sessionFieldColor:
			f.colorIdx = (f.colorIdx + 1) % len(session.Colors())
			return m, nil
		}

	case "enter":
		switch f.focus {
		case sessionFieldCancel:
			m.closeModal()
			return m, nil
		case sessionFieldSave:
			return m.submitSessionForm()
		default:
			m.focusSessionField(f.focus + 1)
			return m, nil
		}
	}

	// Typing goes to the focused text field.
	var cmd tea.Cmd
	switch f.focus {
	case sessionFieldName:
		f.name, cmd = f.name.Update(msg)
	case sessionFieldStart:
		f.start, cmd = f.start.Update(msg)
	case sessionFieldEnd:
		f.end, cmd = f.end.Update(msg)
	case sessionFieldLocation:
		f.location, cmd = f.location.Update(msg)
	case sessionFieldTeacher:
		f.teacher, cmd = f.teacher.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusSessionField(field int) {
	f := &m.sessionForm
	f.name.Blur()
	f.start.Blur()
	f.end.Blur()
	f.location.Blur()
	f.teacher.Blur()

	f.focus = field
	switch field {
	case sessionFieldName:
		f.name.Focus()
	case sessionFieldStart:
		f.start.Focus()
	case sessionFieldEnd:
		f.end.Focus()
	case sessionFieldLocation:
		f.location.Focus()
	case sessionFieldTeacher:
		f.teacher.Focus()
	}
}

func (m *Model) submitSessionForm() (tea.Model, tea.Cmd) {
	f := &m.sessionForm

	s, err := session.New(
		m.activeProfile.ID,
		strings.TrimSpace(f.name.Value()),
		string(session.DayAt(f.dayIdx)),
		strings.TrimSpace(f.start.Value()),
		strings.TrimSpace(f.end.Value()),
		strings.TrimSpace(f.location.Value()),
		strings.TrimSpace(f.teacher.Value()),
		string(session.Colors()[f.colorIdx]),
	)
	if err != nil {
		return m, m.setStatus("Invalid session: " + err.Error())
	}
	if f.editing != nil {
		s.ID = f.editing.ID
		s.ProfileID = f.editing.ProfileID
	}
	return m, commands.SaveSession(m.repo, s)
}

func (m *Model) handleProfileFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.profileForm

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.focusProfileField((f.focus + 1) % profileFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusProfileField((f.focus + profileFieldCount - 1) % profileFieldCount)
		return m, nil

	case "left":
		switch f.focus {
		case profileFieldEmoji:
			f.emojiIdx = (f.emojiIdx + len(profile.Emojis) - 1) % len(profile.Emojis)
			return m, nil
		case profileFieldTheme:
			f.themeIdx = (f.themeIdx + len(profile.Themes) - 1) % len(profile.Themes)
			return m, nil
		}
	case "right":
		switch f.focus {
		case profileFieldEmoji:
			f.emojiIdx = (f.emojiIdx + 1) % len(profile.Emojis)
			return m, nil
		case profileFieldTheme:
			f.themeIdx = (f.themeIdx + 1) % len(profile.Themes)
			return m, nil
		}

	case "enter":
		switch f.focus {
		case profileFieldCancel:
			m.closeModal()
			return m, nil
		case profileFieldSave:
			return m.submitProfileForm()
		default:
			m.focusProfileField(f.focus + 1)
			return m, nil
		}
	}

	if f.focus == profileFieldName {
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) focusProfileField(field int) {
	f := &m.profileForm
	f.name.Blur()
	f.focus = field
	if field == profileFieldName {
		f.name.Focus()
	}
}

func (m *Model) submitProfileForm() (tea.Model, tea.Cmd) {
	f := &m.profileForm

	p, err := profile.New(
		strings.TrimSpace(f.name.Value()),
		profile.Emojis[f.emojiIdx],
		profile.Themes[f.themeIdx],
	)
	if err != nil {
		return m, m.setStatus("Invalid profile: " + err.Error())
	}
	if f.editing != nil {
		p.ID = f.editing.ID
	}
	return m, commands.SaveProfile(m.repo, p)
}

// updateFormInputs forwards non-key messages, cursor blinks mostly, to
// the form text inputs.
func (m *Model) updateFormInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch m.modalType {
	case ModalSessionForm:
		f := &m.sessionForm
		for _, ti := range []*textinput.Model{&f.name, &f.start, &f.end, &f.location, &f.teacher} {
			var cmd tea.Cmd
			*ti, cmd = ti.Update(msg)
			cmds = append(cmds, cmd)
		}
	case ModalProfileForm:
		var cmd tea.Cmd
		m.profileForm.name, cmd = m.profileForm.name.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ----------------------------------------------------------------------
// Modal rendering
// ----------------------------------------------------------------------

func (m *Model) renderModal() string {
	switch m.modalType {
	case ModalSessionForm:
		return m.renderSessionForm()
	case ModalSessionDetail:
		return m.renderSessionDetail()
	case ModalConfirmDelete:
		return m.renderConfirm(fmt.Sprintf("Delete %q?", m.confirmSession.Name))
	case ModalProfileForm:
		return m.renderProfileForm()
	case ModalConfirmDeleteProfile:
		return m.renderConfirm(fmt.Sprintf("Delete profile %q and its schedule?", m.confirmProfile.Name))
	case ModalWeekSummary:
		return m.renderWeekSummary()
	}
	return ""
}

func (m *Model) formInputView(ti textinput.Model, focused bool) string {
	if focused {
		return m.styles.ModalInputFocusedStyle.Render(ti.View())
	}
	return m.styles.ModalInputStyle.Render(ti.View())
}

func (m *Model) optionRow(options []string, selected int, focused bool) string {
	parts := make([]string, 0, len(options))
	for i, opt := range options {
		if i == selected && focused {
			parts = append(parts, m.styles.OptionActiveStyle.Render(opt))
		} else if i == selected {
			parts = append(parts, m.styles.ModalValueStyle.Render("["+opt+"]"))
		} else {
			parts = append(parts, m.styles.OptionInactiveStyle.Render(opt))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) buttonRow(saveLabel string, focus, saveField, cancelField int) string {
	save := m.styles.ModalButtonStyle.Render(saveLabel)
	if focus == saveField {
		save = m.styles.ModalButtonActiveStyle.Render(saveLabel)
	}
	cancel := m.styles.ModalButtonStyle.Render("Cancel")
	if focus == cancelField {
		cancel = m.styles.ModalButtonActiveStyle.Render("Cancel")
	}
	return save + "  " + cancel
}

func (m *Model) renderSessionForm() string {
	f := &m.sessionForm

	title := "New class"
	if f.editing != nil {
		title = "Edit class"
	}

	dayNames := make([]string, 0, len(session.Days()))
	for _, d := range session.Days() {
		dayNames = append(dayNames, dayTitle(d)[:3])
	}
	colorNames := make([]string, 0, len(session.Colors()))
	for _, c := range session.Colors() {
		colorNames = append(colorNames, string(c))
	}

	label := m.styles.ModalLabelStyle.Render
	lines := []string{
		m.styles.ModalTitleStyle.Render(title),
		"",
		label("Name     ") + m.formInputView(f.name, f.focus == sessionFieldName),
		label("Day      ") + m.optionRow(dayNames, f.dayIdx, f.focus == sessionFieldDay),
		label("Start    ") + m.formInputView(f.start, f.focus == sessionFieldStart),
		label("End      ") + m.formInputView(f.end, f.focus == sessionFieldEnd),
		label("Location ") + m.formInputView(f.location, f.focus == sessionFieldLocation),
		label("Teacher  ") + m.formInputView(f.teacher, f.focus == sessionFieldTeacher),
		label("Color    ") + m.optionRow(colorNames, f.colorIdx, f.focus == sessionFieldColor),
		"",
		m.buttonRow("Save", f.focus, sessionFieldSave, sessionFieldCancel),
		m.styles.ModalHintStyle.Render("tab next · arrows choose · esc cancel"),
	}
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderSessionDetail() string {
	s := m.detailSession
	label := m.styles.ModalLabelStyle.Render
	value := m.styles.ModalValueStyle.Render

	lines := []string{
		m.styles.ModalTitleStyle.Render(s.Name),
		"",
		label("Day      ") + value(dayTitle(s.Day)),
		label("Time     ") + value(m.formatTime(s.StartTime)+" - "+m.formatTime(s.EndTime)),
		label("Duration ") + value(summary.FormatHours(s.Duration())),
		label("Color    ") + m.styles.BlockStyle(s.Color).Render(" "+string(s.Color)+" "),
	}
	if s.Location != "" {
		lines = append(lines, label("Location ")+value(s.Location))
	}
	if s.Teacher != "" {
		lines = append(lines, label("Teacher  ")+value(s.Teacher))
	}
	lines = append(lines, "", m.styles.ModalHintStyle.Render("e edit · d delete · esc close"))
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderProfileForm() string {
	f := &m.profileForm

	title := "New profile"
	if f.editing != nil {
		title = "Edit profile"
	}

	label := m.styles.ModalLabelStyle.Render
	lines := []string{
		m.styles.ModalTitleStyle.Render(title),
		"",
		label("Name  ") + m.formInputView(f.name, f.focus == profileFieldName),
		label("Emoji ") + m.optionRow(profile.Emojis, f.emojiIdx, f.focus == profileFieldEmoji),
		label("Theme ") + m.optionRow(profile.Themes, f.themeIdx, f.focus == profileFieldTheme),
		"",
		m.buttonRow("Save", f.focus, profileFieldSave, profileFieldCancel),
		m.styles.ModalHintStyle.Render("tab next · arrows choose · esc cancel"),
	}
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderConfirm(message string) string {
	lines := []string{
		m.styles.ModalTitleStyle.Render("Confirm"),
		"",
		m.styles.ModalValueStyle.Render(message),
		"",
		m.styles.ModalHintStyle.Render("y confirm · n cancel"),
	}
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderWeekSummary() string {
	label := m.styles.ModalLabelStyle.Render
	value := m.styles.ModalValueStyle.Render

	lines := []string{
		m.styles.ModalTitleStyle.Render("Week summary · " + m.activeProfile.Name),
		"",
	}

	if m.weekSummary == nil {
		lines = append(lines, value("Loading..."))
	} else {
		st := m.weekSummary.Stats
		lines = append(lines,
			label("Classes    ")+value(fmt.Sprintf("%d", st.SessionCount)),
			label("Class time ")+value(summary.FormatHours(st.TotalMinutes)),
		)
		if st.SessionCount > 0 {
			lines = append(lines, label("Busiest    ")+value(dayTitle(st.BusiestDay)+" ("+summary.FormatHours(st.MinutesPerDay[st.BusiestDay])+")"))
		}
		for i, t := range st.Teachers {
			if i >= 4 {
				break
			}
			lines = append(lines, label("  "+t.Teacher+" ")+value(summary.FormatHours(t.Minutes)))
		}
	}

	lines = append(lines, "", m.styles.ModalHintStyle.Render("y copy · esc close"))
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// summaryText renders a week summary as plain text for the clipboard.
func summaryText(p *profile.Profile, ws *summary.WeekSummary, formatTime func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s's week\n", p.Emoji, p.Name)

	for _, day := range session.Days() {
		var inDay []*session.Session
		for _, s := range ws.Sessions {
			if s.Day == day {
				inDay = append(inDay, s)
			}
		}
		if len(inDay) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", dayTitle(day))
		for _, s := range inDay {
			fmt.Fprintf(&b, "  %s-%s  %s", formatTime(s.StartTime), formatTime(s.EndTime), s.Name)
			if s.Location != "" {
				fmt.Fprintf(&b, " (%s)", s.Location)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\nTotal: %s across %d classes\n",
		summary.FormatHours(ws.Stats.TotalMinutes), ws.Stats.SessionCount)
	return b.String()
}
