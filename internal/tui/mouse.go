package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse dispatches pointer events to the gesture controllers.
// Press on a block edge starts a resize, press inside a block starts a
// drag, motion feeds the active gesture, release commits it.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.view != ViewSchedule {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.mousePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.mouseMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m.mouseRelease(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) mousePress(x, y int) (tea.Model, tea.Cmd) {
	target := m.hitTest(x, y)
	if target.sess == nil {
		if target.onGrid {
			m.cursorDay = target.day.Index()
		}
		return m, nil
	}

	m.cursorDay = target.day.Index()

	var err error
	if target.onEdge {
		err = m.gestures.StartResize(target.sess, target.edge, x, m.metrics().laneWidth)
	} else {
		err = m.gestures.StartDrag(target.sess, target.blockFraction)
		m.dragMoved = false
	}
	if err != nil {
		return m, m.setStatus(err.Error())
	}
	return m, nil
}

func (m *Model) mouseMotion(x, y int) (tea.Model, tea.Cmd) {
	if m.gestures.Resize().IsActive() {
		m.gestures.Resize().Update(x)
		return m, nil
	}
	if m.gestures.Drag().IsActive() {
		target := m.hitTest(x, y)
		if !target.onGrid {
			return m, nil
		}
		if m.gestures.Drag().Update(target.day, target.laneFraction) {
			m.dragMoved = true
		}
	}
	return m, nil
}

func (m *Model) mouseRelease(x, y int) (tea.Model, tea.Cmd) {
	if m.gestures.Resize().IsActive() {
		// Motion events can be coalesced; the release X is the final
		// pointer position.
		m.gestures.Resize().Update(x)
		err := m.gestures.Resize().Commit()
		// Terminals report a click for the release that ends a resize;
		// guard the detail modal against it for a short window.
		m.clickGuardUntil = time.Now().Add(clickGuardDuration)
		if err != nil {
			return m, m.setStatus("Resize failed: " + err.Error())
		}
		return m, tea.Batch(m.reloadSchedule(), m.setStatus("Session resized"))
	}

	if m.gestures.Drag().IsActive() {
		if !m.dragMoved {
			id := m.gestures.Drag().SessionID()
			m.gestures.Drag().Cancel()
			if time.Now().Before(m.clickGuardUntil) {
				return m, nil
			}
			if s := m.sessionByID(id); s != nil {
				m.openSessionDetail(s)
			}
			return m, nil
		}

		target := m.hitTest(x, y)
		if !target.onGrid {
			m.gestures.Drag().Cancel()
			return m, m.setStatus("Move canceled")
		}
		if err := m.gestures.Drag().Commit(); err != nil {
			return m, m.setStatus("Move failed: " + err.Error())
		}
		return m, tea.Batch(m.reloadSchedule(), m.setStatus("Session moved"))
	}

	return m, nil
}
