package grid

import (
	"errors"

	"github.com/mgaray/aula/internal/session"
)

// Gesture errors.
var (
	ErrGestureActive = errors.New("another gesture is already active")
	ErrNoGesture     = errors.New("no active gesture")
)

// Gestures owns the two gesture controllers and enforces that at most
// one gesture is active at a time system-wide. The surrounding UI layer
// starts gestures through it and asks it for each day's session list,
// which has the active gesture's live preview substituted in.
type Gestures struct {
	drag   *DragController
	resize *ResizeController
}

// NewGestures creates the coordinator with both controllers idle.
func NewGestures(move MoveFunc) *Gestures {
	return &Gestures{
		drag:   NewDragController(move),
		resize: NewResizeController(move),
	}
}

// SetMoveFunc re-points the commit callback on both controllers.
func (g *Gestures) SetMoveFunc(move MoveFunc) {
	g.drag.SetMoveFunc(move)
	g.resize.SetMoveFunc(move)
}

// Active returns true while either gesture is in progress.
func (g *Gestures) Active() bool {
	return g.drag.IsActive() || g.resize.IsActive()
}

// Drag returns the drag controller.
func (g *Gestures) Drag() *DragController {
	return g.drag
}

// Resize returns the resize controller.
func (g *Gestures) Resize() *ResizeController {
	return g.resize
}

// StartDrag begins a move gesture. Fails while any gesture is active.
func (g *Gestures) StartDrag(s *session.Session, grabFraction float64) error {
	if g.Active() {
		return ErrGestureActive
	}
	return g.drag.Start(s, grabFraction)
}

// StartResize begins an edge-stretch gesture. Fails while any gesture is
// active.
func (g *Gestures) StartResize(s *session.Session, edge Edge, pointerX, laneWidth int) error {
	if g.Active() {
		return ErrGestureActive
	}
	return g.resize.Start(s, edge, pointerX, laneWidth)
}

// DaySessions returns the sessions to lay out for one day. During a drag
// the dragged session is removed from its home day and a synthetic
// preview is injected into the target day, so the preview participates
// in overlap packing against the destination day's other sessions.
// During a resize the target's times are overridden with the preview.
// Idle, it is a plain filter by day.
func (g *Gestures) DaySessions(all []*session.Session, day session.Day) []*session.Session {
	var result []*session.Session

	for _, s := range all {
		if s.Day != day {
			continue
		}
		if g.drag.IsActive() && s.ID == g.drag.SessionID() {
			// Excluded here; the preview is injected below.
			continue
		}
		if g.resize.IsActive() && s.ID == g.resize.SessionID() {
			result = append(result, g.resize.PreviewSession())
			continue
		}
		result = append(result, s)
	}

	if g.drag.IsActive() {
		if previewDay, _, ok := g.drag.Preview(); ok && previewDay == day {
			result = append(result, g.drag.PreviewSession())
		}
	}

	return result
}
