package grid

import (
	"math"

	"github.com/mgaray/aula/internal/session"
)

// MoveFunc is the single write path out of the gesture controllers: it
// receives the committed day and time range for a session. The owner
// persists the change and re-renders from storage.
type MoveFunc func(id int64, day session.Day, start, end string) error

// DragController tracks one in-progress "move session" gesture. It is
// idle until Start, live until Commit or Cancel, and recomputes its
// preview fully from the original snapshot on every Update so missed
// pointer events cannot accumulate drift.
type DragController struct {
	move MoveFunc

	active        bool
	original      *session.Session
	offsetMinutes int // where inside the block the user grabbed it

	previewDay   session.Day
	previewStart int // minutes since midnight, snapped and clamped
}

// NewDragController creates an idle controller committing through move.
func NewDragController(move MoveFunc) *DragController {
	return &DragController{move: move}
}

// SetMoveFunc re-points the commit callback. The owner calls this when
// its own commit logic changes; the controller never captures it from
// ambient state.
func (c *DragController) SetMoveFunc(move MoveFunc) {
	c.move = move
}

// IsActive returns true while a drag is in progress.
func (c *DragController) IsActive() bool {
	return c.active
}

// SessionID returns the ID of the session being dragged, or 0 when idle.
func (c *DragController) SessionID() int64 {
	if !c.active {
		return 0
	}
	return c.original.ID
}

// Start begins a drag of s. grabFraction is where inside the block the
// pointer went down, as a fraction of the block's width; it fixes the
// grab offset in minutes of the block's own duration so the block does
// not jump under the pointer on the first update.
func (c *DragController) Start(s *session.Session, grabFraction float64) error {
	if c.active {
		return ErrGestureActive
	}
	c.active = true
	c.original = s.Clone()
	c.offsetMinutes = int(clamp01(grabFraction) * float64(s.Duration()))
	c.previewDay = s.Day
	c.previewStart = session.TimeToMinutes(s.StartTime)
	return nil
}

// Update recomputes the preview from the pointer position. laneFraction
// is the pointer X as a fraction of the day lane width; day is the lane
// the pointer is over. The candidate start is snapped to the nearest
// 15-minute boundary and clamped so the whole block stays inside the
// visible window. Returns true only when the preview actually changed,
// so callers can skip redundant re-layout.
func (c *DragController) Update(day session.Day, laneFraction float64) bool {
	if !c.active {
		return false
	}

	mouseMinutes := DayStartMinutes + int(math.Round(clamp01(laneFraction)*WindowMinutes))
	start := snapToNearest(mouseMinutes-c.offsetMinutes, dragSnapMinutes)
	start = clampMinutes(start, DayStartMinutes, DayEndMinutes-c.original.Duration())

	if day == c.previewDay && start == c.previewStart {
		return false
	}
	c.previewDay = day
	c.previewStart = start
	return true
}

// Preview returns the live preview day and start time.
func (c *DragController) Preview() (session.Day, string, bool) {
	if !c.active {
		return "", "", false
	}
	return c.previewDay, session.MinutesToTime(c.previewStart), true
}

// PreviewSession returns a synthetic copy of the dragged session with
// day and times replaced by the live preview, for injection into the
// target day's list before lane layout.
func (c *DragController) PreviewSession() *session.Session {
	if !c.active {
		return nil
	}
	preview := c.original.Clone()
	preview.Day = c.previewDay
	preview.StartTime = session.MinutesToTime(c.previewStart)
	preview.EndTime = session.MinutesToTime(c.previewStart + c.original.Duration())
	return preview
}

// Commit ends the gesture and emits the preview through the move
// callback. The end time preserves the original duration.
func (c *DragController) Commit() error {
	if !c.active {
		return ErrNoGesture
	}
	id := c.original.ID
	day := c.previewDay
	start := c.previewStart
	end := start + c.original.Duration()
	c.reset()
	return c.move(id, day, session.MinutesToTime(start), session.MinutesToTime(end))
}

// Cancel ends the gesture without emitting anything; the session renders
// at its original position on the next pass.
func (c *DragController) Cancel() {
	c.reset()
}

func (c *DragController) reset() {
	c.active = false
	c.original = nil
	c.offsetMinutes = 0
	c.previewDay = ""
	c.previewStart = 0
}
