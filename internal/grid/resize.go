package grid

import (
	"math"

	"github.com/mgaray/aula/internal/session"
)

// Edge identifies which end of a session a resize stretches.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// ResizeController tracks one in-progress "stretch one edge" gesture.
// The untouched edge is held fixed; the moving edge snaps to a 5-minute
// grid and never shrinks the session below 15 minutes. Unlike a drag, a
// resize always commits on release; there is no cancel path.
type ResizeController struct {
	move MoveFunc

	active          bool
	edge            Edge
	original        *session.Session
	initialX        int
	initialStart    int // minutes
	initialEnd      int // minutes
	pixelsPerMinute float64

	previewStart int
	previewEnd   int
}

// NewResizeController creates an idle controller committing through move.
func NewResizeController(move MoveFunc) *ResizeController {
	return &ResizeController{move: move}
}

// SetMoveFunc re-points the commit callback.
func (c *ResizeController) SetMoveFunc(move MoveFunc) {
	c.move = move
}

// IsActive returns true while a resize is in progress.
func (c *ResizeController) IsActive() bool {
	return c.active
}

// SessionID returns the ID of the session being resized, or 0 when idle.
func (c *ResizeController) SessionID() int64 {
	if !c.active {
		return 0
	}
	return c.original.ID
}

// Edge returns the edge being stretched.
func (c *ResizeController) Edge() Edge {
	return c.edge
}

// Start begins resizing edge of s. pointerX is the initial pointer
// position and laneWidth the width of the day lane, both in the same
// units (pixels or cells); their ratio to the visible window fixes the
// minutes-per-unit scale for the whole gesture.
func (c *ResizeController) Start(s *session.Session, edge Edge, pointerX, laneWidth int) error {
	if c.active {
		return ErrGestureActive
	}
	if laneWidth <= 0 {
		laneWidth = 1
	}
	c.active = true
	c.edge = edge
	c.original = s.Clone()
	c.initialX = pointerX
	c.initialStart = session.TimeToMinutes(s.StartTime)
	c.initialEnd = session.TimeToMinutes(s.EndTime)
	c.pixelsPerMinute = float64(laneWidth) / float64(WindowMinutes)
	c.previewStart = c.initialStart
	c.previewEnd = c.initialEnd
	return nil
}

// Update recomputes the preview from the pointer position. The delta is
// always measured against the initial pointer X and snapped to 5-minute
// steps, then the moving edge is clamped against the fixed edge (15
// minute floor) and the visible window. Returns true when the preview
// changed.
func (c *ResizeController) Update(pointerX int) bool {
	if !c.active {
		return false
	}

	deltaMinutes := snapToNearest(int(math.Round(float64(pointerX-c.initialX)/c.pixelsPerMinute)), resizeSnapMinutes)

	start, end := c.initialStart, c.initialEnd
	switch c.edge {
	case EdgeStart:
		start = clampMinutes(c.initialStart+deltaMinutes, DayStartMinutes, c.initialEnd-minDurationMinutes)
	case EdgeEnd:
		end = clampMinutes(c.initialEnd+deltaMinutes, c.initialStart+minDurationMinutes, DayEndMinutes)
	}

	if start == c.previewStart && end == c.previewEnd {
		return false
	}
	c.previewStart = start
	c.previewEnd = end
	return true
}

// Preview returns the live preview time range.
func (c *ResizeController) Preview() (start, end string, ok bool) {
	if !c.active {
		return "", "", false
	}
	return session.MinutesToTime(c.previewStart), session.MinutesToTime(c.previewEnd), true
}

// PreviewSession returns a copy of the target session with its times
// overridden by the live preview, for substitution into the day's list
// before lane layout.
func (c *ResizeController) PreviewSession() *session.Session {
	if !c.active {
		return nil
	}
	preview := c.original.Clone()
	preview.StartTime = session.MinutesToTime(c.previewStart)
	preview.EndTime = session.MinutesToTime(c.previewEnd)
	return preview
}

// Commit ends the gesture and emits the final clamped range through the
// move callback. Releasing without moving commits a no-op change.
func (c *ResizeController) Commit() error {
	if !c.active {
		return ErrNoGesture
	}
	id := c.original.ID
	day := c.original.Day
	start := c.previewStart
	end := c.previewEnd
	c.reset()
	return c.move(id, day, session.MinutesToTime(start), session.MinutesToTime(end))
}

func (c *ResizeController) reset() {
	c.active = false
	c.original = nil
	c.initialX = 0
	c.initialStart = 0
	c.initialEnd = 0
	c.pixelsPerMinute = 0
	c.previewStart = 0
	c.previewEnd = 0
}
