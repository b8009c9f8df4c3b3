package tui

import (
	"github.com/mgaray/aula/internal/grid"
	"github.com/mgaray/aula/internal/session"
)

// Fixed layout of the schedule screen. The header is title, blank line,
// hour ruler and separator; each day row is dayRowLines lines tall
// followed by a separator line.
const (
	dayLabelWidth = 11
	dayRowLines   = 4
	gridTop       = 4
	minLaneWidth  = grid.HourColumns
)

type gridMetrics struct {
	laneLeft  int
	laneWidth int
}

func (m *Model) metrics() gridMetrics {
	laneWidth := m.width - dayLabelWidth
	if laneWidth < minLaneWidth {
		laneWidth = minLaneWidth
	}
	return gridMetrics{laneLeft: dayLabelWidth, laneWidth: laneWidth}
}

// blockCells maps a grid position to a cell range within the lane.
// Zero-width ranges are widened to one cell so short sessions stay
// visible and clickable.
func blockCells(p grid.Position, laneWidth int) (start, end int) {
	start = int(p.Left*float64(laneWidth) + 0.5)
	end = int((p.Left+p.Width)*float64(laneWidth) + 0.5)
	if end <= start {
		end = start + 1
	}
	if start >= laneWidth {
		start = laneWidth - 1
	}
	if end > laneWidth {
		end = laneWidth
	}
	if start < 0 {
		start = 0
	}
	return start, end
}

// laneBand maps a lane to a line range within the day row. Bands are
// contiguous and non-overlapping while lanes <= dayRowLines; beyond
// that the bottom lanes share the last line.
func laneBand(lane, lanes int) (top, bottom int) {
	if lanes <= 0 {
		lanes = 1
	}
	top = lane * dayRowLines / lanes
	bottom = (lane + 1) * dayRowLines / lanes
	if bottom <= top {
		bottom = top + 1
	}
	if top >= dayRowLines {
		top = dayRowLines - 1
	}
	if bottom > dayRowLines {
		bottom = dayRowLines
	}
	return top, bottom
}

// edgeGripMinCells is the narrowest block that still offers resize
// grips; anything narrower is drag-only.
const edgeGripMinCells = 4

// hitTarget describes what is under a pointer position.
type hitTarget struct {
	onGrid        bool
	day           session.Day
	laneFraction  float64 // pointer X within the lane, 0..1
	sess          *session.Session
	onEdge        bool
	edge          grid.Edge
	blockFraction float64 // pointer X within the block, 0..1
}

// hitTest resolves a terminal cell to a day lane and, when the cell is
// inside a rendered block, the session and edge under the pointer.
func (m *Model) hitTest(x, y int) hitTarget {
	mt := m.metrics()

	row := y - gridTop
	if row < 0 || row >= len(session.Days())*(dayRowLines+1) {
		return hitTarget{}
	}
	dayIdx := row / (dayRowLines + 1)
	line := row % (dayRowLines + 1)

	target := hitTarget{
		onGrid:       true,
		day:          session.DayAt(dayIdx),
		laneFraction: float64(x-mt.laneLeft) / float64(mt.laneWidth),
	}
	if line == dayRowLines {
		// Separator line between day rows; day and fraction still apply.
		return target
	}

	cell := x - mt.laneLeft
	if cell < 0 || cell >= mt.laneWidth {
		return target
	}

	inDay := m.daySessions(target.day)
	placements := grid.ComputeLanes(inDay)
	for _, s := range inDay {
		p := placements[s.ID]
		top, bottom := laneBand(p.Lane, p.Lanes)
		if line < top || line >= bottom {
			continue
		}
		start, end := blockCells(grid.PositionOf(s.StartTime, s.EndTime), mt.laneWidth)
		if cell < start || cell >= end {
			continue
		}

		target.sess = s
		target.blockFraction = float64(cell-start) / float64(end-start)
		if end-start >= edgeGripMinCells {
			switch cell {
			case start:
				target.onEdge = true
				target.edge = grid.EdgeStart
			case end - 1:
				target.onEdge = true
				target.edge = grid.EdgeEnd
			}
		}
		return target
	}

	return target
}
