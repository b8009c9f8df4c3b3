// Package grid implements the schedule grid geometry and interaction
// engine: conversion between clock time and grid coordinates, lane
// packing of overlapping sessions, and the drag/resize gesture state
// machines. The package holds no storage; committed changes flow out
// through a single injected move callback.
package grid

import (
	"math"

	"github.com/mgaray/aula/internal/session"
)

// Visible day window. The grid always shows 08:00-22:00; this is a fixed
// property of the grid, not configuration.
const (
	DayStartMinutes = 8 * 60                           // 08:00
	DayEndMinutes   = 22 * 60                          // 22:00
	WindowMinutes   = DayEndMinutes - DayStartMinutes  // 14 hours
	HourColumns     = WindowMinutes / 60               // ruler columns
)

// Snap granularities for the two gestures.
const (
	dragSnapMinutes   = 15
	resizeSnapMinutes = 5
	minDurationMinutes = 15
)

// Position is a session's horizontal placement within a day row, as
// fractions of the row width.
type Position struct {
	Left  float64
	Width float64
}

// PositionOf maps a time range onto the visible window. A session at
// exactly 08:00 has Left 0; one ending at 22:00 has Left+Width 1.
func PositionOf(start, end string) Position {
	s := session.TimeToMinutes(start)
	e := session.TimeToMinutes(end)
	return Position{
		Left:  float64(s-DayStartMinutes) / WindowMinutes,
		Width: float64(e-s) / WindowMinutes,
	}
}

// snapToNearest rounds minutes to the nearest multiple of step, halves
// away from zero. Truncating here would make drags feel like they lag
// half a step behind the pointer.
func snapToNearest(mins, step int) int {
	return int(math.Round(float64(mins)/float64(step))) * step
}

func clampMinutes(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
