// Package session defines the core domain types for aula.
package session

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidDay        = errors.New("day must be a weekday (monday-friday)")
	ErrInvalidColor      = errors.New("invalid color tag")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Day represents a weekday of the schedule grid.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
)

// Days returns the weekdays in grid order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// Valid returns true if the day is one of the five weekdays.
func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	default:
		return false
	}
}

// Index returns the zero-based position of the day in the grid (Monday = 0).
// Returns -1 for invalid days.
func (d Day) Index() int {
	for i, day := range Days() {
		if day == d {
			return i
		}
	}
	return -1
}

// DayAt returns the day at the given grid index, or Monday if out of range.
func DayAt(index int) Day {
	days := Days()
	if index < 0 || index >= len(days) {
		return Monday
	}
	return days[index]
}

// ParseDay parses a day name.
func ParseDay(s string) (Day, error) {
	d := Day(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// Color represents a session color tag.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// Colors returns all color tags in a stable order.
func Colors() []Color {
	return []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorOrange}
}

// Valid returns true if the color is one of the six tags.
func (c Color) Valid() bool {
	for _, color := range Colors() {
		if color == c {
			return true
		}
	}
	return false
}

// ParseColor parses a color tag.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Session represents one recurring weekly class block.
// IDs are assigned by storage and increase monotonically with creation
// order, so the highest ID is always the most recently created session.
type Session struct {
	ID        int64
	ProfileID int64
	Name      string
	Day       Day
	StartTime string // "HH:MM" format
	EndTime   string // "HH:MM" format
	Location  string // optional
	Teacher   string // optional
	Color     Color
}

// New creates a new Session with validation.
// day must be a weekday name, start and end must be in HH:MM format with
// end after start, and color must be one of the six tags.
func New(profileID int64, name, day, start, end, location, teacher, color string) (*Session, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}

	if err := validateTimeFormat(start); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	if err := validateTimeFormat(end); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if end <= start {
		return nil, ErrEndBeforeStart
	}

	c, err := ParseColor(color)
	if err != nil {
		return nil, err
	}

	return &Session{
		ProfileID: profileID,
		Name:      name,
		Day:       d,
		StartTime: start,
		EndTime:   end,
		Location:  location,
		Teacher:   teacher,
		Color:     c,
	}, nil
}

func validateTimeFormat(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidTimeFormat
		}
	}
	if TimeToMinutes(s) >= 24*60 || s[3] > '5' {
		return ErrInvalidTimeFormat
	}
	return nil
}

// Duration returns the session duration in minutes.
func (s *Session) Duration() int {
	return TimeToMinutes(s.EndTime) - TimeToMinutes(s.StartTime)
}

// OverlapsWith returns true if this session overlaps another session.
// Sessions must be on the same day and have overlapping time ranges.
func (s *Session) OverlapsWith(other *Session) bool {
	if other == nil || s.Day != other.Day {
		return false
	}
	return TimesOverlap(s.StartTime, s.EndTime, other.StartTime, other.EndTime)
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	return &c
}
