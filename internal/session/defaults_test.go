package session

import (
	"math/rand/v2"
	"testing"
)

func testRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestProposeDefaultsEmptySchedule(t *testing.T) {
	d := ProposeDefaults(nil, testRng(1))

	if d.Day != Monday {
		t.Errorf("Day = %s, want monday", d.Day)
	}
	if d.StartTime != "09:00" || d.EndTime != "10:00" {
		t.Errorf("times = %s-%s, want 09:00-10:00", d.StartTime, d.EndTime)
	}
	if !d.Color.Valid() {
		t.Errorf("Color = %q, want a valid tag", d.Color)
	}
}

func TestProposeDefaultsFollowsNewest(t *testing.T) {
	// Highest ID wins regardless of slice order.
	sessions := []*Session{
		{ID: 5, Day: Thursday, StartTime: "14:00", EndTime: "15:30", Color: ColorRed},
		{ID: 2, Day: Monday, StartTime: "09:00", EndTime: "10:00", Color: ColorBlue},
	}

	d := ProposeDefaults(sessions, testRng(1))
	if d.Day != Thursday {
		t.Errorf("Day = %s, want thursday", d.Day)
	}
	if d.StartTime != "15:30" {
		t.Errorf("StartTime = %s, want the newest session's end", d.StartTime)
	}
	if d.EndTime != "16:30" {
		t.Errorf("EndTime = %s, want start plus one hour", d.EndTime)
	}
}

func TestProposeDefaultsEndWrapsMidnight(t *testing.T) {
	sessions := []*Session{
		{ID: 1, Day: Friday, StartTime: "22:00", EndTime: "23:30", Color: ColorRed},
	}

	d := ProposeDefaults(sessions, testRng(1))
	if d.StartTime != "23:30" || d.EndTime != "00:30" {
		t.Errorf("times = %s-%s, want 23:30-00:30", d.StartTime, d.EndTime)
	}
}

func TestProposeDefaultsAvoidsRecentColors(t *testing.T) {
	// Last three distinct colors by creation order are red, blue, green.
	sessions := []*Session{
		{ID: 10, Day: Monday, StartTime: "09:00", EndTime: "10:00", Color: ColorRed},
		{ID: 9, Day: Monday, StartTime: "10:00", EndTime: "11:00", Color: ColorRed},
		{ID: 8, Day: Monday, StartTime: "11:00", EndTime: "12:00", Color: ColorBlue},
		{ID: 7, Day: Monday, StartTime: "12:00", EndTime: "13:00", Color: ColorGreen},
		{ID: 6, Day: Monday, StartTime: "13:00", EndTime: "14:00", Color: ColorYellow},
	}

	excluded := map[Color]bool{ColorRed: true, ColorBlue: true, ColorGreen: true}
	for seed := uint64(1); seed <= 25; seed++ {
		d := ProposeDefaults(sessions, testRng(seed))
		if excluded[d.Color] {
			t.Fatalf("seed %d proposed recently used color %s", seed, d.Color)
		}
	}
}

func TestProposeDefaultsColorUniform(t *testing.T) {
	sessions := []*Session{
		{ID: 1, Day: Monday, StartTime: "09:00", EndTime: "10:00", Color: ColorRed},
	}

	seen := make(map[Color]bool)
	for seed := uint64(1); seed <= 200; seed++ {
		d := ProposeDefaults(sessions, testRng(seed))
		if d.Color == ColorRed {
			t.Fatalf("seed %d proposed the newest session's color", seed)
		}
		seen[d.Color] = true
	}
	// All five remaining colors should show up across seeds.
	if len(seen) != 5 {
		t.Errorf("saw %d distinct colors, want 5", len(seen))
	}
}

func TestRecentDistinctColors(t *testing.T) {
	sessions := []*Session{
		{ID: 1, Color: ColorOrange},
		{ID: 2, Color: ColorYellow},
		{ID: 3, Color: ColorBlue},
		{ID: 4, Color: ColorBlue},
		{ID: 5, Color: ColorRed},
	}

	recent := recentDistinctColors(sessions, 3)
	want := map[Color]bool{ColorRed: true, ColorBlue: true, ColorYellow: true}
	if len(recent) != len(want) {
		t.Fatalf("recentDistinctColors() = %v, want %v", recent, want)
	}
	for c := range want {
		if !recent[c] {
			t.Errorf("recentDistinctColors() missing %s", c)
		}
	}
}

func TestProposeDefaultsNilRng(t *testing.T) {
	// The shared random source path must not panic.
	d := ProposeDefaults(nil, nil)
	if !d.Color.Valid() {
		t.Errorf("Color = %q, want a valid tag", d.Color)
	}
}
