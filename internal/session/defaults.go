package session

import "math/rand/v2"

// Defaults holds the proposed fields for a new session, computed when the
// creation form opens.
type Defaults struct {
	Day       Day
	StartTime string
	EndTime   string
	Color     Color
}

// recentColorWindow is how many recently-created distinct colors are
// excluded when proposing a color for a new session.
const recentColorWindow = 3

// ProposeDefaults proposes day, time range and color for a new session
// based on the full current session list.
//
// Day and start time follow the most recently created session (highest
// ID): the new session lands on the same day, starting where that one
// ends. The end time is start plus one hour, hour wrapped modulo 24.
// The color is drawn uniformly from the colors not used by the last few
// created sessions, so consecutive additions look distinct.
//
// rng may be nil, in which case the shared random source is used.
func ProposeDefaults(sessions []*Session, rng *rand.Rand) Defaults {
	if len(sessions) == 0 {
		return Defaults{
			Day:       Monday,
			StartTime: "09:00",
			EndTime:   "10:00",
			Color:     pickColor(Colors(), rng),
		}
	}

	newest := sessions[0]
	for _, s := range sessions[1:] {
		if s.ID > newest.ID {
			newest = s
		}
	}

	start := newest.EndTime
	return Defaults{
		Day:       newest.Day,
		StartTime: start,
		EndTime:   AddMinutes(start, 60),
		Color:     proposeColor(sessions, newest, rng),
	}
}

// proposeColor picks a color not among the up-to-3 most recently created
// distinct colors. If that leaves nothing (cannot normally happen with
// six colors and a window of three), it falls back to excluding only the
// newest session's color.
func proposeColor(sessions []*Session, newest *Session, rng *rand.Rand) Color {
	recent := recentDistinctColors(sessions, recentColorWindow)

	fresh := excludeColors(Colors(), recent)
	if len(fresh) > 0 {
		return pickColor(fresh, rng)
	}

	remaining := excludeColors(Colors(), map[Color]bool{newest.Color: true})
	return pickColor(remaining, rng)
}

// recentDistinctColors walks sessions in descending ID order and collects
// distinct colors until limit is reached.
func recentDistinctColors(sessions []*Session, limit int) map[Color]bool {
	ordered := make([]*Session, len(sessions))
	copy(ordered, sessions)
	// Selection by repeated max keeps this allocation-light for the small
	// lists a weekly schedule holds.
	recent := make(map[Color]bool, limit)
	for len(recent) < limit {
		var best *Session
		bestIdx := -1
		for i, s := range ordered {
			if s != nil && (best == nil || s.ID > best.ID) {
				best = s
				bestIdx = i
			}
		}
		if best == nil {
			break
		}
		ordered[bestIdx] = nil
		recent[best.Color] = true
	}
	return recent
}

func excludeColors(all []Color, excluded map[Color]bool) []Color {
	var result []Color
	for _, c := range all {
		if !excluded[c] {
			result = append(result, c)
		}
	}
	return result
}

func pickColor(colors []Color, rng *rand.Rand) Color {
	if rng != nil {
		return colors[rng.IntN(len(colors))]
	}
	return colors[rand.IntN(len(colors))]
}
