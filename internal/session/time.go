package session

import "fmt"

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes adds a number of minutes to a "HH:MM" time, wrapping the
// hour component modulo 24 if the result crosses midnight.
func AddMinutes(t string, mins int) string {
	total := TimeToMinutes(t) + mins
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// TimesOverlap returns true if two time ranges overlap.
// Two time ranges overlap if: start1 < end2 AND start2 < end1
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// FormatTime12h formats a "HH:MM" time as 12-hour, e.g. "9:00 AM".
// Purely presentational, no validation.
func FormatTime12h(t string) string {
	hour := TimeToMinutes(t) / 60
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, t[3:], ampm)
}

// FormatTimeCompact formats a "HH:MM" time as a dense 12-hour label,
// e.g. "9:00a", for narrow session blocks.
func FormatTimeCompact(t string) string {
	hour := TimeToMinutes(t) / 60
	suffix := "a"
	if hour >= 12 {
		suffix = "p"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s%s", hour12, t[3:], suffix)
}
