// Package summary provides shared week summary utilities.
package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/mgaray/aula/internal/session"
)

// WeekSummary holds aggregated data for one profile's weekly schedule.
type WeekSummary struct {
	Sessions []*session.Session
	Stats    WeekStats
}

// WeekStats aggregates class time across the week.
type WeekStats struct {
	TotalMinutes  int
	SessionCount  int
	MinutesPerDay map[session.Day]int
	Teachers      []TeacherLoad
	BusiestDay    session.Day
}

// TeacherLoad is the weekly class time attributed to one teacher.
type TeacherLoad struct {
	Teacher string
	Minutes int
}

// SummarizeWeek builds week summary data from a session list.
func SummarizeWeek(sessions []*session.Session) *WeekSummary {
	stats := WeekStats{
		MinutesPerDay: make(map[session.Day]int),
	}

	teacherMinutes := make(map[string]int)
	for _, s := range sessions {
		d := s.Duration()
		stats.TotalMinutes += d
		stats.SessionCount++
		stats.MinutesPerDay[s.Day] += d
		if s.Teacher != "" {
			teacherMinutes[s.Teacher] += d
		}
	}

	for teacher, mins := range teacherMinutes {
		stats.Teachers = append(stats.Teachers, TeacherLoad{Teacher: teacher, Minutes: mins})
	}
	sort.Slice(stats.Teachers, func(i, j int) bool {
		if stats.Teachers[i].Minutes != stats.Teachers[j].Minutes {
			return stats.Teachers[i].Minutes > stats.Teachers[j].Minutes
		}
		return stats.Teachers[i].Teacher < stats.Teachers[j].Teacher
	})

	busiest := 0
	for _, day := range session.Days() {
		if mins := stats.MinutesPerDay[day]; mins > busiest {
			busiest = mins
			stats.BusiestDay = day
		}
	}

	return &WeekSummary{Sessions: sessions, Stats: stats}
}

// BuildWeekSummary loads a profile's sessions and summarizes them.
func BuildWeekSummary(ctx context.Context, repo session.Repository, profileID int64) (*WeekSummary, error) {
	sessions, err := repo.ListSessions(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	return SummarizeWeek(sessions), nil
}

// FormatHours renders minutes as e.g. "3h30m" or "45m".
func FormatHours(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}
