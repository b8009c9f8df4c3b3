package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
)

func testDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testProfile(t *testing.T, s *SQLite) *profile.Profile {
	t.Helper()
	p := &profile.Profile{Name: "Test", Emoji: "🎓", Theme: "classic"}
	if err := s.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}
	return p
}

func mustCreateSession(t *testing.T, s *SQLite, profileID int64, name, day, start, end string) *session.Session {
	t.Helper()
	sess, err := session.New(profileID, name, day, start, end, "", "", "blue")
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}
	if err := s.CreateSession(context.Background(), sess); err != nil {
		t.Fatalf("CreateSession() error: %v", err)
	}
	return sess
}

func TestEnsureDefaultProfile(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()

	p, err := s.EnsureDefaultProfile(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultProfile() error: %v", err)
	}
	if p.Name != "Student" {
		t.Errorf("default profile name = %q, want Student", p.Name)
	}

	// A second call returns the same profile instead of creating more.
	again, err := s.EnsureDefaultProfile(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultProfile() again error: %v", err)
	}
	if again.ID != p.ID {
		t.Errorf("second call returned profile %d, want %d", again.ID, p.ID)
	}
}

func TestProfileLimit(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()

	for i := 0; i < profile.MaxProfiles; i++ {
		p := &profile.Profile{Name: "P", Emoji: "👤", Theme: "classic"}
		if err := s.CreateProfile(ctx, p); err != nil {
			t.Fatalf("CreateProfile() %d error: %v", i, err)
		}
	}

	p := &profile.Profile{Name: "Extra", Emoji: "👤", Theme: "classic"}
	if err := s.CreateProfile(ctx, p); !errors.Is(err, profile.ErrProfileLimit) {
		t.Errorf("CreateProfile() over limit error = %v, want ErrProfileLimit", err)
	}
}

func TestDeleteLastProfile(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p := testProfile(t, s)

	if err := s.DeleteProfile(ctx, p.ID); !errors.Is(err, profile.ErrLastProfile) {
		t.Errorf("DeleteProfile() on last profile error = %v, want ErrLastProfile", err)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p1 := testProfile(t, s)
	p2 := testProfile(t, s)
	mustCreateSession(t, s, p2.ID, "Algebra", "monday", "09:00", "10:00")

	if err := s.DeleteProfile(ctx, p2.ID); err != nil {
		t.Fatalf("DeleteProfile() error: %v", err)
	}

	sessions, err := s.ListSessions(ctx, p2.ID)
	if err != nil {
		t.Fatalf("ListSessions() error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions after cascade delete = %d, want 0", len(sessions))
	}
	_ = p1
}

func TestUpdateProfile(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p := testProfile(t, s)

	p.Name = "Renamed"
	p.Theme = "ocean"
	if err := s.UpdateProfile(ctx, p); err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}

	got, err := s.GetProfile(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProfile() error: %v", err)
	}
	if got.Name != "Renamed" || got.Theme != "ocean" {
		t.Errorf("GetProfile() = %+v, update not persisted", got)
	}

	missing := &profile.Profile{ID: 999, Name: "x", Emoji: "👤", Theme: "classic"}
	if err := s.UpdateProfile(ctx, missing); !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("UpdateProfile() missing error = %v, want ErrProfileNotFound", err)
	}
}

func TestSessionCRUD(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p := testProfile(t, s)

	created := mustCreateSession(t, s, p.ID, "Algebra", "monday", "09:00", "10:00")
	if created.ID == 0 {
		t.Fatal("CreateSession() should assign an ID")
	}

	got, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession() error: %v", err)
	}
	if got == nil || got.Name != "Algebra" || got.Day != session.Monday {
		t.Errorf("GetSession() = %+v", got)
	}

	got.Name = "Algebra II"
	got.Color = session.ColorGreen
	if err := s.UpdateSession(ctx, got); err != nil {
		t.Fatalf("UpdateSession() error: %v", err)
	}
	updated, _ := s.GetSession(ctx, created.ID)
	if updated.Name != "Algebra II" || updated.Color != session.ColorGreen {
		t.Errorf("UpdateSession() not persisted: %+v", updated)
	}

	if err := s.DeleteSession(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}
	gone, err := s.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession() after delete error: %v", err)
	}
	if gone != nil {
		t.Error("GetSession() after delete should return nil")
	}

	if err := s.DeleteSession(ctx, created.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("DeleteSession() missing error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionIDsIncrease(t *testing.T) {
	s := testDB(t)
	p := testProfile(t, s)

	first := mustCreateSession(t, s, p.ID, "A", "monday", "09:00", "10:00")
	second := mustCreateSession(t, s, p.ID, "B", "monday", "10:00", "11:00")
	if second.ID <= first.ID {
		t.Errorf("IDs not increasing: %d then %d", first.ID, second.ID)
	}
}

func TestListSessionsOrder(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p := testProfile(t, s)

	mustCreateSession(t, s, p.ID, "Fri", "friday", "09:00", "10:00")
	mustCreateSession(t, s, p.ID, "MonLate", "monday", "14:00", "15:00")
	mustCreateSession(t, s, p.ID, "MonEarly", "monday", "08:30", "09:30")

	sessions, err := s.ListSessions(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListSessions() error: %v", err)
	}

	var names []string
	for _, sess := range sessions {
		names = append(names, sess.Name)
	}
	want := []string{"MonEarly", "MonLate", "Fri"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestMoveSession(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p := testProfile(t, s)
	created := mustCreateSession(t, s, p.ID, "Algebra", "monday", "09:00", "10:00")

	if err := s.MoveSession(ctx, created.ID, session.Thursday, "14:15", "15:15"); err != nil {
		t.Fatalf("MoveSession() error: %v", err)
	}

	got, _ := s.GetSession(ctx, created.ID)
	if got.Day != session.Thursday || got.StartTime != "14:15" || got.EndTime != "15:15" {
		t.Errorf("MoveSession() not persisted: %+v", got)
	}

	if err := s.MoveSession(ctx, 999, session.Monday, "09:00", "10:00"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("MoveSession() missing error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionsScopedByProfile(t *testing.T) {
	s := testDB(t)
	ctx := context.Background()
	p1 := testProfile(t, s)
	p2 := testProfile(t, s)

	mustCreateSession(t, s, p1.ID, "Mine", "monday", "09:00", "10:00")
	mustCreateSession(t, s, p2.ID, "Theirs", "monday", "09:00", "10:00")

	sessions, err := s.ListSessions(ctx, p1.ID)
	if err != nil {
		t.Fatalf("ListSessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Name != "Mine" {
		t.Errorf("ListSessions(p1) = %v, want only p1's session", sessions)
	}
}
