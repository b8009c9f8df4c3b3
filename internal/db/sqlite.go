// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mgaray/aula/internal/profile"
	"github.com/mgaray/aula/internal/session"
)

// SQLite implements session.Repository and profile.Repository.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// EnsureDefaultProfile creates a "Student" profile when none exist, so a
// fresh database always has a selectable profile. Returns the first
// profile either way.
func (s *SQLite) EnsureDefaultProfile(ctx context.Context) (*profile.Profile, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		return profiles[0], nil
	}

	p := &profile.Profile{Name: "Student", Emoji: profile.Emojis[0], Theme: profile.DefaultTheme}
	if err := s.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----------------------------------------------------------------------
// profile.Repository
// ----------------------------------------------------------------------

// CreateProfile adds a new profile, enforcing the profile limit.
func (s *SQLite) CreateProfile(ctx context.Context, p *profile.Profile) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return fmt.Errorf("counting profiles: %w", err)
	}
	if count >= profile.MaxProfiles {
		return profile.ErrProfileLimit
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (name, emoji, theme) VALUES (?, ?, ?)`,
		p.Name, p.Emoji, p.Theme,
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	p.ID = id

	return nil
}

// GetProfile retrieves a profile by ID. Returns nil if not found.
func (s *SQLite) GetProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	var p profile.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, emoji, theme FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Emoji, &p.Theme)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	return &p, nil
}

// ListProfiles returns all profiles in creation order.
func (s *SQLite) ListProfiles(ctx context.Context) ([]*profile.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, emoji, theme FROM profiles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []*profile.Profile
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Emoji, &p.Theme); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

// UpdateProfile replaces a profile's editable fields.
func (s *SQLite) UpdateProfile(ctx context.Context, p *profile.Profile) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET name = ?, emoji = ?, theme = ? WHERE id = ?`,
		p.Name, p.Emoji, p.Theme, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

// DeleteProfile removes a profile and, via the foreign key cascade, its
// sessions. The last remaining profile cannot be deleted.
func (s *SQLite) DeleteProfile(ctx context.Context, id int64) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return fmt.Errorf("counting profiles: %w", err)
	}
	if count <= 1 {
		return profile.ErrLastProfile
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

// ----------------------------------------------------------------------
// session.Repository
// ----------------------------------------------------------------------

// CreateSession adds a new session. AUTOINCREMENT keeps IDs increasing
// with creation order, which the default-assignment heuristic relies on.
func (s *SQLite) CreateSession(ctx context.Context, sess *session.Session) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (profile_id, name, day, start_time, end_time, location, teacher, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ProfileID, sess.Name, sess.Day, sess.StartTime, sess.EndTime,
		sess.Location, sess.Teacher, sess.Color,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	sess.ID = id

	return nil
}

// GetSession retrieves a session by ID. Returns nil if not found.
func (s *SQLite) GetSession(ctx context.Context, id int64) (*session.Session, error) {
	var sess session.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, name, day, start_time, end_time, location, teacher, color
		FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.ProfileID, &sess.Name, &sess.Day,
		&sess.StartTime, &sess.EndTime, &sess.Location, &sess.Teacher, &sess.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return &sess, nil
}

// ListSessions returns all sessions for a profile, ordered by day and
// start time.
func (s *SQLite) ListSessions(ctx context.Context, profileID int64) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_id, name, day, start_time, end_time, location, teacher, color
		FROM sessions
		WHERE profile_id = ?
		ORDER BY CASE day
			WHEN 'monday' THEN 0 WHEN 'tuesday' THEN 1 WHEN 'wednesday' THEN 2
			WHEN 'thursday' THEN 3 WHEN 'friday' THEN 4 END,
			start_time`, profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*session.Session
	for rows.Next() {
		var sess session.Session
		if err := rows.Scan(&sess.ID, &sess.ProfileID, &sess.Name, &sess.Day,
			&sess.StartTime, &sess.EndTime, &sess.Location, &sess.Teacher, &sess.Color); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// UpdateSession replaces all editable fields of a session.
func (s *SQLite) UpdateSession(ctx context.Context, sess *session.Session) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET name = ?, day = ?, start_time = ?, end_time = ?, location = ?, teacher = ?, color = ?
		WHERE id = ?`,
		sess.Name, sess.Day, sess.StartTime, sess.EndTime,
		sess.Location, sess.Teacher, sess.Color, sess.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// MoveSession updates a session's day and time range in place. It is the
// single write path for drag and resize commits.
func (s *SQLite) MoveSession(ctx context.Context, id int64, day session.Day, start, end string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET day = ?, start_time = ?, end_time = ? WHERE id = ?`,
		day, start, end, id,
	)
	if err != nil {
		return fmt.Errorf("moving session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes a session.
func (s *SQLite) DeleteSession(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}
