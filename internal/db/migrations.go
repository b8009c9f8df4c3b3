package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '👤',
			theme TEXT NOT NULL DEFAULT 'classic'
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			name       TEXT NOT NULL,
			day        TEXT NOT NULL CHECK(day IN ('monday', 'tuesday', 'wednesday', 'thursday', 'friday')),
			start_time TIME NOT NULL,
			end_time   TIME NOT NULL,
			location   TEXT NOT NULL DEFAULT '',
			teacher    TEXT NOT NULL DEFAULT '',
			color      TEXT NOT NULL CHECK(color IN ('red', 'blue', 'green', 'yellow', 'purple', 'orange'))
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_profile ON sessions(profile_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_day ON sessions(profile_id, day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
