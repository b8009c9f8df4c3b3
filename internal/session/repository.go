package session

import "context"

// Repository defines the storage interface for sessions.
type Repository interface {
	// CreateSession adds a new session and assigns its ID.
	CreateSession(ctx context.Context, s *Session) error

	// GetSession retrieves a session by ID. Returns nil if not found.
	GetSession(ctx context.Context, id int64) (*Session, error)

	// ListSessions returns all sessions for a profile, ordered by day
	// and start time.
	ListSessions(ctx context.Context, profileID int64) ([]*Session, error)

	// UpdateSession replaces all editable fields of a session.
	UpdateSession(ctx context.Context, s *Session) error

	// MoveSession updates a session's day and time range. This is the
	// single write path the grid gesture controllers commit through.
	MoveSession(ctx context.Context, id int64, day Day, start, end string) error

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
