package storage

import (
	"context"

	"github.com/iudanet/authd/internal/models"
)

// SessionStore defines interface for server-side session persistence
type SessionStore interface {
	// CreateSession stores a new session record
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by id.
	// Returns ErrSessionNotFound if the session doesn't exist or has expired
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// DeleteSession destroys a session by id.
	// Returns ErrSessionNotFound if the session doesn't exist
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes all expired sessions.
	// Returns the number of sessions removed
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
