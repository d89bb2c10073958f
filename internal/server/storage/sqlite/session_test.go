package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authd/internal/models"
	"github.com/iudanet/authd/internal/server/storage"
)

func newTestSession(ttl time.Duration) *models.Session {
	now := time.Now()
	return &models.Session{
		ID:        uuid.New().String(),
		AccountID: uuid.New().String(),
		Username:  "alice01",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionStore_CreateAndGetSession(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	session := newTestSession(24 * time.Hour)
	require.NoError(t, s.CreateSession(ctx, session))

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.AccountID, got.AccountID)
	assert.Equal(t, session.Username, got.Username)
}

func TestSessionStore_GetSession_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	got, err := s.GetSession(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestSessionStore_GetSession_Expired(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Истекшая сессия невидима, хотя строка еще в таблице
	session := newTestSession(-time.Minute)
	require.NoError(t, s.CreateSession(ctx, session))

	got, err := s.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, got)

	// До очистки строка физически остается в таблице
	var count int
	err = s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE id = ?`, session.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionStore_DeleteSession(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	session := newTestSession(24 * time.Hour)
	require.NoError(t, s.CreateSession(ctx, session))

	require.NoError(t, s.DeleteSession(ctx, session.ID))

	// Последующий lookup ничего не находит
	_, err := s.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionStore_DeleteSession_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.DeleteSession(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionStore_DeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	expired1 := newTestSession(-time.Hour)
	expired2 := newTestSession(-time.Minute)
	active := newTestSession(24 * time.Hour)

	require.NoError(t, s.CreateSession(ctx, expired1))
	require.NoError(t, s.CreateSession(ctx, expired2))
	require.NoError(t, s.CreateSession(ctx, active))

	count, err := s.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Активная сессия не тронута
	got, err := s.GetSession(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)
}
