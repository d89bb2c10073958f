package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifySessionCookie(t *testing.T) {
	secret := []byte("cookie-secret")

	value := signSessionID(secret, "session-123")
	assert.Contains(t, value, "session-123.")

	sessionID, ok := verifySessionCookie(secret, value)
	require.True(t, ok)
	assert.Equal(t, "session-123", sessionID)
}

func TestVerifySessionCookie_Tampered(t *testing.T) {
	secret := []byte("cookie-secret")
	value := signSessionID(secret, "session-123")

	tests := []struct {
		name  string
		value string
	}{
		{"empty value", ""},
		{"no signature separator", "session-123"},
		{"empty session id", ".signature"},
		{"modified session id", "session-456" + value[len("session-123"):]},
		{"truncated signature", value[:len(value)-4]},
		{"raw session id with dot", "session-123."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID, ok := verifySessionCookie(secret, tt.value)
			assert.False(t, ok)
			assert.Empty(t, sessionID)
		})
	}
}

func TestVerifySessionCookie_WrongSecret(t *testing.T) {
	value := signSessionID([]byte("secret-one"), "session-123")

	sessionID, ok := verifySessionCookie([]byte("secret-two"), value)
	assert.False(t, ok)
	assert.Empty(t, sessionID)
}
