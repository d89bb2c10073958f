package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authd/internal/server/config"
	"github.com/iudanet/authd/pkg/api"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{
		Address:       ":0",
		DatabasePath:  ":memory:",
		TokenSecret:   "test-token-secret",
		SessionSecret: "test-session-secret",
		TokenTTL:      time.Hour,
		SessionTTL:    24 * time.Hour,
	}
	require.NoError(t, cfg.Validate())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := NewApp(context.Background(), cfg, logger, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storage.Close() })

	return app
}

func TestApp_Routes(t *testing.T) {
	app := setupTestApp(t)

	body, err := json.Marshal(api.RegisterRequest{
		Name:     "Alice",
		Username: "alice01",
		Password: "pw123",
	})
	require.NoError(t, err)

	// Регистрация через полный стек middleware + mux
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Вход
	body, err = json.Marshal(api.LoginRequest{Username: "alice01", Password: "pw123"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Data)
	require.NotEmpty(t, resp.Data.Token)

	// Dashboard по токену
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health check
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Незнакомый маршрут отдает 404
	req = httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Неверный метод отклоняется mux'ом
	req = httptest.NewRequest(http.MethodGet, "/register", nil)
	w = httptest.NewRecorder()
	app.server.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestApp_RunAndShutdown(t *testing.T) {
	app := setupTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	// Даем серверу стартовать, затем останавливаем
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
