// Package server initializes and runs the authentication server.
// It wires storage, the token and auth services, HTTP handlers and
// middleware, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/authd/internal/server/auth"
	"github.com/iudanet/authd/internal/server/config"
	"github.com/iudanet/authd/internal/server/handlers"
	"github.com/iudanet/authd/internal/server/middleware"
	"github.com/iudanet/authd/internal/server/storage/sqlite"
	"github.com/iudanet/authd/internal/server/token"
)

const (
	shutdownTimeout      = 10 * time.Second
	sessionSweepInterval = time.Hour
)

// App собирает все компоненты сервера
type App struct {
	config  *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	server  *http.Server
}

// NewApp создает приложение: открывает хранилище и собирает
// HTTP сервер с полной цепочкой middleware
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	tokens := token.NewService([]byte(cfg.TokenSecret), cfg.TokenTTL)
	authService := auth.NewService(logger, store, store, tokens, cfg.SessionTTL)

	authHandler := handlers.NewAuthHandler(logger, authService, []byte(cfg.SessionSecret))
	healthHandler := handlers.NewHealthHandler(logger, version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /dashboard", authHandler.Dashboard)
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /healthz", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/healthz"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		config:  cfg,
		logger:  logger,
		storage: store,
		server:  srv,
	}, nil
}

// Run запускает HTTP сервер и фоновую очистку истекших сессий.
// Блокируется до отмены ctx, после чего делает graceful shutdown
func (app *App) Run(ctx context.Context) error {
	go app.sweepSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", slog.String("address", app.config.Address))
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		app.closeStorage()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.closeStorage()
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	app.closeStorage()
	return nil
}

// sweepSessions периодически удаляет истекшие сессии
func (app *App) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := app.storage.DeleteExpiredSessions(ctx)
			if err != nil {
				app.logger.Error("failed to sweep expired sessions", slog.Any("error", err))
				continue
			}
			if count > 0 {
				app.logger.Info("expired sessions removed", slog.Int("count", count))
			}
		}
	}
}

func (app *App) closeStorage() {
	if err := app.storage.Close(); err != nil {
		app.logger.Error("failed to close storage", slog.Any("error", err))
	}
}
