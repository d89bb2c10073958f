package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/authd/internal/server/auth"
	"github.com/iudanet/authd/pkg/api"
)

// AuthHandler обрабатывает HTTP запросы аутентификации
type AuthHandler struct {
	logger        *slog.Logger
	service       *auth.Service
	sessionSecret []byte
}

// NewAuthHandler создает новый handler поверх Auth Service.
// sessionSecret используется только для подписи session cookie и
// независим от секрета подписи токенов
func NewAuthHandler(logger *slog.Logger, service *auth.Service, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		service:       service,
		sessionSecret: sessionSecret,
	}
}

// Register обрабатывает POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, api.Response{
			Status:  api.StatusFail,
			Message: "Registration failed. Invalid request body",
		})
		return
	}

	result, err := h.service.Register(ctx, req.Name, req.Username, req.Password)
	if err != nil {
		h.writeRegisterError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, api.Response{
		Status:  api.StatusSuccess,
		Message: "User registered successfully",
		Data:    &api.ResponseData{User: result.Name},
	})
}

// writeRegisterError сопоставляет ошибки регистрации с HTTP ответами
func (h *AuthHandler) writeRegisterError(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	switch {
	case errors.Is(err, auth.ErrMissingName):
		message = "Registration failed. Please insert your name"
	case errors.Is(err, auth.ErrMissingUsername):
		message = "Registration failed. Please insert your username"
	case errors.Is(err, auth.ErrMissingPassword):
		message = "Registration failed. Please insert your password"
	case errors.Is(err, auth.ErrUsernameTaken):
		message = "Registration failed. Username already exists"
	default:
		// Сбой хранилища или другая внутренняя ошибка: сообщение
		// причины отдается в поле error
		h.logger.ErrorContext(r.Context(), "registration failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, api.Response{
			Status:  api.StatusFail,
			Message: "Registration Failed",
			Error:   err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusBadRequest, api.Response{
		Status:  api.StatusFail,
		Message: message,
	})
}

// Login обрабатывает POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, api.Response{
			Status:  api.StatusFail,
			Message: "Login failed. Invalid request body",
		})
		return
	}

	result, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}

	// Устанавливаем подписанную session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signSessionID(h.sessionSecret, result.SessionID),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.writeJSON(w, http.StatusOK, api.Response{
		Status:  api.StatusSuccess,
		Message: "Login Success",
		Data:    &api.ResponseData{Token: result.Token},
	})
}

// writeLoginError сопоставляет ошибки входа с HTTP ответами
func (h *AuthHandler) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	switch {
	case errors.Is(err, auth.ErrMissingUsername):
		message = "Login failed. Please insert your username"
	case errors.Is(err, auth.ErrMissingPassword):
		message = "Login failed. Please insert your password"
	case errors.Is(err, auth.ErrUserNotFound):
		message = "User not found"
	case errors.Is(err, auth.ErrInvalidCredentials):
		message = "Login Failed. Please insert correct username and password"
	default:
		h.logger.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, api.Response{
			Status:  api.StatusFail,
			Message: err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusBadRequest, api.Response{
		Status:  api.StatusFail,
		Message: message,
	})
}

// Dashboard обрабатывает GET /dashboard.
// Доступ только с валидным bearer токеном
func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := h.service.Authenticate(ctx, r.Header.Get("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNoToken):
			h.writeJSON(w, http.StatusForbidden, api.Response{
				Status:  api.StatusUnauthorized,
				Message: "No Token Provided",
			})
		case errors.Is(err, auth.ErrUnauthorized):
			h.writeJSON(w, http.StatusForbidden, api.Response{
				Status:  api.StatusUnauthorized,
				Message: "Invalid token",
			})
		default:
			h.logger.ErrorContext(ctx, "authentication failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusInternalServerError, api.Response{
				Status:  api.StatusFail,
				Message: err.Error(),
			})
		}
		return
	}

	h.writeJSON(w, http.StatusOK, api.Response{
		Status:  api.StatusSuccess,
		Message: "This is dashboard page",
	})
}

// Logout обрабатывает POST /logout.
// Уничтожение сессии best-effort: сбой хранилища логируется,
// но клиенту отвечаем успехом в любом случае
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if sessionID, ok := verifySessionCookie(h.sessionSecret, cookie.Value); ok {
			if err := h.service.Logout(ctx, sessionID); err != nil {
				h.logger.ErrorContext(ctx, "logout failed", slog.Any("error", err))
			}
		} else {
			h.logger.WarnContext(ctx, "session cookie signature mismatch")
		}
	}

	// Сбрасываем cookie у клиента
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	h.writeJSON(w, http.StatusCreated, api.Response{
		Status:  api.StatusSuccess,
		Message: "Logout success",
	})
}

// writeJSON сериализует ответ в единый конверт API
func (h *AuthHandler) writeJSON(w http.ResponseWriter, status int, resp api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
