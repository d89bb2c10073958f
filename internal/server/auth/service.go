package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/authd/internal/models"
	"github.com/iudanet/authd/internal/password"
	"github.com/iudanet/authd/internal/server/storage"
	"github.com/iudanet/authd/internal/server/token"
)

// Service реализует операции аутентификации поверх хранилища учетных
// записей, хранилища сессий и сервиса токенов
type Service struct {
	logger     *slog.Logger
	accounts   storage.AccountRepository
	sessions   storage.SessionStore
	tokens     *token.Service
	sessionTTL time.Duration
}

// NewService создает новый Auth Service.
// sessionTTL задает срок жизни серверных сессий
func NewService(
	logger *slog.Logger,
	accounts storage.AccountRepository,
	sessions storage.SessionStore,
	tokens *token.Service,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		logger:     logger,
		accounts:   accounts,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// RegisterResult результат успешной регистрации.
// Наружу отдается только отображаемое имя, хеш пароля не покидает сервис
type RegisterResult struct {
	Name string
}

// LoginResult результат успешного входа
type LoginResult struct {
	Token     string
	SessionID string
}

// Register регистрирует новую учетную запись.
// Порядок валидации фиксирован: имя, затем username, затем пароль;
// первая непройденная проверка определяет ошибку
func (s *Service) Register(ctx context.Context, name, username, pass string) (*RegisterResult, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if username == "" {
		return nil, ErrMissingUsername
	}
	if pass == "" {
		return nil, ErrMissingPassword
	}

	exists, err := s.accounts.AccountExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.Account{
		ID:           uuid.New().String(),
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		// Pre-check мог пройти у двух конкурентных регистраций сразу,
		// конфликт вставки означает тот же исход, что и занятый username
		if errors.Is(err, storage.ErrAccountExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "account registered",
		slog.String("username", username),
		slog.String("account_id", account.ID))

	return &RegisterResult{Name: account.Name}, nil
}

// Login проверяет учетные данные, выпускает bearer токен и создает
// серверную сессию с минимальным identity claim
func (s *Service) Login(ctx context.Context, username, pass string) (*LoginResult, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	if pass == "" {
		return nil, ErrMissingPassword
	}

	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	ok, err := password.Verify(pass, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Username:  account.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("username", account.Username),
		slog.String("account_id", account.ID),
		slog.String("session_id", session.ID))

	return &LoginResult{
		Token:     accessToken,
		SessionID: session.ID,
	}, nil
}

// Authenticate извлекает bearer токен из заголовка Authorization и
// верифицирует его. Возвращает ID учетной записи из identity claim
func (s *Service) Authenticate(ctx context.Context, authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrNoToken
	}

	// Ожидаем формат: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrNoToken
	}

	accountID, err := s.tokens.Verify(parts[1])
	if err != nil {
		s.logger.WarnContext(ctx, "token verification failed", slog.Any("error", err))
		return "", ErrUnauthorized
	}

	return accountID, nil
}

// Logout уничтожает сессию. Отсутствие сессии не считается ошибкой
// (logout идемпотентен), но сбой хранилища возвращается вызывающему
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		s.logger.ErrorContext(ctx, "failed to destroy session",
			slog.String("session_id", sessionID),
			slog.Any("error", err))
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	s.logger.InfoContext(ctx, "session destroyed", slog.String("session_id", sessionID))

	return nil
}
