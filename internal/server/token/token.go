package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки верификации токена
var (
	// ErrMalformed indicates that the token structure could not be parsed
	ErrMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid indicates that the token signature check failed
	ErrSignatureInvalid = errors.New("token signature is invalid")

	// ErrExpired indicates that the token expiry time has elapsed
	ErrExpired = errors.New("token has expired")
)

// Claims представляет JWT claims с identity claim учетной записи
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// Service выпускает и верифицирует подписанные bearer токены.
// Секрет подписи задается при создании и далее не меняется
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService создает новый сервис токенов.
// secret должен быть криптографически стойкой случайной строкой,
// ttl задает срок жизни выпускаемых токенов
func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
	}
}

// TTL возвращает срок жизни выпускаемых токенов
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue выпускает подписанный токен для учетной записи.
// Срок истечения: время выпуска + TTL
func (s *Service) Issue(accountID string) (string, error) {
	now := time.Now()

	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "authd",
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify верифицирует токен и возвращает identity claim.
// Истекший токен невалиден независимо от корректности подписи
func (s *Service) Verify(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC подпись
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureInvalid
		default:
			return "", ErrMalformed
		}
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", ErrMalformed
	}

	return claims.AccountID, nil
}
