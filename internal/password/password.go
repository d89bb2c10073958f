package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost фактор стоимости bcrypt, встраивается в итоговый хеш
const Cost = bcrypt.DefaultCost

var (
	// ErrEmptyPassword indicates that an empty password was passed to Hash
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrCorruptHash indicates that the stored value is not a valid bcrypt hash
	ErrCorruptHash = errors.New("stored password hash is corrupt")
)

// Hash хеширует пароль через bcrypt с авто-генерируемой солью.
// Результат самодостаточен: содержит соль и cost-фактор.
// Для одного и того же пароля каждый вызов дает разный хеш
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify проверяет пароль против сохраненного bcrypt хеша.
// Несовпадение пароля не является ошибкой: возвращается (false, nil).
// Ошибка возвращается только если сохраненный хеш имеет неверный формат
func Verify(password, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// ErrHashTooShort, InvalidHashPrefixError и прочие проблемы формата
		return false, ErrCorruptHash
	}
}
