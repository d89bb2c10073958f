package auth

import "errors"

// Типизированные ошибки операций Auth Service.
// Handlers сопоставляют их с HTTP статусами через errors.Is;
// все прочие ошибки считаются внутренними (HTTP 500)
var (
	// ErrMissingName пустое имя при регистрации
	ErrMissingName = errors.New("name is required")

	// ErrMissingUsername пустой username
	ErrMissingUsername = errors.New("username is required")

	// ErrMissingPassword пустой пароль
	ErrMissingPassword = errors.New("password is required")

	// ErrUsernameTaken username уже занят (по pre-check или по конфликту вставки)
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound учетная запись не найдена при входе
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials пароль не совпал с сохраненным хешем
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoToken отсутствует или не распознан bearer токен в заголовке
	ErrNoToken = errors.New("no token provided")

	// ErrUnauthorized токен не прошел верификацию (подпись, формат или срок)
	ErrUnauthorized = errors.New("invalid token")
)
