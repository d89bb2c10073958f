package models

import "time"

// Account представляет учетную запись пользователя в системе
type Account struct {
	ID           string    `json:"id"`         // UUID учетной записи
	Name         string    `json:"name"`       // отображаемое имя
	Username     string    `json:"username"`   // уникальный username (case-sensitive)
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не отдается наружу
	CreatedAt    time.Time `json:"created_at"` // время создания
	UpdatedAt    time.Time `json:"updated_at"` // время последнего обновления
}

// Session представляет серверную сессию аутентифицированного пользователя.
// Хранит только минимальный identity claim, а не полный снимок учетной записи
type Session struct {
	ID        string    `json:"id"`         // UUID сессии
	AccountID string    `json:"account_id"` // ID учетной записи
	Username  string    `json:"username"`   // username на момент входа
	CreatedAt time.Time `json:"created_at"` // время создания сессии
	ExpiresAt time.Time `json:"expires_at"` // время истечения сессии
}
