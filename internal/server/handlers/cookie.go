package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// SessionCookieName имя cookie, в которой клиенту передается session id
const SessionCookieName = "session_id"

// signSessionID подписывает session id HMAC-SHA256 под session secret.
// Значение cookie имеет вид "<id>.<подпись>", так что украденная из БД
// запись сессии сама по себе не превращается в валидную cookie
func signSessionID(secret []byte, sessionID string) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(sessionID))
	signature := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return sessionID + "." + signature
}

// verifySessionCookie проверяет подпись значения cookie и возвращает
// session id. Сравнение выполняется за константное время
func verifySessionCookie(secret []byte, value string) (string, bool) {
	idx := strings.LastIndex(value, ".")
	if idx <= 0 {
		return "", false
	}

	sessionID := value[:idx]
	expected := signSessionID(secret, sessionID)

	if subtle.ConstantTimeCompare([]byte(expected), []byte(value)) != 1 {
		return "", false
	}

	return sessionID, true
}
