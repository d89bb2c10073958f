package api

// Статусы ответов API
const (
	StatusSuccess      = "success"
	StatusFail         = "fail"
	StatusUnauthorized = "unauthorized"
)

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Username string `json:"username"` // уникальный username
	Password string `json:"password"` // пароль в открытом виде, только в запросе
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResponseData полезная нагрузка успешного ответа
type ResponseData struct {
	User  string `json:"user,omitempty"`  // отображаемое имя после регистрации
	Token string `json:"token,omitempty"` // bearer токен после входа
}

// Response представляет единый конверт ответа API
type Response struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Data    *ResponseData `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"` // детали внутренней ошибки
}
