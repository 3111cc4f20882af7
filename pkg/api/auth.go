package api

// LoginRequest представляет запрос на аутентификацию.
// Сессия кука-based: сервер выставляет cookie в ответе.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
}

// ErrorResponse представляет структурированный ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
