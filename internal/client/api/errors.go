package api

import (
	"encoding/json"
	"fmt"

	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// Error - ошибка HTTP запроса с сырым телом ответа сервера.
// Тело сохраняется как есть, чтобы вызывающий мог сам разобрать
// структурированное сообщение.
type Error struct {
	Status int    // HTTP статус код
	Body   string // сырое тело ответа
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Body)
}

// Message возвращает структурированное сообщение сервера, если тело
// парсится как ErrorResponse, иначе сырой текст ответа
func (e *Error) Message() string {
	var resp pkgapi.ErrorResponse
	if err := json.Unmarshal([]byte(e.Body), &resp); err == nil {
		if resp.Message != "" {
			return resp.Message
		}
		if resp.Error != "" {
			return resp.Error
		}
	}
	return e.Body
}
