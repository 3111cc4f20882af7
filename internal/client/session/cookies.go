package session

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goldpos/jrdclient/internal/client/storage"
)

// Persist сохраняет куки jar для baseURL в локальное хранилище,
// чтобы сессия переживала перезапуск клиента
func Persist(ctx context.Context, store storage.SessionStorage, jar http.CookieJar, baseURL *url.URL, username string) error {
	cookies := jar.Cookies(baseURL)

	data := &storage.SessionData{
		Username: username,
		Cookies:  make([]storage.SessionCookie, 0, len(cookies)),
		SavedAt:  time.Now().UnixMilli(),
	}
	for _, c := range cookies {
		sc := storage.SessionCookie{Name: c.Name, Value: c.Value}
		if !c.Expires.IsZero() {
			sc.Expires = c.Expires.Unix()
		}
		data.Cookies = append(data.Cookies, sc)
	}

	if err := store.SaveSession(ctx, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Restore загружает сохраненную сессию и восстанавливает куки в jar.
// Возвращает ErrSessionNotFound если сессии нет.
func Restore(ctx context.Context, store storage.SessionStorage, jar http.CookieJar, baseURL *url.URL) (*storage.SessionData, error) {
	data, err := store.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	cookies := make([]*http.Cookie, 0, len(data.Cookies))
	for _, sc := range data.Cookies {
		c := &http.Cookie{Name: sc.Name, Value: sc.Value}
		if sc.Expires != 0 {
			c.Expires = time.Unix(sc.Expires, 0)
		}
		cookies = append(cookies, c)
	}
	jar.SetCookies(baseURL, cookies)

	return data, nil
}

// TokenExpiry достает срок действия из JWT значения сессионной куки
// без проверки подписи (подпись проверяет сервер, клиенту нужен
// только exp для команды status). ok=false если значение не JWT или
// без exp claim.
func TokenExpiry(rawToken string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
