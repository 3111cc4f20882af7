package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/goldpos/jrdclient/internal/client/session"
)

// Client представляет типизированный HTTP клиент к серверу магазина.
// Аутентификация cookie-based: jar подкладывает сессионную куку в
// каждый запрос, на 401 выполняется ровно один общий refresh и ровно
// один повтор исходного запроса.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	session    *session.Manager
	logger     *slog.Logger
}

// NewClient создает новый API клиент
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
	// Менеджер сессии зовет сырой refresh без повторной 401 логики
	c.session = session.NewManager(c.rawRefresh, logger)
	return c, nil
}

// BaseURL возвращает разобранный базовый адрес сервера
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Jar возвращает cookie jar клиента (для persist/restore сессии)
func (c *Client) Jar() http.CookieJar {
	return c.httpClient.Jar
}

// Session возвращает менеджер сессии клиента
func (c *Client) Session() *session.Manager {
	return c.session
}

// do выполняет запрос с одним повтором после успешного refresh сессии
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	err := c.doOnce(ctx, method, path, body, result)
	if err == nil {
		return nil
	}

	// Только 401 лечится рефрешем; остальное отдаем вызывающему
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	// Все конкурентные 401 сходятся на одном refresh запросе
	if refreshErr := c.session.Refresh(ctx); refreshErr != nil {
		return fmt.Errorf("session refresh failed: %w", refreshErr)
	}

	// Ровно один повтор исходного запроса
	return c.doOnce(ctx, method, path, body, result)
}

// doOnce выполняет один HTTP запрос без 401 логики
func (c *Client) doOnce(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL.JoinPath(path).String()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа целиком: оно нужно и для ошибки, и для декода
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Не-2xx превращаем в Error с сырым телом
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Body: string(respBody)}
	}

	// Пустое тело декодируется как пустой объект, а не ошибка парсинга
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// rawRefresh выполняет POST /api/auth/refresh без 401 повтора.
// Используется только менеджером сессии.
func (c *Client) rawRefresh(ctx context.Context) error {
	if err := c.doOnce(ctx, http.MethodPost, "/api/auth/refresh", nil, nil); err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	return nil
}
