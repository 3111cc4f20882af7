package storage

import "context"

// SessionStorage defines interface for persisting the server session between
// client runs. The session is cookie-based: we keep the cookie values
// and restore them into the HTTP cookie jar on startup.
type SessionStorage interface {
	// SaveSession stores session data as-is
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error
}

// SessionCookie - одна сессионная кука в сериализуемом виде
type SessionCookie struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Expires int64  `json:"expires,omitempty"` // epoch seconds, 0 = session cookie
}

// SessionData represents the persisted session
type SessionData struct {
	Username string          `json:"username"`
	Cookies  []SessionCookie `json:"cookies"`
	SavedAt  int64           `json:"saved_at"` // epoch millis
}
