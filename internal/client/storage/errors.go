package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrPrefsNotFound indicates that no module preferences are stored yet
	ErrPrefsNotFound = errors.New("module preferences not found")

	// ErrPrefsVersion indicates that stored preferences have an unsupported version
	ErrPrefsVersion = errors.New("unsupported module preferences version")
)
