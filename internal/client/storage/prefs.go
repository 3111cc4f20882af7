package storage

import "context"

//go:generate moq -out prefs_mock.go . PrefsStorage

// PrefsVersion - текущая версия схемы хранения предпочтений.
// Версия хранится вместе с данными для будущих миграций.
const PrefsVersion = 1

// PrefsStorage defines interface for the local per-module preference store.
// Preferences are client-side only and never authoritative for current
// device state: they are used as defaults when (re-)initializing modules.
type PrefsStorage interface {
	// SavePrefs stores the whole preference map
	SavePrefs(ctx context.Context, prefs *ModulePrefs) error

	// GetPrefs retrieves the stored preference map
	// Returns ErrPrefsNotFound if nothing was stored yet
	GetPrefs(ctx context.Context) (*ModulePrefs, error)
}

// ModulePref - желаемые настройки одного модуля
type ModulePref struct {
	Power  int    `json:"power"`
	Active bool   `json:"active"`
	Mode   string `json:"mode"`
}

// ModulePrefs - версионированная карта настроек по id модуля
type ModulePrefs struct {
	Version int                   `json:"version"`
	Modules map[string]ModulePref `json:"modules"`
}
