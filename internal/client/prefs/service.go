package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// DefaultPref - настройки для модуля, у которого нет сохраненных
// предпочтений: минимальная мощность, RF тракт выключен.
var DefaultPref = storage.ModulePref{
	Power:  0,
	Active: false,
	Mode:   string(models.ModeScan),
}

// Service управляет локальными предпочтениями модулей поверх
// PrefsStorage. Предпочтения - только клиентские дефолты для
// инициализации, не источник истины о текущем состоянии железа.
type Service struct {
	store  storage.PrefsStorage
	logger *slog.Logger

	mu        sync.Mutex
	listeners []func(string, storage.ModulePref)
}

func NewService(store storage.PrefsStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Get возвращает всю карту предпочтений.
// Пустое хранилище - не ошибка: возвращается пустая карта.
func (s *Service) Get(ctx context.Context) (*storage.ModulePrefs, error) {
	prefs, err := s.store.GetPrefs(ctx)
	if errors.Is(err, storage.ErrPrefsNotFound) {
		return &storage.ModulePrefs{
			Version: storage.PrefsVersion,
			Modules: map[string]storage.ModulePref{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prefs: %w", err)
	}
	if prefs.Modules == nil {
		prefs.Modules = map[string]storage.ModulePref{}
	}
	return prefs, nil
}

// Module возвращает предпочтения одного модуля.
// ok=false если для модуля ничего не сохранено.
func (s *Service) Module(ctx context.Context, id string) (storage.ModulePref, bool, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return storage.ModulePref{}, false, err
	}
	pref, ok := prefs.Modules[id]
	return pref, ok, nil
}

// SetModule сохраняет предпочтения одного модуля read-modify-write
func (s *Service) SetModule(ctx context.Context, id string, pref storage.ModulePref) error {
	// 1. Читаем текущую карту
	prefs, err := s.Get(ctx)
	if err != nil {
		return err
	}

	// 2. Обновляем запись модуля
	prefs.Modules[id] = pref

	// 3. Сохраняем карту целиком
	if err := s.store.SavePrefs(ctx, prefs); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}

	s.notify(id, pref)
	return nil
}

// InitSpecs строит запрос инициализации для перечисленных модулей:
// сохраненные предпочтения, для незнакомых модулей - DefaultPref
func (s *Service) InitSpecs(ctx context.Context, ids []string) (pkgapi.InitRequest, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return pkgapi.InitRequest{}, err
	}

	req := pkgapi.InitRequest{Modules: make([]pkgapi.InitModule, 0, len(ids))}
	for _, id := range ids {
		pref, ok := prefs.Modules[id]
		if !ok {
			pref = DefaultPref
		}
		req.Modules = append(req.Modules, pkgapi.InitModule{
			ID:     id,
			Power:  pref.Power,
			Mode:   pref.Mode,
			Active: pref.Active,
		})
	}
	return req, nil
}

// OnChange регистрирует локальный слушатель изменений предпочтений
func (s *Service) OnChange(fn func(id string, pref storage.ModulePref)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notify(id string, pref storage.ModulePref) {
	s.mu.Lock()
	listeners := make([]func(string, storage.ModulePref), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(id, pref)
	}
}
