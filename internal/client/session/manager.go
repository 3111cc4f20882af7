package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrLoggedOut возвращается после неудачного refresh: сессия считается
// окончательно разлогиненной до конца жизни процесса.
var ErrLoggedOut = errors.New("session is logged out")

// RefreshFunc выполняет сырой запрос POST /api/auth/refresh.
// Не должна сама пытаться рефрешиться при 401.
type RefreshFunc func(ctx context.Context) error

// inflight - один выполняющийся refresh, на который подписаны все
// конкурентные вызовы Refresh
type inflight struct {
	done chan struct{}
	err  error
}

// Manager владеет состоянием сессии процесса: дедупликация refresh
// запросов и постоянный флаг логаута. Явный объект вместо глобальных
// переменных - состояние инжектируется и изолируется в тестах.
type Manager struct {
	mu        sync.Mutex
	refresh   *inflight
	loggedOut bool
	refreshFn RefreshFunc
	logger    *slog.Logger
}

// NewManager создает менеджер сессии
func NewManager(refreshFn RefreshFunc, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		refreshFn: refreshFn,
		logger:    logger,
	}
}

// Refresh обновляет сессию. Гарантии:
//   - одновременно выполняется не больше одного refresh запроса;
//   - все конкурентные вызовы ждут один и тот же запрос и получают
//     его результат;
//   - после неудачного refresh все последующие вызовы сразу получают
//     ErrLoggedOut без похода в сеть.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	if m.loggedOut {
		m.mu.Unlock()
		return ErrLoggedOut
	}

	// Уже есть выполняющийся refresh - подписываемся на него
	if m.refresh != nil {
		fl := m.refresh
		m.mu.Unlock()
		select {
		case <-fl.done:
			return fl.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// Мы первые - запускаем refresh, остальные будут ждать
	fl := &inflight{done: make(chan struct{})}
	m.refresh = fl
	m.mu.Unlock()

	err := m.refreshFn(ctx)

	m.mu.Lock()
	if err != nil {
		// Второй шанс не положен: сессия разлогинена насовсем
		m.loggedOut = true
		m.logger.Warn("session refresh failed, logging out", "error", err)
		fl.err = err
	}
	m.refresh = nil
	m.mu.Unlock()

	close(fl.done)
	return fl.err
}

// LoggedOut сообщает, была ли сессия окончательно разлогинена
func (m *Manager) LoggedOut() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggedOut
}
