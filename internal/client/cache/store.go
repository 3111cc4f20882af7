package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Key идентифицирует одну запись кэша. Составляется из кортежа строк,
// как query key во фронтенд кэшах.
type Key string

// NewKey собирает ключ из частей
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, "/"))
}

// FetchFunc загружает каноническое значение записи с сервера
type FetchFunc func(ctx context.Context) (any, error)

// Reducer - чистая функция мутации кэша: (предыдущее значение, был ли
// установлен) -> (новое значение, писать ли). Выполняется под локом
// записи, поэтому не должна блокироваться и ходить в сеть.
type Reducer func(prev any, ok bool) (next any, write bool)

// entry - одна запись кэша с метаданными
type entry struct {
	value     any
	hasValue  bool
	stale     bool
	updatedAt time.Time

	fetcher FetchFunc
	policy  Policy

	// отмена и поколение текущего in-flight fetch: результат пишется
	// только если за время запроса не было CancelFetch/нового fetch
	fetchCancel context.CancelFunc
	fetchGen    uint64

	subs map[uint64]func(any)
}

// Store - процессный query-кэш: значение + метаданные по ключу.
// Единственный общий мутабельный ресурс клиента; все синхронные
// мутации сериализуются мьютексом (аналог single-writer per key).
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	nextSub uint64
	logger  *slog.Logger
}

// NewStore создает пустой кэш
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		entries: make(map[Key]*entry),
		logger:  logger,
	}
}

func (s *Store) entryLocked(key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{subs: make(map[uint64]func(any))}
		s.entries[key] = e
	}
	return e
}

// Get возвращает текущее закэшированное значение
func (s *Store) Get(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !e.hasValue {
		return nil, false
	}
	return e.value, true
}

// Set записывает значение, снимает флаг stale и будит подписчиков
func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.value = value
	e.hasValue = true
	e.stale = false
	e.updatedAt = time.Now()
	subs := collectSubs(e)
	s.mu.Unlock()

	// Подписчиков зовем вне лока: коллбек может читать кэш
	for _, fn := range subs {
		fn(value)
	}
}

// Patch атомарно применяет reducer к записи.
// Возвращает true если значение было записано.
func (s *Store) Patch(key Key, reduce Reducer) bool {
	s.mu.Lock()
	e := s.entryLocked(key)
	next, write := reduce(e.value, e.hasValue)
	var subs []func(any)
	if write {
		e.value = next
		e.hasValue = true
		e.updatedAt = time.Now()
		subs = collectSubs(e)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return write
}

// Delete убирает значение записи, оставляя fetcher и подписчиков.
// Нужен rollback'у мутаций: если до мутации значения не было,
// откат должен вернуть запись в состояние "не загружено".
func (s *Store) Delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return
	}
	e.value = nil
	e.hasValue = false
	e.stale = false
}

// Subscribe регистрирует коллбек на обновления записи.
// Возвращает функцию отписки.
func (s *Store) Subscribe(key Key, fn func(any)) func() {
	s.mu.Lock()
	e := s.entryLocked(key)
	id := s.nextSub
	s.nextSub++
	e.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e, ok := s.entries[key]; ok {
			delete(e.subs, id)
		}
	}
}

func collectSubs(e *entry) []func(any) {
	if len(e.subs) == 0 {
		return nil
	}
	subs := make([]func(any), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	return subs
}
