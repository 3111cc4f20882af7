package cache

import (
	"context"
	"fmt"
)

// RegisterFetcher привязывает к ключу функцию загрузки и политику.
// Fetcher нужен для Invalidate: принудительная перезагрузка возможна
// только у записей, умеющих себя загружать.
func (s *Store) RegisterFetcher(key Key, fn FetchFunc, policy Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entryLocked(key)
	e.fetcher = fn
	e.policy = policy
}

// Fetch возвращает значение записи согласно политике: свежий кэш
// отдается без сети (если политика доверяет кэшу), иначе выполняется
// загрузка с сервера и запись результата.
func (s *Store) Fetch(ctx context.Context, key Key) (any, error) {
	s.mu.Lock()
	e := s.entryLocked(key)
	if e.fetcher == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("no fetcher registered for key %q", key)
	}

	// Политика решает можно ли отдать кэш без сети
	if e.hasValue && !e.stale && e.policy.Fresh(e.updatedAt) {
		value := e.value
		s.mu.Unlock()
		return value, nil
	}

	fetcher := e.fetcher
	retries := e.policy.Retry

	// Запоминаем поколение: если за время запроса случится CancelFetch
	// или новый fetch, наш результат не должен попасть в кэш
	fetchCtx, cancel := context.WithCancel(ctx)
	e.fetchGen++
	gen := e.fetchGen
	e.fetchCancel = cancel
	s.mu.Unlock()

	var value any
	var err error
	for attempt := 0; ; attempt++ {
		value, err = fetcher(fetchCtx)
		if err == nil || attempt >= retries || fetchCtx.Err() != nil {
			break
		}
	}
	cancel()

	if err != nil {
		return nil, fmt.Errorf("fetch %q failed: %w", key, err)
	}

	s.mu.Lock()
	e = s.entryLocked(key)
	if e.fetchGen != gen {
		// Запрос был отменен или вытеснен более новым - результат
		// устарел и не пишется
		prev := e.value
		hasPrev := e.hasValue
		s.mu.Unlock()
		if hasPrev {
			return prev, nil
		}
		return value, nil
	}
	e.value = value
	e.hasValue = true
	e.stale = false
	e.updatedAt = timeNow()
	e.fetchCancel = nil
	subs := collectSubs(e)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
	return value, nil
}

// Invalidate помечает запись устаревшей и, если у нее есть fetcher,
// запускает фоновую перезагрузку. Это принудительный re-fetch:
// вызывается после reconnect и после мутаций для зависимых ключей.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.stale = true
	hasFetcher := e.fetcher != nil
	s.mu.Unlock()

	if !hasFetcher {
		return
	}

	go func() {
		if _, err := s.Fetch(context.Background(), key); err != nil {
			s.logger.Warn("background refetch failed", "key", string(key), "error", err)
		}
	}()
}

// CancelFetch отменяет in-flight загрузку записи.
// Оптимистичные мутации зовут это перед записью спекулятивного
// значения, чтобы медленный устаревший fetch его не затер.
func (s *Store) CancelFetch(key Key) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	cancel := e.fetchCancel
	e.fetchCancel = nil
	// Сдвигаем поколение: даже завершившийся запрос не запишет результат
	e.fetchGen++
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
