package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler обрабатывает payload одного события.
// Алиас, чтобы подписчики могли объявлять свой интерфейс источника
// событий без импорта этого пакета.
type Handler = func(data json.RawMessage)

// frame - кадр socket канала
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// helloMessage представляется серверу при подключении
type helloMessage struct {
	Type   string `json:"type"`
	NodeID string `json:"nodeId"`
}

const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 20 * time.Second
)

// Socket - клиент realtime канала сервера. Держит одно websocket
// соединение, при обрыве переподключается с экспоненциальным backoff.
// Каждое успешное переподключение (кроме первого подключения) будит
// reconnect подписчиков: события за время обрыва считаются потерянными,
// и каналы синхронизации обязаны перечитать свои записи кэша.
type Socket struct {
	url    string
	nodeID string
	logger *slog.Logger

	mu         sync.Mutex
	handlers   map[string]map[uint64]Handler
	reconnects map[uint64]func()
	nextID     uint64

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New создает socket клиент (без подключения)
func New(wsURL string, logger *slog.Logger) *Socket {
	if logger == nil {
		logger = slog.Default()
	}
	return &Socket{
		url:        wsURL,
		nodeID:     uuid.New().String(),
		logger:     logger,
		handlers:   make(map[string]map[uint64]Handler),
		reconnects: make(map[uint64]func()),
	}
}

// On регистрирует обработчик события. Возвращает функцию отписки.
func (s *Socket) On(event string, h Handler) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.handlers[event] == nil {
		s.handlers[event] = make(map[uint64]Handler)
	}
	s.handlers[event][id] = h

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers[event], id)
	}
}

// OnReconnect регистрирует обработчик сигнала переподключения.
// Возвращает функцию отписки.
func (s *Socket) OnReconnect(h func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.reconnects[id] = h

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.reconnects, id)
	}
}

// Start запускает цикл подключения в фоне
func (s *Socket) Start(parent context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		s.loop(ctx)
	}()
}

// Stop останавливает цикл и ждет завершения
func (s *Socket) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// loop - цикл подключения с backoff
func (s *Socket) loop(ctx context.Context) {
	backoff := initialBackoff
	connected := false

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := s.runSession(ctx, connected)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("socket session ended", "error", err)
		}
		if err == nil {
			// Сессия жила - сбрасываем backoff
			backoff = initialBackoff
			connected = true
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}

// runSession держит одно websocket соединение до обрыва.
// notifyReconnect=true для всех подключений кроме самого первого.
// Возвращает nil если соединение было установлено (даже если потом
// оборвалось), ошибку - если подключиться не удалось.
func (s *Socket) runSession(ctx context.Context, notifyReconnect bool) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WriteJSON(helloMessage{Type: "hello", NodeID: s.nodeID}); err != nil {
		return err
	}

	s.logger.Info("socket connected", "url", s.url)
	if notifyReconnect {
		s.fireReconnect()
	}

	// Закрываем соединение при отмене контекста, чтобы ReadMessage вышел
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Warn("socket read failed", "error", err)
			return nil
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			// Битый кадр пропускаем, канал не роняем
			s.logger.Warn("malformed socket frame", "error", err)
			continue
		}
		s.dispatch(f)
	}
}

// dispatch зовет обработчики события синхронно, в порядке доставки
func (s *Socket) dispatch(f frame) {
	s.mu.Lock()
	handlers := make([]Handler, 0, len(s.handlers[f.Event]))
	for _, h := range s.handlers[f.Event] {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(f.Data)
	}
}

// fireReconnect будит reconnect подписчиков
func (s *Socket) fireReconnect() {
	s.mu.Lock()
	handlers := make([]func(), 0, len(s.reconnects))
	for _, h := range s.reconnects {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}
