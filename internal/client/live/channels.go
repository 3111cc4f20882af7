package live

import (
	"encoding/json"
	"log/slog"

	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

//go:generate moq -out eventsource_mock.go . EventSource

// EventSource - источник realtime событий, которым живут каналы
// синхронизации. Реализуется transport.Socket.
type EventSource interface {
	// On регистрирует обработчик события, возвращает функцию отписки
	On(event string, h func(data json.RawMessage)) func()

	// OnReconnect регистрирует обработчик сигнала переподключения,
	// возвращает функцию отписки
	OnReconnect(h func()) func()
}

// Notifier - звуковой сигнал о новой отсканированной метке
type Notifier interface {
	Beep()
}

// NopNotifier - заглушка для выключенного звука
type NopNotifier struct{}

func (NopNotifier) Beep() {}

// Subscription - живая подписка канала. Close снимает все обработчики
// событий и reconnect обработчик; после Close канал больше не пишет
// в кэш (обязательный детерминированный teardown при размонтировании
// владельца).
type Subscription struct {
	offs []func()
}

// Close отписывает все обработчики подписки
func (s *Subscription) Close() {
	for _, off := range s.offs {
		off()
	}
	s.offs = nil
}

func (s *Subscription) add(off func()) {
	s.offs = append(s.offs, off)
}

// merge объединяет несколько подписок в одну
func merge(subs ...*Subscription) *Subscription {
	out := &Subscription{}
	for _, sub := range subs {
		out.offs = append(out.offs, sub.offs...)
	}
	return out
}

// channel - общий каркас канала: подписки на события + обязательная
// reconnect реконсиляция ключа
type channel struct {
	src    EventSource
	store  *cache.Store
	key    cache.Key
	logger *slog.Logger
	sub    *Subscription
}

func newChannel(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *channel {
	if logger == nil {
		logger = slog.Default()
	}
	c := &channel{src: src, store: store, key: key, logger: logger, sub: &Subscription{}}

	// Reconnect: события за время обрыва потеряны, перечитываем запись
	c.sub.add(src.OnReconnect(func() {
		store.Invalidate(key)
	}))
	return c
}

// on подписывает обработчик с декодированием payload.
// Битый payload логируется и пропускается целиком.
func on[T any](c *channel, event string, handle func(payload T)) {
	c.sub.add(c.src.On(event, func(data json.RawMessage) {
		var payload T
		if err := json.Unmarshal(data, &payload); err != nil {
			c.logger.Warn("malformed event payload", "event", event, "error", err)
			return
		}
		handle(payload)
	}))
}

// asDevices приводит значение кэша к списку модулей
func asDevices(prev any, ok bool) ([]models.Device, bool) {
	if !ok {
		return nil, false
	}
	devices, ok := prev.([]models.Device)
	return devices, ok
}

// SubscribeDeviceRegistration - канал esp-modules-registration-updated:
// merge-by-id патчей устройств, новые id вставляются. Сетевого запроса
// на событие нет.
func SubscribeDeviceRegistration(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventRegistrationUpdated, func(patches []pkgapi.DevicePatch) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, _ := asDevices(prev, ok)
			return MergeRegistration(devices, patches), true
		})
	})
	return c.sub
}

// SubscribeDeviceStatus - канал esp-modules-status-updated: неглубокий
// патч телеметрии. Пустой кэш - no-op: список устройств по событию
// статуса не изобретается.
func SubscribeDeviceStatus(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventStatusUpdated, func(update pkgapi.StatusUpdate) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ApplyStatus(devices, update), true
		})
	})
	return c.sub
}

// SubscribeDevicePower - канал esp-modules-updated-power.
// Отдельный узкий редьюсер вместо общего патча: событие меняет ровно
// поля мощности и не может случайно затереть соседние поля устаревшим
// payload.
func SubscribeDevicePower(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventPowerUpdated, func(update pkgapi.PowerUpdate) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ApplyPower(devices, update), true
		})
	})
	return c.sub
}

// SubscribeDeviceActive - канал esp-modules-updated-is-active
func SubscribeDeviceActive(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventActiveUpdated, func(update pkgapi.ActiveUpdate) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ApplyActive(devices, update), true
		})
	})
	return c.sub
}

// SubscribeDeviceMode - канал esp-modules-updated-mode
func SubscribeDeviceMode(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventModeUpdated, func(update pkgapi.ModeUpdate) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ApplyMode(devices, update), true
		})
	})
	return c.sub
}

// SubscribeScanSignals - каналы esp-modules-start-scan / stop-scan:
// флаг isScan совпавшего модуля
func SubscribeScanSignals(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	apply := func(id string, isScan bool) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ApplyScan(devices, id, isScan), true
		})
	}
	on(c, pkgapi.EventStartScan, func(signal pkgapi.ScanSignal) { apply(signal.ID, true) })
	on(c, pkgapi.EventStopScan, func(signal pkgapi.ScanSignal) { apply(signal.ID, false) })
	return c.sub
}

// SubscribeScanIngestion - канал esp-modules-new-scan-recieved:
// вливание scan записей в режимные списки модулей. Cue зовется только
// на добавлении новой записи.
func SubscribeScanIngestion(src EventSource, store *cache.Store, key cache.Key, cue Notifier, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)
	if cue == nil {
		cue = NopNotifier{}
	}

	on(c, pkgapi.EventNewScanReceived, func(records []pkgapi.ScanRecord) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return IngestScanResults(devices, records, cue.Beep), true
		})
	})
	return c.sub
}

// SubscribeClearHistory - канал esp-modules-clear-scan-history-by-mode
func SubscribeClearHistory(src EventSource, store *cache.Store, key cache.Key, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)

	on(c, pkgapi.EventClearScanHistory, func(event pkgapi.ClearScanHistory) {
		mode, modeOK := models.ParseMode(event.Mode)
		if !modeOK || event.ID == "" {
			return
		}
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			devices, ok := asDevices(prev, ok)
			if !ok {
				return nil, false
			}
			return ClearHistory(devices, event.ID, mode), true
		})
	})
	return c.sub
}

// SubscribeScanUpsert - канал new-scan-result legacy serial потока:
// ограниченное кольцо последних записей, cue на каждом событии
// (здесь различия добавление/обновление нет).
func SubscribeScanUpsert(src EventSource, store *cache.Store, key cache.Key, capacity int, cue Notifier, logger *slog.Logger) *Subscription {
	c := newChannel(src, store, key, logger)
	if cue == nil {
		cue = NopNotifier{}
	}

	on(c, pkgapi.EventNewScanResult, func(rec pkgapi.ScanRecord) {
		store.Patch(key, func(prev any, ok bool) (any, bool) {
			var list []models.ScanResult
			if ok {
				list, _ = prev.([]models.ScanResult)
			}
			next, accepted := UpsertScanResult(list, rec, capacity)
			if !accepted {
				return nil, false
			}
			cue.Beep()
			return next, true
		})
	})
	return c.sub
}

// AttachDeviceChannels подписывает все per-device каналы на один ключ
// кэша со списком модулей
func AttachDeviceChannels(src EventSource, store *cache.Store, key cache.Key, cue Notifier, logger *slog.Logger) *Subscription {
	return merge(
		SubscribeDeviceRegistration(src, store, key, logger),
		SubscribeDeviceStatus(src, store, key, logger),
		SubscribeDevicePower(src, store, key, logger),
		SubscribeDeviceActive(src, store, key, logger),
		SubscribeDeviceMode(src, store, key, logger),
		SubscribeScanSignals(src, store, key, logger),
		SubscribeScanIngestion(src, store, key, cue, logger),
		SubscribeClearHistory(src, store, key, logger),
	)
}
