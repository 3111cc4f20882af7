package live

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// fakeSource хранит обработчики как transport.Socket и позволяет
// диспатчить события вручную
type fakeSource struct {
	*EventSourceMock
	handlers   map[string][]func(json.RawMessage)
	reconnects []func()
}

func newFakeSource() *fakeSource {
	src := &fakeSource{handlers: map[string][]func(json.RawMessage){}}
	src.EventSourceMock = &EventSourceMock{
		OnFunc: func(event string, h func(data json.RawMessage)) func() {
			src.handlers[event] = append(src.handlers[event], h)
			return func() {
				src.handlers[event] = nil
			}
		},
		OnReconnectFunc: func(h func()) func() {
			src.reconnects = append(src.reconnects, h)
			return func() {
				src.reconnects = nil
			}
		},
	}
	return src
}

func (s *fakeSource) emit(t *testing.T, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	for _, h := range s.handlers[event] {
		h(data)
	}
}

func (s *fakeSource) reconnect() {
	for _, h := range s.reconnects {
		h()
	}
}

func TestSubscribeDeviceRegistration(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	sub := SubscribeDeviceRegistration(src, store, key, nil)
	defer sub.Close()

	src.emit(t, pkgapi.EventRegistrationUpdated, []pkgapi.DevicePatch{
		{ID: "esp-1", IP: ptr("10.0.0.1")},
	})

	value, ok := store.Get(key)
	require.True(t, ok)
	devices := value.([]models.Device)
	require.Len(t, devices, 1)
	assert.Equal(t, "esp-1", devices[0].ID)
}

func TestSubscribeDeviceStatus_EmptyCacheNoop(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	sub := SubscribeDeviceStatus(src, store, key, nil)
	defer sub.Close()

	// статус без загруженного списка не изобретает устройства
	src.emit(t, pkgapi.EventStatusUpdated, pkgapi.StatusUpdate{ID: "esp-1"})

	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestSubscribeScanIngestion_Cue(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	store.Set(key, []models.Device{{ID: "esp-1", Mode: models.ModeScan}})

	cue := &countingNotifier{}
	sub := SubscribeScanIngestion(src, store, key, cue, nil)
	defer sub.Close()

	record := pkgapi.ScanRecord{ID: 7, EPC: "E1", DeviceID: "esp-1"}
	src.emit(t, pkgapi.EventNewScanReceived, []pkgapi.ScanRecord{record})
	src.emit(t, pkgapi.EventNewScanReceived, []pkgapi.ScanRecord{record})

	// cue только на добавлении, повтор того же id молчит
	assert.Equal(t, int64(1), cue.beeps.Load())

	value, ok := store.Get(key)
	require.True(t, ok)
	devices := value.([]models.Device)
	assert.Len(t, devices[0].TagScanResults[models.ModeScan], 1)
}

func TestSubscribeScanUpsert_CueAlways(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("serial", "scan-results")

	cue := &countingNotifier{}
	sub := SubscribeScanUpsert(src, store, key, 50, cue, nil)
	defer sub.Close()

	record := pkgapi.ScanRecord{ID: 7, EPC: "E1", DeviceID: "esp-1"}
	src.emit(t, pkgapi.EventNewScanResult, record)
	src.emit(t, pkgapi.EventNewScanResult, record)

	// legacy поток пищит на каждом принятом событии
	assert.Equal(t, int64(2), cue.beeps.Load())

	value, ok := store.Get(key)
	require.True(t, ok)
	assert.Len(t, value.([]models.ScanResult), 1)
}

func TestChannel_MalformedPayloadSkipped(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	store.Set(key, []models.Device{{ID: "esp-1"}})

	sub := SubscribeDeviceActive(src, store, key, nil)
	defer sub.Close()

	for _, h := range src.handlers[pkgapi.EventActiveUpdated] {
		h(json.RawMessage(`{"isActive": "not-a-bool"`))
	}

	value, ok := store.Get(key)
	require.True(t, ok)
	assert.False(t, value.([]models.Device)[0].IsActive)
}

func TestChannel_ReconnectInvalidatesOnce(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	var fetches atomic.Int64
	store.RegisterFetcher(key, func(ctx context.Context) (any, error) {
		fetches.Add(1)
		return []models.Device{{ID: "esp-1"}}, nil
	}, cache.DefaultPolicy())

	sub := SubscribeDevicePower(src, store, key, nil)
	defer sub.Close()

	src.reconnect()

	// ровно один повторный fetch на сигнал переподключения
	assert.Eventually(t, func() bool {
		return fetches.Load() == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), fetches.Load())
}

func TestSubscription_Close(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	sub := SubscribeDeviceRegistration(src, store, key, nil)
	sub.Close()

	src.emit(t, pkgapi.EventRegistrationUpdated, []pkgapi.DevicePatch{{ID: "esp-1"}})
	src.reconnect()

	// после Close канал не пишет в кэш
	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestAttachDeviceChannels(t *testing.T) {
	store := cache.NewStore(nil)
	src := newFakeSource()
	key := cache.NewKey("jrd", "devices")

	sub := AttachDeviceChannels(src, store, key, nil, nil)
	defer sub.Close()

	src.emit(t, pkgapi.EventRegistrationUpdated, []pkgapi.DevicePatch{
		{ID: "esp-1", Mode: ptr("Scan")},
	})
	src.emit(t, pkgapi.EventStartScan, pkgapi.ScanSignal{ID: "esp-1"})
	src.emit(t, pkgapi.EventNewScanReceived, []pkgapi.ScanRecord{
		{ID: 1, EPC: "E1", DeviceID: "esp-1"},
	})
	src.emit(t, pkgapi.EventStopScan, pkgapi.ScanSignal{ID: "esp-1"})
	src.emit(t, pkgapi.EventClearScanHistory, pkgapi.ClearScanHistory{ID: "esp-1", Mode: "Scan"})

	value, ok := store.Get(key)
	require.True(t, ok)
	devices := value.([]models.Device)
	require.Len(t, devices, 1)
	assert.False(t, devices[0].IsScan)
	assert.Empty(t, devices[0].TagScanResults[models.ModeScan])
}

type countingNotifier struct {
	beeps atomic.Int64
}

func (n *countingNotifier) Beep() { n.beeps.Add(1) }
