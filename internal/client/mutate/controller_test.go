package mutate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

func ptr[T any](v T) *T { return &v }

var errServer = errors.New("boom")

func newController(t *testing.T, mock *APIMock) (*Controller, *cache.Store) {
	t.Helper()
	store := cache.NewStore(nil)
	return NewController(store, mock, nil), store
}

func devicesAt(t *testing.T, store *cache.Store, key cache.Key) []models.Device {
	t.Helper()
	value, ok := store.Get(key)
	require.True(t, ok)
	devices, ok := value.([]models.Device)
	require.True(t, ok)
	return devices
}

func TestStartScenario_Success(t *testing.T) {
	var optimisticSeen atomic.Bool

	mock := &APIMock{}
	ctrl, store := newController(t, mock)

	store.Set(ctrl.DevicesKey, []models.Device{{ID: "esp-1"}, {ID: "esp-2"}})

	mock.StartScenarioFunc = func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
		// на момент запроса оптимистичный патч уже в кэше
		devices := devicesAt(t, store, ctrl.DevicesKey)
		optimisticSeen.Store(devices[0].IsScan)

		return &pkgapi.ScenarioResponse{
			Scenario: pkgapi.ScenarioState{IsActiveScenario: true, ScanMode: ptr("Scan")},
			Modules: []pkgapi.DevicePatch{
				{ID: "esp-1", IsScan: ptr(true), CurrentHardPower: ptr(20)},
			},
		}, nil
	}

	err := ctrl.StartScenario(context.Background(), []string{"esp-1"}, models.ModeScan)
	require.NoError(t, err)
	assert.True(t, optimisticSeen.Load())

	// канонический ответ заменил оптимистичное состояние
	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.True(t, devices[0].IsScan)
	assert.Equal(t, 20, devices[0].CurrentHardPower)
	assert.False(t, devices[1].IsScan)

	value, ok := store.Get(ctrl.ScenarioKey)
	require.True(t, ok)
	scenario := value.(models.Scenario)
	assert.True(t, scenario.IsActiveScenario)
	require.NotNil(t, scenario.ScanMode)
	assert.Equal(t, models.ModeScan, *scenario.ScanMode)
}

func TestStartScenario_FailureRollsBack(t *testing.T) {
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return nil, errServer
		},
	}
	ctrl, store := newController(t, mock)

	before := []models.Device{{ID: "esp-1", CurrentHardPower: 12}}
	store.Set(ctrl.DevicesKey, before)
	// ключ сценария до мутации пуст

	err := ctrl.StartScenario(context.Background(), []string{"esp-1"}, models.ModeScan)
	require.ErrorIs(t, err, errServer)

	// кэш откатан бит-в-бит к снапшоту
	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.Equal(t, before, devices)

	// отсутствовавший ключ после отката снова отсутствует
	_, ok := store.Get(ctrl.ScenarioKey)
	assert.False(t, ok)
}

func TestStartScenario_InvalidatesCurrentScenario(t *testing.T) {
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	ctrl, store := newController(t, mock)

	var fetches atomic.Int64
	store.RegisterFetcher(ctrl.CurrentScenarioKey, func(ctx context.Context) (any, error) {
		fetches.Add(1)
		return models.Scenario{}, nil
	}, cache.DefaultPolicy())

	require.NoError(t, ctrl.StartScenario(context.Background(), []string{"esp-1"}, models.ModeScan))

	assert.Eventually(t, func() bool {
		return fetches.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestStartScenario_CancelsInFlightFetch(t *testing.T) {
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{
				Modules: []pkgapi.DevicePatch{{ID: "esp-1", IsScan: ptr(true)}},
			}, nil
		},
	}
	ctrl, store := newController(t, mock)

	started := make(chan struct{})
	release := make(chan struct{})
	store.RegisterFetcher(ctrl.DevicesKey, func(ctx context.Context) (any, error) {
		close(started)
		<-release
		return []models.Device{{ID: "esp-1", IsScan: false}}, nil
	}, cache.SerialSafePolicy())

	fetchDone := make(chan struct{})
	go func() {
		defer close(fetchDone)
		_, _ = store.Fetch(context.Background(), ctrl.DevicesKey)
	}()
	<-started

	require.NoError(t, ctrl.StartScenario(context.Background(), []string{"esp-1"}, models.ModeScan))

	close(release)
	<-fetchDone

	// результат отмененной загрузки не затер мутированное состояние
	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.True(t, devices[0].IsScan)
}

func TestStopScenario_Success(t *testing.T) {
	mock := &APIMock{
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{
				Scenario: pkgapi.ScenarioState{IsActiveScenario: false},
				Modules:  []pkgapi.DevicePatch{{ID: "esp-1", IsScan: ptr(false)}},
			}, nil
		},
	}
	ctrl, store := newController(t, mock)

	store.Set(ctrl.DevicesKey, []models.Device{{ID: "esp-1", IsScan: true}})
	mode := models.ModeScan
	store.Set(ctrl.ScenarioKey, models.Scenario{IsActiveScenario: true, ScanMode: &mode})

	require.NoError(t, ctrl.StopScenario(context.Background(), []string{"esp-1"}))

	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.False(t, devices[0].IsScan)

	value, ok := store.Get(ctrl.ScenarioKey)
	require.True(t, ok)
	assert.False(t, value.(models.Scenario).IsActiveScenario)
}

func TestSetPower_SuccessMergesCanonical(t *testing.T) {
	mock := &APIMock{
		SetPowerFunc: func(ctx context.Context, req pkgapi.SetPowerRequest) (*pkgapi.DevicePatch, error) {
			return &pkgapi.DevicePatch{ID: req.ID, CurrentHardPower: ptr(15), CurrentSoftPower: ptr(15)}, nil
		},
	}
	ctrl, store := newController(t, mock)

	store.Set(ctrl.DevicesKey, []models.Device{{ID: "esp-1", CurrentHardPower: 10, Mode: models.ModeScan}})

	require.NoError(t, ctrl.SetPower(context.Background(), "esp-1", ptr(15), nil))

	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.Equal(t, 15, devices[0].CurrentHardPower)
	assert.Equal(t, 15, devices[0].CurrentSoftPower)
	assert.Equal(t, models.ModeScan, devices[0].Mode)
}

func TestSetMode_FailureRollsBack(t *testing.T) {
	mock := &APIMock{
		SetModeFunc: func(ctx context.Context, req pkgapi.SetModeRequest) (*pkgapi.DevicePatch, error) {
			return nil, errServer
		},
	}
	ctrl, store := newController(t, mock)

	before := []models.Device{{ID: "esp-1", Mode: models.ModeScan}}
	store.Set(ctrl.DevicesKey, before)

	err := ctrl.SetMode(context.Background(), "esp-1", models.ModeInventory)
	require.ErrorIs(t, err, errServer)

	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.Equal(t, before, devices)
}

func TestSetActive_Optimistic(t *testing.T) {
	seen := make(chan bool, 1)
	mock := &APIMock{}
	ctrl, store := newController(t, mock)

	mock.SetActiveFunc = func(ctx context.Context, req pkgapi.SetActiveRequest) (*pkgapi.DevicePatch, error) {
		devices := devicesAt(t, store, ctrl.DevicesKey)
		seen <- devices[0].IsActive
		return &pkgapi.DevicePatch{ID: req.ID, IsActive: ptr(req.IsActive)}, nil
	}

	store.Set(ctrl.DevicesKey, []models.Device{{ID: "esp-1"}})

	require.NoError(t, ctrl.SetActive(context.Background(), "esp-1", true))
	assert.True(t, <-seen)
}

func TestClearScanHistory(t *testing.T) {
	mock := &APIMock{
		ClearScanHistoryFunc: func(ctx context.Context, id, mode string) error {
			return nil
		},
	}
	ctrl, store := newController(t, mock)

	store.Set(ctrl.DevicesKey, []models.Device{{
		ID:   "esp-1",
		Mode: models.ModeScan,
		TagScanResults: map[models.Mode][]models.ScanResult{
			models.ModeScan: {{ID: 1, DeviceID: "esp-1"}},
		},
	}})

	require.NoError(t, ctrl.ClearScanHistory(context.Background(), "esp-1", models.ModeScan))

	devices := devicesAt(t, store, ctrl.DevicesKey)
	assert.Empty(t, devices[0].TagScanResults[models.ModeScan])

	calls := mock.ClearScanHistoryCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Scan", calls[0].Mode)
}

func TestInitModules(t *testing.T) {
	mock := &APIMock{
		InitModulesFunc: func(ctx context.Context, req pkgapi.InitRequest) ([]pkgapi.DevicePatch, error) {
			return []pkgapi.DevicePatch{
				{ID: "esp-1", CurrentHardPower: ptr(20), Mode: ptr("Scan"), IsActive: ptr(true)},
			}, nil
		},
	}
	ctrl, store := newController(t, mock)

	err := ctrl.InitModules(context.Background(), pkgapi.InitRequest{
		Modules: []pkgapi.InitModule{{ID: "esp-1", Power: 20, Mode: "Scan", Active: true}},
	})
	require.NoError(t, err)

	devices := devicesAt(t, store, ctrl.DevicesKey)
	require.Len(t, devices, 1)
	assert.Equal(t, 20, devices[0].CurrentHardPower)
	assert.True(t, devices[0].IsActive)
}

func TestStartInventoryScan_AutoStop(t *testing.T) {
	var stops atomic.Int64
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			stops.Add(1)
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	ctrl, _ := newController(t, mock)
	ctrl.InventoryTimeout = 30 * time.Millisecond

	require.NoError(t, ctrl.StartInventoryScan(context.Background(), []string{"esp-1"}))

	// сценарий гаснет сам по истечении таймаута
	assert.Eventually(t, func() bool {
		return stops.Load() == 1
	}, time.Second, 10*time.Millisecond)

	calls := mock.StartScenarioCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Inventory", calls[0].Req.Mode)
}

func TestStopScenario_CancelsInventoryTimer(t *testing.T) {
	var stops atomic.Int64
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			stops.Add(1)
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	ctrl, _ := newController(t, mock)
	ctrl.InventoryTimeout = 50 * time.Millisecond

	require.NoError(t, ctrl.StartInventoryScan(context.Background(), []string{"esp-1"}))
	require.NoError(t, ctrl.StopScenario(context.Background(), []string{"esp-1"}))

	// ручная остановка погасила таймер, автостоп не сработал
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int64(1), stops.Load())
}

// Канал InventoryDone закрывается по автостопу - на нем ждут
// вызывающие, чтобы процесс не завершился раньше таймера
func TestInventoryDone_ClosedByAutoStop(t *testing.T) {
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	ctrl, _ := newController(t, mock)
	ctrl.InventoryTimeout = 30 * time.Millisecond

	require.NoError(t, ctrl.StartInventoryScan(context.Background(), []string{"esp-1"}))

	select {
	case <-ctrl.InventoryDone():
	case <-time.After(time.Second):
		t.Fatal("inventory done channel not closed by auto-stop")
	}
	assert.Len(t, mock.StopScenarioCalls(), 1)
}

func TestInventoryDone_ClosedByManualStop(t *testing.T) {
	mock := &APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	ctrl, _ := newController(t, mock)
	ctrl.InventoryTimeout = 10 * time.Second

	require.NoError(t, ctrl.StartInventoryScan(context.Background(), []string{"esp-1"}))
	done := ctrl.InventoryDone()
	require.NoError(t, ctrl.StopScenario(context.Background(), []string{"esp-1"}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("inventory done channel not closed by manual stop")
	}
}

func TestInventoryDone_NoInventory(t *testing.T) {
	ctrl, _ := newController(t, &APIMock{})

	// без активной инвентаризации канал уже закрыт, ждать нечего
	select {
	case <-ctrl.InventoryDone():
	case <-time.After(time.Second):
		t.Fatal("inventory done channel should be closed when idle")
	}
}
