package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/client/mutate"
	"github.com/goldpos/jrdclient/internal/client/prefs"
	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

func testDevices() []models.Device {
	return []models.Device{
		{ID: "esp-1", IP: "10.0.0.1", Mode: models.ModeScan, IsActive: true, CurrentHardPower: 15},
		{ID: "esp-2", IP: "10.0.0.2", Mode: models.ModeInventory},
	}
}

func newModulesCli(mock *mutate.APIMock) *Cli {
	mockIO, _ := newSilentIO()
	store := cache.NewStore(nil)
	ctrl := mutate.NewController(store, mock, nil)
	store.RegisterFetcher(ctrl.DevicesKey, func(ctx context.Context) (any, error) {
		return testDevices(), nil
	}, cache.DefaultPolicy())
	return &Cli{io: mockIO, store: store, controller: ctrl}
}

func TestCli_runSetPower_PercentScale(t *testing.T) {
	mock := &mutate.APIMock{
		SetPowerFunc: func(ctx context.Context, req pkgapi.SetPowerRequest) (*pkgapi.DevicePatch, error) {
			return &pkgapi.DevicePatch{ID: req.ID}, nil
		},
	}
	c := newModulesCli(mock)

	// 58% на нелинейной шкале ридера соответствует 15 dBm
	require.NoError(t, c.runSetPower(context.Background(), []string{"esp-1", "58"}))

	calls := mock.SetPowerCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Req.CurrentHardPower)
	assert.Equal(t, 15, *calls[0].Req.CurrentHardPower)
}

func TestCli_runSetPower_InvalidPercent(t *testing.T) {
	c := newModulesCli(&mutate.APIMock{})

	// 59 не лежит на шкале
	err := c.runSetPower(context.Background(), []string{"esp-1", "59"})
	assert.ErrorContains(t, err, "not on the power scale")
}

func TestCli_runStartScan(t *testing.T) {
	mock := &mutate.APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	c := newModulesCli(mock)

	require.NoError(t, c.runStartScan(context.Background(), []string{"NewProduct", "esp-1"}))

	calls := mock.StartScenarioCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "NewProduct", calls[0].Req.Mode)
	assert.Equal(t, []string{"esp-1"}, calls[0].Req.ModuleIDs)
}

func TestCli_runStartScan_AllModules(t *testing.T) {
	mock := &mutate.APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	c := newModulesCli(mock)

	// без явных id сканирование стартует на всех известных модулях
	require.NoError(t, c.runStartScan(context.Background(), []string{"Scan"}))

	calls := mock.StartScenarioCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"esp-1", "esp-2"}, calls[0].Req.ModuleIDs)
}

func TestCli_runStartScan_UnknownMode(t *testing.T) {
	c := newModulesCli(&mutate.APIMock{})

	err := c.runStartScan(context.Background(), []string{"Bogus"})
	assert.ErrorContains(t, err, "unknown mode")
}

func TestCli_runInit_UsesPrefs(t *testing.T) {
	var saved *storage.ModulePrefs
	prefsStore := &storage.PrefsStorageMock{
		GetPrefsFunc: func(ctx context.Context) (*storage.ModulePrefs, error) {
			if saved == nil {
				return nil, storage.ErrPrefsNotFound
			}
			return saved, nil
		},
		SavePrefsFunc: func(ctx context.Context, p *storage.ModulePrefs) error {
			saved = p
			return nil
		},
	}

	mock := &mutate.APIMock{
		InitModulesFunc: func(ctx context.Context, req pkgapi.InitRequest) ([]pkgapi.DevicePatch, error) {
			return nil, nil
		},
	}
	c := newModulesCli(mock)
	c.prefsService = prefs.NewService(prefsStore, nil)

	require.NoError(t, c.prefsService.SetModule(context.Background(), "esp-1",
		storage.ModulePref{Power: 20, Active: true, Mode: "Inventory"}))

	require.NoError(t, c.runInit(context.Background(), []string{"esp-1", "esp-2"}))

	calls := mock.InitModulesCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Req.Modules, 2)

	assert.Equal(t, 20, calls[0].Req.Modules[0].Power)
	assert.Equal(t, "Inventory", calls[0].Req.Modules[0].Mode)
	// для esp-2 предпочтений нет, подставлены дефолты
	assert.Equal(t, prefs.DefaultPref.Power, calls[0].Req.Modules[1].Power)
}

func TestCli_runClearHistory(t *testing.T) {
	mock := &mutate.APIMock{
		ClearScanHistoryFunc: func(ctx context.Context, id, mode string) error {
			return nil
		},
	}
	c := newModulesCli(mock)

	require.NoError(t, c.runClearHistory(context.Background(), []string{"esp-1", "Scan"}))

	calls := mock.ClearScanHistoryCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "esp-1", calls[0].ID)
	assert.Equal(t, "Scan", calls[0].Mode)
}

// Команда inventory держит процесс живым до срабатывания автостопа:
// таймер живет внутри процесса и умер бы вместе с ним
func TestCli_runInventory_WaitsForAutoStop(t *testing.T) {
	mock := &mutate.APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	c := newModulesCli(mock)
	c.controller.InventoryTimeout = 20 * time.Millisecond

	// runInventory возвращается только после остановки сценария
	require.NoError(t, c.runInventory(context.Background(), []string{"esp-1"}))

	require.Len(t, mock.StopScenarioCalls(), 1)
	calls := mock.StartScenarioCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Inventory", calls[0].Req.Mode)
}

func TestCli_runInventory_CtrlCStopsScan(t *testing.T) {
	mock := &mutate.APIMock{
		StartScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
		StopScenarioFunc: func(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
			return &pkgapi.ScenarioResponse{}, nil
		},
	}
	c := newModulesCli(mock)
	c.controller.InventoryTimeout = 10 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// прерванный контекст означает Ctrl+C: сканирование гасится явно,
	// не дожидаясь таймера
	require.NoError(t, c.runInventory(ctx, []string{"esp-1"}))
	require.Len(t, mock.StopScenarioCalls(), 1)
}
