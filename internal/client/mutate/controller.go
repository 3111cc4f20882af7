package mutate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/client/live"
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// DefaultInventoryTimeout - автостоп инвентаризации, если оператор
// забыл остановить сканирование
const DefaultInventoryTimeout = 180 * time.Second

// Controller выполняет оптимистичные мутации модулей: отменяет
// in-flight загрузки затронутых ключей, снимает снапшот, патчит кэш
// немедленно, шлет запрос и по ответу либо заменяет оптимистичное
// состояние каноническим, либо откатывает кэш бит-в-бит к снапшоту.
// В обоих исходах зависимый ключ current-scenario инвалидируется.
type Controller struct {
	store *cache.Store
	api   API

	DevicesKey         cache.Key
	ScenarioKey        cache.Key
	CurrentScenarioKey cache.Key

	InventoryTimeout time.Duration

	logger *slog.Logger

	mu             sync.Mutex
	inventoryTimer *time.Timer
	inventoryDone  chan struct{}
}

func NewController(store *cache.Store, client API, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:              store,
		api:                client,
		DevicesKey:         cache.NewKey("jrd", "devices"),
		ScenarioKey:        cache.NewKey("jrd", "scenario"),
		CurrentScenarioKey: cache.NewKey("jrd", "current-scenario"),
		InventoryTimeout:   DefaultInventoryTimeout,
		logger:             logger,
	}
}

// snapshot - запомненное значение одного ключа кэша до оптимистичного
// патча. ok=false означает что записи не было: откат удаляет ключ,
// а не пишет в него nil.
type snapshot struct {
	key   cache.Key
	value any
	ok    bool
}

func (c *Controller) snapshot(keys ...cache.Key) []snapshot {
	snaps := make([]snapshot, 0, len(keys))
	for _, key := range keys {
		value, ok := c.store.Get(key)
		snaps = append(snaps, snapshot{key: key, value: value, ok: ok})
	}
	return snaps
}

func (c *Controller) rollback(snaps []snapshot) {
	for _, s := range snaps {
		if s.ok {
			c.store.Set(s.key, s.value)
		} else {
			c.store.Delete(s.key)
		}
	}
}

// settle инвалидирует зависимый ключ после исхода мутации
func (c *Controller) settle() {
	c.store.Invalidate(c.CurrentScenarioKey)
}

func (c *Controller) patchDevices(reduce func(devices []models.Device) []models.Device) {
	c.store.Patch(c.DevicesKey, func(prev any, ok bool) (any, bool) {
		var devices []models.Device
		if ok {
			devices, _ = prev.([]models.Device)
		}
		return reduce(devices), true
	})
}

// StartScenario запускает скан-кампанию на перечисленных модулях.
// Оптимистично: isScan=true у затронутых модулей, сценарий активен.
func (c *Controller) StartScenario(ctx context.Context, ids []string, mode models.Mode) error {
	c.store.CancelFetch(c.DevicesKey)
	c.store.CancelFetch(c.ScenarioKey)
	snaps := c.snapshot(c.DevicesKey, c.ScenarioKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		for _, id := range ids {
			devices = live.ApplyScan(devices, id, true)
		}
		return devices
	})
	c.store.Set(c.ScenarioKey, models.Scenario{IsActiveScenario: true, ScanMode: &mode})

	resp, err := c.api.StartScenario(ctx, pkgapi.ScenarioRequest{ModuleIDs: ids, Mode: string(mode)})
	if err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("start scenario: %w", err)
	}

	c.store.Set(c.ScenarioKey, live.ScenarioFromState(resp.Scenario))
	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.MergeRegistration(devices, resp.Modules)
	})
	c.settle()
	return nil
}

// StopScenario останавливает скан-кампанию. Взведенный таймер
// автостопа инвентаризации гасится в любом исходе.
func (c *Controller) StopScenario(ctx context.Context, ids []string) error {
	c.cancelInventoryTimer()

	c.store.CancelFetch(c.DevicesKey)
	c.store.CancelFetch(c.ScenarioKey)
	snaps := c.snapshot(c.DevicesKey, c.ScenarioKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		for _, id := range ids {
			devices = live.ApplyScan(devices, id, false)
		}
		return devices
	})
	c.store.Set(c.ScenarioKey, models.Scenario{})

	resp, err := c.api.StopScenario(ctx, pkgapi.ScenarioRequest{ModuleIDs: ids})
	if err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("stop scenario: %w", err)
	}

	c.store.Set(c.ScenarioKey, live.ScenarioFromState(resp.Scenario))
	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.MergeRegistration(devices, resp.Modules)
	})
	c.settle()
	return nil
}

// StartInventoryScan запускает инвентаризацию со взведенным таймером
// автостопа: по истечении InventoryTimeout сценарий останавливается
// сам, если оператор не сделал этого раньше.
func (c *Controller) StartInventoryScan(ctx context.Context, ids []string) error {
	if err := c.StartScenario(ctx, ids, models.ModeInventory); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inventoryTimer != nil {
		c.inventoryTimer.Stop()
	}
	if c.inventoryDone != nil {
		close(c.inventoryDone)
	}
	c.inventoryDone = make(chan struct{})
	c.inventoryTimer = time.AfterFunc(c.InventoryTimeout, func() {
		// StopScenario гасит таймер и закрывает inventoryDone
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.StopScenario(ctx, ids); err != nil {
			c.logger.Error("inventory auto-stop failed", "error", err)
		}
	})
	return nil
}

// InventoryDone возвращает канал, который закрывается когда запущенная
// инвентаризация остановлена - автостопом или явным стопом. Вызывающий
// обязан дождаться канала, иначе процесс завершится раньше таймера.
// Без активной инвентаризации возвращается уже закрытый канал.
func (c *Controller) InventoryDone() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inventoryDone == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return c.inventoryDone
}

func (c *Controller) cancelInventoryTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inventoryTimer != nil {
		c.inventoryTimer.Stop()
		c.inventoryTimer = nil
	}
	if c.inventoryDone != nil {
		close(c.inventoryDone)
		c.inventoryDone = nil
	}
}

// InitModules приводит модули к желаемому начальному состоянию.
// Оптимистичного патча нет: до ответа сервера фактическое состояние
// железа неизвестно, канонический список приходит в ответе.
func (c *Controller) InitModules(ctx context.Context, req pkgapi.InitRequest) error {
	c.store.CancelFetch(c.DevicesKey)

	patches, err := c.api.InitModules(ctx, req)
	if err != nil {
		c.settle()
		return fmt.Errorf("init modules: %w", err)
	}

	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.MergeRegistration(devices, patches)
	})
	c.settle()
	return nil
}

// SetPower меняет мощность одного модуля оптимистично
func (c *Controller) SetPower(ctx context.Context, id string, hard, soft *int) error {
	c.store.CancelFetch(c.DevicesKey)
	snaps := c.snapshot(c.DevicesKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.ApplyPower(devices, pkgapi.PowerUpdate{
			ID:               id,
			CurrentHardPower: hard,
			CurrentSoftPower: soft,
		})
	})

	patch, err := c.api.SetPower(ctx, pkgapi.SetPowerRequest{
		ID:               id,
		CurrentHardPower: hard,
		CurrentSoftPower: soft,
	})
	if err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("set power: %w", err)
	}

	c.mergeCanonical(patch)
	c.settle()
	return nil
}

// SetMode меняет режим одного модуля оптимистично
func (c *Controller) SetMode(ctx context.Context, id string, mode models.Mode) error {
	c.store.CancelFetch(c.DevicesKey)
	snaps := c.snapshot(c.DevicesKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.ApplyMode(devices, pkgapi.ModeUpdate{ID: id, Mode: string(mode)})
	})

	patch, err := c.api.SetMode(ctx, pkgapi.SetModeRequest{ID: id, Mode: string(mode)})
	if err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("set mode: %w", err)
	}

	c.mergeCanonical(patch)
	c.settle()
	return nil
}

// SetActive включает/выключает RF тракт одного модуля оптимистично
func (c *Controller) SetActive(ctx context.Context, id string, active bool) error {
	c.store.CancelFetch(c.DevicesKey)
	snaps := c.snapshot(c.DevicesKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.ApplyActive(devices, pkgapi.ActiveUpdate{ID: id, IsActive: active})
	})

	patch, err := c.api.SetActive(ctx, pkgapi.SetActiveRequest{ID: id, IsActive: active})
	if err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("set active: %w", err)
	}

	c.mergeCanonical(patch)
	c.settle()
	return nil
}

// ClearScanHistory очищает историю сканирования режима оптимистично
func (c *Controller) ClearScanHistory(ctx context.Context, id string, mode models.Mode) error {
	c.store.CancelFetch(c.DevicesKey)
	snaps := c.snapshot(c.DevicesKey)

	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.ClearHistory(devices, id, mode)
	})

	if err := c.api.ClearScanHistory(ctx, id, string(mode)); err != nil {
		c.rollback(snaps)
		c.settle()
		return fmt.Errorf("clear scan history: %w", err)
	}

	c.settle()
	return nil
}

func (c *Controller) mergeCanonical(patch *pkgapi.DevicePatch) {
	if patch == nil {
		return
	}
	c.patchDevices(func(devices []models.Device) []models.Device {
		return live.MergeRegistration(devices, []pkgapi.DevicePatch{*patch})
	})
}
