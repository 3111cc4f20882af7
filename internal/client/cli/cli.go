package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goldpos/jrdclient/internal/client/api"
	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/client/iocli"
	"github.com/goldpos/jrdclient/internal/client/live"
	"github.com/goldpos/jrdclient/internal/client/mutate"
	"github.com/goldpos/jrdclient/internal/client/prefs"
	"github.com/goldpos/jrdclient/internal/client/session"
	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/client/transport"
	"github.com/goldpos/jrdclient/internal/config"
	"github.com/goldpos/jrdclient/internal/models"
)

type Cli struct {
	apiClient    api.ClientAPI
	store        *cache.Store
	controller   *mutate.Controller
	prefsService *prefs.Service
	sessions     storage.SessionStorage
	socket       *transport.Socket
	io           iocli.IO
	cfg          *config.Config
	logger       *slog.Logger

	// persistSession сохраняет cookie jar после успешного логина
	persistSession func(ctx context.Context, username string) error

	serialModulesKey cache.Key
	serialScansKey   cache.Key
	productsKey      cache.Key
	invoicesKey      cache.Key
	salesKey         cache.Key
	goldKey          cache.Key
}

func New(
	apiClient *api.Client,
	store *cache.Store,
	controller *mutate.Controller,
	prefsService *prefs.Service,
	sessions storage.SessionStorage,
	socket *transport.Socket,
	cfg *config.Config,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Cli{
		apiClient:    apiClient,
		store:        store,
		controller:   controller,
		prefsService: prefsService,
		sessions:     sessions,
		socket:       socket,
		io:           iocli.NewStdio(),
		cfg:          cfg,
		logger:       logger,

		serialModulesKey: cache.NewKey("serial", "modules"),
		serialScansKey:   cache.NewKey("serial", "scan-results"),
		productsKey:      cache.NewKey("shop", "products"),
		invoicesKey:      cache.NewKey("shop", "invoices"),
		salesKey:         cache.NewKey("shop", "sales"),
		goldKey:          cache.NewKey("shop", "gold-rate"),
	}

	c.persistSession = func(ctx context.Context, username string) error {
		return session.Persist(ctx, sessions, apiClient.Jar(), apiClient.BaseURL(), username)
	}

	c.registerFetchers()
	return c
}

// registerFetchers привязывает серверные загрузчики к ключам кэша.
// Все device/scan ключи получают serial-safe профиль: кэш никогда не
// считается свежим и повторов нет, каждое чтение ходит на сервер.
// Кассиру нельзя показывать устаревшее состояние ридера. Trusting
// профиль остается только у медленных магазинных ключей.
func (c *Cli) registerFetchers() {
	shopPolicy := cache.Policy{
		StaleTime:  c.cfg.Cache.StaleTime,
		Retry:      c.cfg.Cache.Retry,
		TrustCache: true,
	}

	c.store.RegisterFetcher(c.controller.DevicesKey, func(ctx context.Context) (any, error) {
		patches, err := c.apiClient.Devices(ctx)
		if err != nil {
			return nil, err
		}
		return live.DevicesFromPatches(patches), nil
	}, cache.SerialSafePolicy())

	c.store.RegisterFetcher(c.controller.CurrentScenarioKey, func(ctx context.Context) (any, error) {
		state, err := c.apiClient.CurrentScenario(ctx)
		if err != nil {
			return nil, err
		}
		return live.ScenarioFromState(*state), nil
	}, cache.SerialSafePolicy())

	c.store.RegisterFetcher(c.serialModulesKey, func(ctx context.Context) (any, error) {
		patches, err := c.apiClient.SerialModules(ctx)
		if err != nil {
			return nil, err
		}
		return live.DevicesFromPatches(patches), nil
	}, cache.SerialSafePolicy())

	c.store.RegisterFetcher(c.serialScansKey, func(ctx context.Context) (any, error) {
		records, err := c.apiClient.SerialScanResults(ctx)
		if err != nil {
			return nil, err
		}
		return live.ScanResultsFromRecords(records), nil
	}, cache.SerialSafePolicy())

	c.store.RegisterFetcher(c.productsKey, func(ctx context.Context) (any, error) {
		return c.apiClient.Products(ctx)
	}, shopPolicy)

	c.store.RegisterFetcher(c.invoicesKey, func(ctx context.Context) (any, error) {
		return c.apiClient.Invoices(ctx)
	}, shopPolicy)

	c.store.RegisterFetcher(c.salesKey, func(ctx context.Context) (any, error) {
		return c.apiClient.Sales(ctx)
	}, shopPolicy)

	c.store.RegisterFetcher(c.goldKey, func(ctx context.Context) (any, error) {
		return c.apiClient.GoldRate(ctx)
	}, shopPolicy)
}

// fetchDevices читает список модулей через кэш
func (c *Cli) fetchDevices(ctx context.Context) ([]models.Device, error) {
	value, err := c.store.Fetch(ctx, c.controller.DevicesKey)
	if err != nil {
		return nil, fmt.Errorf("fetch devices: %w", err)
	}
	devices, ok := value.([]models.Device)
	if !ok {
		return nil, fmt.Errorf("unexpected devices cache value %T", value)
	}
	return devices, nil
}

// notifier возвращает звуковой сигнал по настройке
func (c *Cli) notifier() live.Notifier {
	if c.cfg != nil && !c.cfg.Scan.CueEnabled {
		return live.NopNotifier{}
	}
	return &bellNotifier{io: c.io}
}

// bellNotifier пищит терминальным BEL
type bellNotifier struct {
	io iocli.IO
}

func (n *bellNotifier) Beep() {
	n.io.Printf("\a")
}
