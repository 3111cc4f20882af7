package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// Login выполняет аутентификацию. Сессионную куку сервер выставляет
// в ответе, jar подхватывает ее автоматически.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	var resp pkgapi.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout уведомляет сервер о выходе из системы
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Devices возвращает полный список модулей
func (c *Client) Devices(ctx context.Context) ([]pkgapi.DevicePatch, error) {
	var resp []pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodGet, "/api/jrd/devices", nil, &resp); err != nil {
		return nil, fmt.Errorf("devices request failed: %w", err)
	}
	return resp, nil
}

// ConnectedModules возвращает список подключенных ESP модулей
func (c *Client) ConnectedModules(ctx context.Context) ([]pkgapi.DevicePatch, error) {
	var resp []pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodGet, "/api/jrd/all-connected-esp-modules", nil, &resp); err != nil {
		return nil, fmt.Errorf("connected modules request failed: %w", err)
	}
	return resp, nil
}

// CurrentScenario возвращает серверное состояние скан-кампании
func (c *Client) CurrentScenario(ctx context.Context) (*pkgapi.ScenarioState, error) {
	var resp pkgapi.ScenarioState
	if err := c.do(ctx, http.MethodGet, "/api/jrd/current-scenario", nil, &resp); err != nil {
		return nil, fmt.Errorf("current scenario request failed: %w", err)
	}
	return &resp, nil
}

// InitModules инициализирует пачку модулей желаемыми настройками
func (c *Client) InitModules(ctx context.Context, req pkgapi.InitRequest) ([]pkgapi.DevicePatch, error) {
	var resp []pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/init", req, &resp); err != nil {
		return nil, fmt.Errorf("init modules request failed: %w", err)
	}
	return resp, nil
}

// StartScenario запускает скан-кампанию на указанных модулях
func (c *Client) StartScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
	var resp pkgapi.ScenarioResponse
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/start-scenario", req, &resp); err != nil {
		return nil, fmt.Errorf("start scenario request failed: %w", err)
	}
	return &resp, nil
}

// StopScenario останавливает скан-кампанию
func (c *Client) StopScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error) {
	var resp pkgapi.ScenarioResponse
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/stop-scenario", req, &resp); err != nil {
		return nil, fmt.Errorf("stop scenario request failed: %w", err)
	}
	return &resp, nil
}

// SetPower устанавливает мощность модуля
func (c *Client) SetPower(ctx context.Context, req pkgapi.SetPowerRequest) (*pkgapi.DevicePatch, error) {
	var resp pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/power", req, &resp); err != nil {
		return nil, fmt.Errorf("set power request failed: %w", err)
	}
	return &resp, nil
}

// SetMode устанавливает режим модуля
func (c *Client) SetMode(ctx context.Context, req pkgapi.SetModeRequest) (*pkgapi.DevicePatch, error) {
	var resp pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/mode", req, &resp); err != nil {
		return nil, fmt.Errorf("set mode request failed: %w", err)
	}
	return &resp, nil
}

// SetActive включает/выключает RF тракт модуля
func (c *Client) SetActive(ctx context.Context, req pkgapi.SetActiveRequest) (*pkgapi.DevicePatch, error) {
	var resp pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/active", req, &resp); err != nil {
		return nil, fmt.Errorf("set active request failed: %w", err)
	}
	return &resp, nil
}

// ClearScanHistory чистит историю сканов модуля для одного режима
func (c *Client) ClearScanHistory(ctx context.Context, id, mode string) error {
	req := pkgapi.ClearScanHistory{ID: id, Mode: mode}
	if err := c.do(ctx, http.MethodPost, "/api/jrd/modules/clear-scan-history", req, nil); err != nil {
		return fmt.Errorf("clear scan history request failed: %w", err)
	}
	return nil
}

// SerialModules возвращает список legacy serial модулей
func (c *Client) SerialModules(ctx context.Context) ([]pkgapi.DevicePatch, error) {
	var resp []pkgapi.DevicePatch
	if err := c.do(ctx, http.MethodGet, "/api/serial/modules", nil, &resp); err != nil {
		return nil, fmt.Errorf("serial modules request failed: %w", err)
	}
	return resp, nil
}

// SerialScanResults возвращает flat список сканов legacy serial потока
func (c *Client) SerialScanResults(ctx context.Context) ([]pkgapi.ScanRecord, error) {
	var resp []pkgapi.ScanRecord
	if err := c.do(ctx, http.MethodGet, "/api/serial/modules/scan-results", nil, &resp); err != nil {
		return nil, fmt.Errorf("serial scan results request failed: %w", err)
	}
	return resp, nil
}

// Products возвращает каталог изделий
func (c *Client) Products(ctx context.Context) ([]pkgapi.Product, error) {
	var resp []pkgapi.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	return resp, nil
}

// Invoices возвращает список счетов
func (c *Client) Invoices(ctx context.Context) ([]pkgapi.Invoice, error) {
	var resp []pkgapi.Invoice
	if err := c.do(ctx, http.MethodGet, "/api/invoices", nil, &resp); err != nil {
		return nil, fmt.Errorf("invoices request failed: %w", err)
	}
	return resp, nil
}

// CreateInvoice создает счет из отсканированных изделий
func (c *Client) CreateInvoice(ctx context.Context, req pkgapi.CreateInvoiceRequest) (*pkgapi.Invoice, error) {
	var resp pkgapi.Invoice
	if err := c.do(ctx, http.MethodPost, "/api/invoices", req, &resp); err != nil {
		return nil, fmt.Errorf("create invoice request failed: %w", err)
	}
	return &resp, nil
}

// Sales возвращает список продаж
func (c *Client) Sales(ctx context.Context) ([]pkgapi.Sale, error) {
	var resp []pkgapi.Sale
	if err := c.do(ctx, http.MethodGet, "/api/sales", nil, &resp); err != nil {
		return nil, fmt.Errorf("sales request failed: %w", err)
	}
	return resp, nil
}

// GoldRate возвращает текущую котировку золота
func (c *Client) GoldRate(ctx context.Context) (*pkgapi.GoldRate, error) {
	var resp pkgapi.GoldRate
	if err := c.do(ctx, http.MethodGet, "/api/gold-currency", nil, &resp); err != nil {
		return nil, fmt.Errorf("gold rate request failed: %w", err)
	}
	return &resp, nil
}
