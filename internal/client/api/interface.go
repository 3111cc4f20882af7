package api

import (
	"context"

	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// ClientAPI defines the full typed surface of the shop server.
// Consumers that only mutate device state depend on narrower interfaces
// defined on their side (see mutate.API).
type ClientAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error)
	Logout(ctx context.Context) error

	Devices(ctx context.Context) ([]pkgapi.DevicePatch, error)
	ConnectedModules(ctx context.Context) ([]pkgapi.DevicePatch, error)
	CurrentScenario(ctx context.Context) (*pkgapi.ScenarioState, error)
	InitModules(ctx context.Context, req pkgapi.InitRequest) ([]pkgapi.DevicePatch, error)
	StartScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error)
	StopScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error)
	SetPower(ctx context.Context, req pkgapi.SetPowerRequest) (*pkgapi.DevicePatch, error)
	SetMode(ctx context.Context, req pkgapi.SetModeRequest) (*pkgapi.DevicePatch, error)
	SetActive(ctx context.Context, req pkgapi.SetActiveRequest) (*pkgapi.DevicePatch, error)
	ClearScanHistory(ctx context.Context, id, mode string) error

	SerialModules(ctx context.Context) ([]pkgapi.DevicePatch, error)
	SerialScanResults(ctx context.Context) ([]pkgapi.ScanRecord, error)

	Products(ctx context.Context) ([]pkgapi.Product, error)
	Invoices(ctx context.Context) ([]pkgapi.Invoice, error)
	CreateInvoice(ctx context.Context, req pkgapi.CreateInvoiceRequest) (*pkgapi.Invoice, error)
	Sales(ctx context.Context) ([]pkgapi.Sale, error)
	GoldRate(ctx context.Context) (*pkgapi.GoldRate, error)
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
