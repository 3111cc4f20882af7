package mutate

import (
	"context"

	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API - серверные операции, которые контроллер мутаций выполняет
// после оптимистичного патча кэша. Реализуется api.Client.
type API interface {
	InitModules(ctx context.Context, req pkgapi.InitRequest) ([]pkgapi.DevicePatch, error)
	StartScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error)
	StopScenario(ctx context.Context, req pkgapi.ScenarioRequest) (*pkgapi.ScenarioResponse, error)
	SetPower(ctx context.Context, req pkgapi.SetPowerRequest) (*pkgapi.DevicePatch, error)
	SetMode(ctx context.Context, req pkgapi.SetModeRequest) (*pkgapi.DevicePatch, error)
	SetActive(ctx context.Context, req pkgapi.SetActiveRequest) (*pkgapi.DevicePatch, error)
	ClearScanHistory(ctx context.Context, id, mode string) error
}
