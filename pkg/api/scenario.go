package api

// ScenarioState представляет серверное состояние скан-кампании
type ScenarioState struct {
	IsActiveScenario bool    `json:"isActiveScenario"`
	ScanMode         *string `json:"scanMode"`
}

// ScenarioRequest - запрос на запуск/остановку сценария сканирования
type ScenarioRequest struct {
	ModuleIDs []string `json:"moduleIds"`
	Mode      string   `json:"mode,omitempty"`
}

// ScenarioResponse - канонический ответ сервера на start/stop сценария.
// Modules содержит полное состояние затронутых модулей.
type ScenarioResponse struct {
	Scenario ScenarioState `json:"scenario"`
	Modules  []DevicePatch `json:"modules"`
}

// InitModule - желаемое начальное состояние одного модуля
type InitModule struct {
	ID     string `json:"id"`
	Power  int    `json:"power"`
	Mode   string `json:"mode"`
	Active bool   `json:"active"`
}

// InitRequest - запрос на инициализацию пачки модулей
type InitRequest struct {
	Modules []InitModule `json:"modules"`
}

// SetPowerRequest - установка мощности одного модуля
type SetPowerRequest struct {
	ID               string `json:"id"`
	CurrentHardPower *int   `json:"currentHardPower,omitempty"`
	CurrentSoftPower *int   `json:"currentSoftPower,omitempty"`
}

// SetModeRequest - установка режима одного модуля
type SetModeRequest struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}

// SetActiveRequest - включение/выключение RF тракта одного модуля
type SetActiveRequest struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
}
