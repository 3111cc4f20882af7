package api

// DevicePatch представляет частичное обновление одного модуля (RFID ридера).
// Все поля кроме ID опциональны: отсутствующее в JSON поле остается nil
// и не должно затирать существующее значение в кэше.
type DevicePatch struct {
	ID               string       `json:"id"`
	IP               *string      `json:"ip,omitempty"`
	LastSeen         *int64       `json:"lastSeen,omitempty"`
	Mode             *string      `json:"mode,omitempty"`
	IsActive         *bool        `json:"isActive,omitempty"`
	IsScan           *bool        `json:"isScan,omitempty"`
	CurrentHardPower *int         `json:"currentHardPower,omitempty"`
	CurrentSoftPower *int         `json:"currentSoftPower,omitempty"`
	Status           *StatusPatch `json:"status,omitempty"`
}

// StatusPatch представляет частичное обновление телеметрии модуля.
// Сервер может прислать любое подмножество полей - merge должен быть
// неглубоким (shallow) и не трогать не указанные поля.
type StatusPatch struct {
	RSSI           *int     `json:"rssi,omitempty"`
	BatteryVoltage *float64 `json:"batteryVoltage,omitempty"`
	BatteryPercent *int     `json:"batteryPercent,omitempty"`
	PowerSource    *string  `json:"powerSource,omitempty"`
	ChipModel      *string  `json:"chipModel,omitempty"`
	FreeHeap       *int64   `json:"freeHeap,omitempty"`
	FlashSize      *int64   `json:"flashSize,omitempty"`
	ResetReason    *string  `json:"resetReason,omitempty"`
	Timestamp      *int64   `json:"timestamp,omitempty"` // epoch millis
}

// StatusUpdate - payload события esp-modules-status-updated
type StatusUpdate struct {
	ID string `json:"id"`
	StatusPatch
}

// PowerUpdate - payload события esp-modules-updated-power
type PowerUpdate struct {
	ID               string `json:"id"`
	CurrentHardPower *int   `json:"currentHardPower,omitempty"`
	CurrentSoftPower *int   `json:"currentSoftPower,omitempty"`
}

// ActiveUpdate - payload события esp-modules-updated-is-active
type ActiveUpdate struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
}

// ModeUpdate - payload события esp-modules-updated-mode
type ModeUpdate struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}

// ScanSignal - payload событий esp-modules-start-scan / esp-modules-stop-scan
type ScanSignal struct {
	ID string `json:"id"`
}

// ClearScanHistory - payload события esp-modules-clear-scan-history-by-mode
type ClearScanHistory struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}
