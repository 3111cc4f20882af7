package models

// DeviceStatus - снимок телеметрии модуля. Обновляется неглубоким патчем:
// сервер присылает любое подмножество полей, остальные сохраняются.
type DeviceStatus struct {
	RSSI           int     `json:"rssi,omitempty"`
	BatteryVoltage float64 `json:"batteryVoltage,omitempty"`
	BatteryPercent int     `json:"batteryPercent,omitempty"`
	PowerSource    string  `json:"powerSource,omitempty"`
	ChipModel      string  `json:"chipModel,omitempty"`
	FreeHeap       int64   `json:"freeHeap,omitempty"`
	FlashSize      int64   `json:"flashSize,omitempty"`
	ResetReason    string  `json:"resetReason,omitempty"`
	Timestamp      int64   `json:"timestamp,omitempty"` // epoch millis
}

// Device представляет один физический RFID ридер (ESP32 модуль) в кэше.
// Записи создаются при первом упоминании id в registration событии или
// в ответе list-fetch и живут до полной перезагрузки кэш-записи.
type Device struct {
	ID               string                `json:"id"`
	IP               string                `json:"ip,omitempty"`
	LastSeen         int64                 `json:"lastSeen,omitempty"`
	Mode             Mode                  `json:"mode,omitempty"`
	IsActive         bool                  `json:"isActive"`
	IsScan           bool                  `json:"isScan"`
	CurrentHardPower int                   `json:"currentHardPower,omitempty"`
	CurrentSoftPower int                   `json:"currentSoftPower,omitempty"`
	Status           DeviceStatus          `json:"status,omitempty"`
	TagScanResults   map[Mode][]ScanResult `json:"tagScanResults,omitempty"`
}

// EnsureScanLists гарантирует что все три режимных списка не nil.
// Возвращает новую map, исходная не мутируется.
func (d Device) EnsureScanLists() map[Mode][]ScanResult {
	out := make(map[Mode][]ScanResult, len(AllModes()))
	for mode, list := range d.TagScanResults {
		out[mode] = list
	}
	for _, mode := range AllModes() {
		if out[mode] == nil {
			out[mode] = []ScanResult{}
		}
	}
	return out
}

// CloneDevices делает глубокую копию списка устройств.
// Используется для snapshot/rollback в оптимистичных мутациях.
func CloneDevices(devices []Device) []Device {
	if devices == nil {
		return nil
	}
	out := make([]Device, len(devices))
	for i, d := range devices {
		out[i] = d
		if d.TagScanResults != nil {
			results := make(map[Mode][]ScanResult, len(d.TagScanResults))
			for mode, list := range d.TagScanResults {
				copied := make([]ScanResult, len(list))
				copy(copied, list)
				results[mode] = copied
			}
			out[i].TagScanResults = results
		}
	}
	return out
}
