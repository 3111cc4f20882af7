package api

// Имена realtime событий, которые сервер публикует в socket канал.
// Написание должно байт-в-байт совпадать с серверным (включая опечатку
// в EventNewScanReceived - сервер шлет именно "recieved").
const (
	EventRegistrationUpdated = "esp-modules-registration-updated"
	EventStatusUpdated       = "esp-modules-status-updated"
	EventPowerUpdated        = "esp-modules-updated-power"
	EventActiveUpdated       = "esp-modules-updated-is-active"
	EventModeUpdated         = "esp-modules-updated-mode"
	EventStartScan           = "esp-modules-start-scan"
	EventStopScan            = "esp-modules-stop-scan"
	EventNewScanReceived     = "esp-modules-new-scan-recieved"
	EventClearScanHistory    = "esp-modules-clear-scan-history-by-mode"
	EventNewScanResult       = "new-scan-result"
)
