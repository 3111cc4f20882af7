package api

import "github.com/shopspring/decimal"

// TagInfo описывает одну RFID метку внутри scan записи
type TagInfo struct {
	EPC           string `json:"epc"`
	ID            *int64 `json:"id,omitempty"`
	RSSI          int    `json:"rssi"`
	ScanTimestamp int64  `json:"scantimestamp,omitempty"`
}

// ScanRecord представляет одну отсканированную запись (товар) в событии.
// Натуральный ключ - ID, для legacy serial потока допускается EPC.
// Опциональные поля - указатели: отсутствующее поле не затирает значение,
// уже накопленное в кэше для той же записи.
type ScanRecord struct {
	ID            int64            `json:"id"`
	EPC           string           `json:"epc,omitempty"`
	DeviceID      string           `json:"deviceId"`
	Name          *string          `json:"name,omitempty"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	Purity        *int             `json:"purity,omitempty"`
	LaborCost     *decimal.Decimal `json:"laborCost,omitempty"`
	Tags          []TagInfo        `json:"tags,omitempty"`
	Photos        []string         `json:"photos,omitempty"`
	ScanRSSI      *int             `json:"scanRSSI,omitempty"`
	ScanTimestamp *int64           `json:"scantimestamp,omitempty"`
}
