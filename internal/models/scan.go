package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Tag представляет одну RFID метку. EPC - натуральный ключ метки.
type Tag struct {
	EPC           string `json:"epc"`
	ID            *int64 `json:"id,omitempty"`
	RSSI          int    `json:"rssi"`
	ScanTimestamp int64  `json:"scantimestamp,omitempty"`
}

// ScanResult представляет одну отсканированную запись (изделие) в кэше.
// Внутри списка одного устройства для одного режима ID уникален:
// повторное событие с тем же ID мержится в существующую запись.
type ScanResult struct {
	ID            int64           `json:"id"`
	EPC           string          `json:"epc,omitempty"`
	DeviceID      string          `json:"deviceId"`
	Name          string          `json:"name,omitempty"`
	Weight        decimal.Decimal `json:"weight,omitempty"`
	Purity        int             `json:"purity,omitempty"`
	LaborCost     decimal.Decimal `json:"laborCost,omitempty"`
	Tags          []Tag           `json:"tags,omitempty"`
	Photos        []string        `json:"photos,omitempty"`
	ScanRSSI      int             `json:"scanRSSI,omitempty"`
	ScanTimestamp int64           `json:"scantimestamp,omitempty"`
}

// Key возвращает натуральный ключ записи для flat списка legacy
// serial потока: ID, либо EPC когда ID отсутствует (нулевой).
// Пустой ключ означает запись без идентификатора - такие пропускаются.
func (r ScanResult) Key() string {
	if r.ID != 0 {
		return strconv.FormatInt(r.ID, 10)
	}
	return r.EPC
}
