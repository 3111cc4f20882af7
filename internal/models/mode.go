package models

// Mode определяет контекст сканирования модуля. От режима зависит,
// в какой список tagScanResults попадают отсканированные записи.
type Mode string

const (
	// ModeInventory - инвентаризация торгового зала
	ModeInventory Mode = "Inventory"
	// ModeScan - сканирование для счета/продажи (Invoice)
	ModeScan Mode = "Scan"
	// ModeNewProduct - регистрация новых изделий
	ModeNewProduct Mode = "NewProduct"
)

// AllModes возвращает все известные режимы в фиксированном порядке
func AllModes() []Mode {
	return []Mode{ModeInventory, ModeScan, ModeNewProduct}
}

// ParseMode парсит строковое представление режима.
// Возвращает ok=false для неизвестного значения.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeInventory, ModeScan, ModeNewProduct:
		return Mode(s), true
	}
	return "", false
}
