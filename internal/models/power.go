package models

// Таблица соответствия мощности RF тракта (dBm) и процентной шкалы UI.
// Отображение нелинейное и задано прошивкой ридера: валидны только
// значения из таблицы, любое другое число не имеет физического смысла.
var powerToPercent = map[int]int{
	0: 0, 1: 4, 2: 8, 3: 12, 4: 16, 5: 20, 6: 24, 7: 28, 8: 32,
	9: 36, 10: 40, 11: 44, 12: 47, 13: 51, 14: 55, 15: 58, 16: 62,
	17: 66, 18: 70, 19: 73, 20: 77, 21: 81, 22: 85, 23: 88, 24: 92,
	25: 96, 26: 100,
}

var percentToPower = func() map[int]int {
	m := make(map[int]int, len(powerToPercent))
	for dbm, pct := range powerToPercent {
		m[pct] = dbm
	}
	return m
}()

// PowerToPercent переводит мощность в dBm в проценты UI шкалы.
// ok=false для значения вне таблицы.
func PowerToPercent(dbm int) (int, bool) {
	pct, ok := powerToPercent[dbm]
	return pct, ok
}

// PercentToPower переводит проценты UI шкалы обратно в dBm.
// ok=false для значения вне таблицы - не-табличный процент нельзя
// молча округлять до ближайшего валидного.
func PercentToPower(percent int) (int, bool) {
	dbm, ok := percentToPower[percent]
	return dbm, ok
}
