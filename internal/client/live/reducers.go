package live

import (
	"github.com/goldpos/jrdclient/internal/models"
	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

// Чистые функции слияния realtime событий в кэшированные значения.
// Каждая получает предыдущее значение и payload и возвращает новое
// значение, не мутируя вход: копирование on-write делает редьюсеры
// безопасными при снапшотах оптимистичных мутаций.

// MergeRegistration сливает список частичных патчей в список модулей.
// Патч с известным id неглубоко мержится в существующий модуль, с
// новым id - вставляется как новый модуль. Не упомянутые модули не
// трогаются. Патчи без id пропускаются поштучно.
func MergeRegistration(devices []models.Device, patches []pkgapi.DevicePatch) []models.Device {
	out := models.CloneDevices(devices)
	if out == nil {
		out = []models.Device{}
	}

	for _, patch := range patches {
		if patch.ID == "" {
			continue
		}
		idx := indexByID(out, patch.ID)
		if idx < 0 {
			d := applyDevicePatch(models.Device{ID: patch.ID}, patch)
			d.TagScanResults = d.EnsureScanLists()
			out = append(out, d)
			continue
		}
		out[idx] = applyDevicePatch(out[idx], patch)
	}
	return out
}

// ApplyStatus неглубоко мержит телеметрию одного модуля.
// Остальные модули и остальные поля модуля не трогаются.
func ApplyStatus(devices []models.Device, update pkgapi.StatusUpdate) []models.Device {
	if update.ID == "" {
		return devices
	}
	idx := indexByID(devices, update.ID)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	out[idx].Status = mergeStatus(out[idx].Status, update.StatusPatch)
	return out
}

// ApplyPower заменяет только поля мощности совпавшего модуля
func ApplyPower(devices []models.Device, update pkgapi.PowerUpdate) []models.Device {
	idx := indexByID(devices, update.ID)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	if update.CurrentHardPower != nil {
		out[idx].CurrentHardPower = *update.CurrentHardPower
	}
	if update.CurrentSoftPower != nil {
		out[idx].CurrentSoftPower = *update.CurrentSoftPower
	}
	return out
}

// ApplyActive заменяет только isActive совпавшего модуля
func ApplyActive(devices []models.Device, update pkgapi.ActiveUpdate) []models.Device {
	idx := indexByID(devices, update.ID)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	out[idx].IsActive = update.IsActive
	return out
}

// ApplyMode заменяет только режим совпавшего модуля.
// Неизвестный режим игнорируется, чтобы кривой payload не ломал кэш.
func ApplyMode(devices []models.Device, update pkgapi.ModeUpdate) []models.Device {
	mode, ok := models.ParseMode(update.Mode)
	if !ok {
		return devices
	}
	idx := indexByID(devices, update.ID)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	out[idx].Mode = mode
	return out
}

// ApplyScan выставляет признак активного сканирования совпавшего модуля
func ApplyScan(devices []models.Device, id string, isScan bool) []models.Device {
	idx := indexByID(devices, id)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	out[idx].IsScan = isScan
	return out
}

// IngestScanResults вливает пачку scan записей в режимные списки их
// модулей. Целевой режим - текущий режим модуля-владельца. Запись с
// известным id мержится в существующую, с новым - добавляется в конец
// списка, и только добавление зовет cue (обновление уже известной
// метки не должно пищать). После обработки все три режимных списка
// каждого модуля гарантированно не nil.
// Битые записи (без id или deviceId, неизвестный модуль) пропускаются
// поштучно.
func IngestScanResults(devices []models.Device, records []pkgapi.ScanRecord, cue func()) []models.Device {
	out := models.CloneDevices(devices)

	for _, rec := range records {
		if rec.ID == 0 || rec.DeviceID == "" {
			continue
		}
		idx := indexByID(out, rec.DeviceID)
		if idx < 0 {
			continue
		}
		mode := out[idx].Mode
		if _, ok := models.ParseMode(string(mode)); !ok {
			continue
		}

		lists := out[idx].EnsureScanLists()
		list := lists[mode]

		found := -1
		for i, existing := range list {
			if existing.ID == rec.ID {
				found = i
				break
			}
		}
		if found >= 0 {
			list[found] = mergeScanRecord(list[found], rec)
		} else {
			list = append(list, scanResultFromRecord(rec))
			if cue != nil {
				cue()
			}
		}
		lists[mode] = list
		out[idx].TagScanResults = lists
	}

	// Инвариант: режимные списки существуют даже без новых данных
	for i := range out {
		out[i].TagScanResults = out[i].EnsureScanLists()
	}
	return out
}

// ClearHistory заменяет режимный список одного модуля пустым.
// Остальные модули и режимы не трогаются.
func ClearHistory(devices []models.Device, id string, mode models.Mode) []models.Device {
	idx := indexByID(devices, id)
	if idx < 0 {
		return devices
	}

	out := models.CloneDevices(devices)
	lists := out[idx].EnsureScanLists()
	lists[mode] = []models.ScanResult{}
	out[idx].TagScanResults = lists
	return out
}

// UpsertScanResult - редьюсер flat списка legacy serial потока:
// ограниченное кольцо последних увиденных записей, свежие в начале.
// Существующая запись с тем же натуральным ключом (id, либо epc)
// удаляется, новая вставляется в голову, список обрезается до
// capacity. ok=false если запись без ключа (она пропускается).
func UpsertScanResult(list []models.ScanResult, rec pkgapi.ScanRecord, capacity int) ([]models.ScanResult, bool) {
	incoming := scanResultFromRecord(rec)
	key := incoming.Key()
	if key == "" {
		return list, false
	}

	out := make([]models.ScanResult, 0, len(list)+1)
	out = append(out, incoming)
	for _, existing := range list {
		if existing.Key() == key {
			continue
		}
		out = append(out, existing)
	}

	if capacity > 0 && len(out) > capacity {
		out = out[:capacity]
	}
	return out, true
}

// indexByID находит модуль по id, -1 если не найден
func indexByID(devices []models.Device, id string) int {
	for i, d := range devices {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// applyDevicePatch неглубоко накладывает патч на модуль.
// nil поля патча не затирают существующие значения.
func applyDevicePatch(d models.Device, p pkgapi.DevicePatch) models.Device {
	if p.IP != nil {
		d.IP = *p.IP
	}
	if p.LastSeen != nil {
		d.LastSeen = *p.LastSeen
	}
	if p.Mode != nil {
		if mode, ok := models.ParseMode(*p.Mode); ok {
			d.Mode = mode
		}
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	if p.IsScan != nil {
		d.IsScan = *p.IsScan
	}
	if p.CurrentHardPower != nil {
		d.CurrentHardPower = *p.CurrentHardPower
	}
	if p.CurrentSoftPower != nil {
		d.CurrentSoftPower = *p.CurrentSoftPower
	}
	if p.Status != nil {
		d.Status = mergeStatus(d.Status, *p.Status)
	}
	return d
}

// mergeStatus неглубоко мержит патч телеметрии
func mergeStatus(st models.DeviceStatus, p pkgapi.StatusPatch) models.DeviceStatus {
	if p.RSSI != nil {
		st.RSSI = *p.RSSI
	}
	if p.BatteryVoltage != nil {
		st.BatteryVoltage = *p.BatteryVoltage
	}
	if p.BatteryPercent != nil {
		st.BatteryPercent = *p.BatteryPercent
	}
	if p.PowerSource != nil {
		st.PowerSource = *p.PowerSource
	}
	if p.ChipModel != nil {
		st.ChipModel = *p.ChipModel
	}
	if p.FreeHeap != nil {
		st.FreeHeap = *p.FreeHeap
	}
	if p.FlashSize != nil {
		st.FlashSize = *p.FlashSize
	}
	if p.ResetReason != nil {
		st.ResetReason = *p.ResetReason
	}
	if p.Timestamp != nil {
		st.Timestamp = *p.Timestamp
	}
	return st
}

// scanResultFromRecord строит кэшированную запись из wire записи
func scanResultFromRecord(rec pkgapi.ScanRecord) models.ScanResult {
	return mergeScanRecord(models.ScanResult{ID: rec.ID, EPC: rec.EPC, DeviceID: rec.DeviceID}, rec)
}

// mergeScanRecord накладывает непустые поля wire записи на существующую
func mergeScanRecord(existing models.ScanResult, rec pkgapi.ScanRecord) models.ScanResult {
	if rec.EPC != "" {
		existing.EPC = rec.EPC
	}
	if rec.DeviceID != "" {
		existing.DeviceID = rec.DeviceID
	}
	if rec.Name != nil {
		existing.Name = *rec.Name
	}
	if rec.Weight != nil {
		existing.Weight = *rec.Weight
	}
	if rec.Purity != nil {
		existing.Purity = *rec.Purity
	}
	if rec.LaborCost != nil {
		existing.LaborCost = *rec.LaborCost
	}
	if rec.Tags != nil {
		tags := make([]models.Tag, 0, len(rec.Tags))
		for _, tag := range rec.Tags {
			tags = append(tags, models.Tag{
				EPC:           tag.EPC,
				ID:            tag.ID,
				RSSI:          tag.RSSI,
				ScanTimestamp: tag.ScanTimestamp,
			})
		}
		existing.Tags = tags
	}
	if rec.Photos != nil {
		existing.Photos = append([]string(nil), rec.Photos...)
	}
	if rec.ScanRSSI != nil {
		existing.ScanRSSI = *rec.ScanRSSI
	}
	if rec.ScanTimestamp != nil {
		existing.ScanTimestamp = *rec.ScanTimestamp
	}
	return existing
}

// DevicesFromPatches строит список модулей из полного ответа сервера
func DevicesFromPatches(patches []pkgapi.DevicePatch) []models.Device {
	return MergeRegistration(nil, patches)
}

// ScenarioFromState приводит wire состояние сценария к кэшируемому.
// Неизвестный режим сбрасывается в nil.
func ScenarioFromState(state pkgapi.ScenarioState) models.Scenario {
	out := models.Scenario{IsActiveScenario: state.IsActiveScenario}
	if state.ScanMode != nil {
		if mode, ok := models.ParseMode(*state.ScanMode); ok {
			out.ScanMode = &mode
		}
	}
	return out
}

// ScanResultsFromRecords строит flat список из ответа serial потока
func ScanResultsFromRecords(records []pkgapi.ScanRecord) []models.ScanResult {
	out := make([]models.ScanResult, 0, len(records))
	for _, rec := range records {
		result := scanResultFromRecord(rec)
		if result.Key() == "" {
			continue
		}
		out = append(out, result)
	}
	return out
}
