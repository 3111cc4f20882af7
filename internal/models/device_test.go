package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureScanLists проверяет что все три режимных списка всегда не nil
func TestEnsureScanLists(t *testing.T) {
	d := Device{ID: "esp-1"}

	lists := d.EnsureScanLists()

	require.Len(t, lists, 3)
	for _, mode := range AllModes() {
		assert.NotNil(t, lists[mode], "list for mode %s must not be nil", mode)
		assert.Empty(t, lists[mode])
	}

	// Существующий список сохраняется как есть
	d.TagScanResults = map[Mode][]ScanResult{
		ModeInventory: {{ID: 1, DeviceID: "esp-1"}},
	}
	lists = d.EnsureScanLists()
	assert.Len(t, lists[ModeInventory], 1)
	assert.Empty(t, lists[ModeScan])
	assert.Empty(t, lists[ModeNewProduct])
}

// TestCloneDevices проверяет что копия глубокая:
// мутация копии не видна в оригинале
func TestCloneDevices(t *testing.T) {
	original := []Device{
		{
			ID: "esp-1",
			TagScanResults: map[Mode][]ScanResult{
				ModeScan: {{ID: 1, Name: "ring"}},
			},
		},
	}

	cloned := CloneDevices(original)
	require.Len(t, cloned, 1)

	cloned[0].TagScanResults[ModeScan][0].Name = "bracelet"
	cloned[0].TagScanResults[ModeInventory] = []ScanResult{{ID: 2}}

	assert.Equal(t, "ring", original[0].TagScanResults[ModeScan][0].Name)
	assert.NotContains(t, original[0].TagScanResults, ModeInventory)
}

// TestParseMode проверяет парсинг режима
func TestParseMode(t *testing.T) {
	for _, mode := range AllModes() {
		parsed, ok := ParseMode(string(mode))
		require.True(t, ok)
		assert.Equal(t, mode, parsed)
	}

	_, ok := ParseMode("Unknown")
	assert.False(t, ok)
}
