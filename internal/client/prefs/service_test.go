package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldpos/jrdclient/internal/client/storage"
)

// newMemoryStorage - мок хранилища с картой в памяти
func newMemoryStorage() *storage.PrefsStorageMock {
	var saved *storage.ModulePrefs
	return &storage.PrefsStorageMock{
		GetPrefsFunc: func(ctx context.Context) (*storage.ModulePrefs, error) {
			if saved == nil {
				return nil, storage.ErrPrefsNotFound
			}
			return saved, nil
		},
		SavePrefsFunc: func(ctx context.Context, prefs *storage.ModulePrefs) error {
			saved = prefs
			return nil
		},
	}
}

func TestGet_Empty(t *testing.T) {
	svc := NewService(newMemoryStorage(), nil)

	prefs, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, storage.PrefsVersion, prefs.Version)
	assert.Empty(t, prefs.Modules)
}

func TestSetModule_ReadModifyWrite(t *testing.T) {
	mock := newMemoryStorage()
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.SetModule(ctx, "esp-1", storage.ModulePref{Power: 20, Active: true, Mode: "Scan"}))
	require.NoError(t, svc.SetModule(ctx, "esp-2", storage.ModulePref{Power: 8, Mode: "Inventory"}))

	// вторая запись не затерла первую
	pref, ok, err := svc.Module(ctx, "esp-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, pref.Power)
	assert.True(t, pref.Active)

	_, ok, err = svc.Module(ctx, "esp-9")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Len(t, mock.SavePrefsCalls(), 2)
}

func TestInitSpecs_FallbackToDefault(t *testing.T) {
	svc := NewService(newMemoryStorage(), nil)
	ctx := context.Background()

	require.NoError(t, svc.SetModule(ctx, "esp-1", storage.ModulePref{Power: 20, Active: true, Mode: "Inventory"}))

	req, err := svc.InitSpecs(ctx, []string{"esp-1", "esp-2"})
	require.NoError(t, err)
	require.Len(t, req.Modules, 2)

	assert.Equal(t, 20, req.Modules[0].Power)
	assert.Equal(t, "Inventory", req.Modules[0].Mode)
	assert.True(t, req.Modules[0].Active)

	// незнакомый модуль получает дефолты
	assert.Equal(t, DefaultPref.Power, req.Modules[1].Power)
	assert.Equal(t, DefaultPref.Mode, req.Modules[1].Mode)
	assert.False(t, req.Modules[1].Active)
}

func TestOnChange(t *testing.T) {
	svc := NewService(newMemoryStorage(), nil)

	var gotID string
	var gotPref storage.ModulePref
	svc.OnChange(func(id string, pref storage.ModulePref) {
		gotID = id
		gotPref = pref
	})

	require.NoError(t, svc.SetModule(context.Background(), "esp-1", storage.ModulePref{Power: 5, Mode: "Scan"}))

	assert.Equal(t, "esp-1", gotID)
	assert.Equal(t, 5, gotPref.Power)
}
