package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/goldpos/jrdclient/internal/client/storage"
)

var prefsKey = []byte("modules")

// SavePrefs stores the whole module preference map
func (s *Storage) SavePrefs(ctx context.Context, prefs *storage.ModulePrefs) error {
	if prefs == nil {
		return fmt.Errorf("prefs is nil")
	}

	// Версию проставляем всегда, чтобы старые записи не оставались без нее
	toSave := *prefs
	toSave.Version = storage.PrefsVersion

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data, err := json.Marshal(&toSave)
		if err != nil {
			return fmt.Errorf("failed to marshal prefs: %w", err)
		}

		if err := bucket.Put(prefsKey, data); err != nil {
			return fmt.Errorf("failed to save prefs: %w", err)
		}

		return nil
	})
}

// GetPrefs retrieves the stored module preference map
func (s *Storage) GetPrefs(ctx context.Context) (*storage.ModulePrefs, error) {
	var prefs *storage.ModulePrefs

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data := bucket.Get(prefsKey)
		if data == nil {
			return storage.ErrPrefsNotFound
		}

		prefs = &storage.ModulePrefs{}
		if err := json.Unmarshal(data, prefs); err != nil {
			return fmt.Errorf("failed to unmarshal prefs: %w", err)
		}

		// Неизвестная версия схемы - не пытаемся интерпретировать данные
		if prefs.Version != storage.PrefsVersion {
			return storage.ErrPrefsVersion
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return prefs, nil
}
