// Package persist is the durable-storage adapter. It owns the key-value
// table holding history records, user settings and language selection, and is
// invoked by the host after state transitions; the in-memory stores never
// touch it directly.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staff-scheduler-backend/internal/model"
)

// Storage keys. They predate the backend rewrite and are kept stable so
// existing data survives.
const (
	KeyHistory  = "restaurant-scheduler-history"
	KeySettings = "restaurant-scheduler-settings"
	KeyLanguage = "restaurant-scheduler-language"
)

// HistoryVersion tags the persisted history document. A stored document with
// a different version is discarded on load rather than migrated.
const HistoryVersion = 1

// Themes accepted in settings.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// DefaultLanguage is used when no language has been stored.
const DefaultLanguage = "en"

// Settings is the persisted user-settings document.
type Settings struct {
	Theme string `json:"theme"`
}

type historyDocument struct {
	Records []model.HistoryRecord `json:"records"`
	Version int                   `json:"version"`
}

type languageDocument struct {
	Language string `json:"language"`
}

// KV is the GORM-backed key-value store.
type KV struct {
	db *gorm.DB
}

// NewKV creates a key-value store over the given database handle.
func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// SaveRecords persists the full history collection. Implements
// history.Persister.
func (kv *KV) SaveRecords(records []model.HistoryRecord) error {
	return kv.set(KeyHistory, historyDocument{Records: records, Version: HistoryVersion})
}

// LoadRecords returns the persisted history collection. A missing key yields
// an empty collection; a version mismatch discards the stored records with a
// logged warning instead of failing startup.
func (kv *KV) LoadRecords() ([]model.HistoryRecord, error) {
	var doc historyDocument
	found, err := kv.get(KeyHistory, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if doc.Version != HistoryVersion {
		log.Printf("Warning: stored history has version %d, expected %d; discarding %d records", doc.Version, HistoryVersion, len(doc.Records))
		return nil, nil
	}
	return doc.Records, nil
}

// SaveSettings persists the settings document.
func (kv *KV) SaveSettings(s Settings) error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	return kv.set(KeySettings, s)
}

// LoadSettings returns the persisted settings, defaulting the theme to
// "system".
func (kv *KV) LoadSettings() (Settings, error) {
	s := Settings{Theme: ThemeSystem}
	if _, err := kv.get(KeySettings, &s); err != nil {
		return Settings{Theme: ThemeSystem}, err
	}
	if s.Theme == "" {
		s.Theme = ThemeSystem
	}
	return s, nil
}

// SaveLanguage persists the UI language code.
func (kv *KV) SaveLanguage(code string) error {
	if code == "" {
		return errors.New("language code is required")
	}
	return kv.set(KeyLanguage, languageDocument{Language: code})
}

// LoadLanguage returns the persisted language code, defaulting to English.
func (kv *KV) LoadLanguage() (string, error) {
	var doc languageDocument
	found, err := kv.get(KeyLanguage, &doc)
	if err != nil {
		return DefaultLanguage, err
	}
	if !found || doc.Language == "" {
		return DefaultLanguage, nil
	}
	return doc.Language, nil
}

func (kv *KV) set(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}

	entry := model.KVEntry{Key: key, Value: string(payload)}
	if err := kv.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (kv *KV) get(key string, out any) (bool, error) {
	var entry model.KVEntry
	err := kv.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, fmt.Errorf("failed to decode stored value for key %q: %w", key, err)
	}
	return true, nil
}
