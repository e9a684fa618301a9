// ABOUTME: Gateway interface for durable schedule and settings persistence.
// ABOUTME: Backends store two independent keys: schedule data and settings.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/gym/internal/models"
)

const (
	// ScheduleKey holds the serialized array of DaySchedule.
	ScheduleKey = "gym_tracker_data_v1"
	// SettingsKey holds the serialized Settings object.
	SettingsKey = "gym_tracker_settings_v1"
)

// ErrNotFound is returned by backends when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Gateway persists the full schedule and the user settings.
// Load methods return (nil, nil) when nothing has been stored yet.
type Gateway interface {
	LoadSchedule() ([]models.DaySchedule, error)
	SaveSchedule(days []models.DaySchedule) error
	ClearSchedule() error

	LoadSettings() (*models.Settings, error)
	SaveSettings(s models.Settings) error

	Close() error
}

// rawStore is the byte-level key-value contract every backend implements.
type rawStore interface {
	get(key string) ([]byte, error)
	set(key string, data []byte) error
	delete(key string) error
}

// kvGateway adapts a rawStore to the Gateway JSON contract.
type kvGateway struct {
	raw rawStore
}

func (g kvGateway) LoadSchedule() ([]models.DaySchedule, error) {
	days, err := loadJSON[[]models.DaySchedule](g.raw, ScheduleKey)
	if err != nil || days == nil {
		return nil, err
	}
	return *days, nil
}

func (g kvGateway) SaveSchedule(days []models.DaySchedule) error {
	return saveJSON(g.raw, ScheduleKey, days)
}

func (g kvGateway) ClearSchedule() error {
	if err := g.raw.delete(ScheduleKey); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear schedule: %w", err)
	}
	return nil
}

func (g kvGateway) LoadSettings() (*models.Settings, error) {
	return loadJSON[models.Settings](g.raw, SettingsKey)
}

func (g kvGateway) SaveSettings(s models.Settings) error {
	return saveJSON(g.raw, SettingsKey, s)
}

// loadJSON reads and decodes key, returning (nil, nil) when it is absent.
func loadJSON[T any](raw rawStore, key string) (*T, error) {
	data, err := raw.get(key)
	if errors.Is(err, ErrNotFound) || (err == nil && len(data) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return &result, nil
}

func saveJSON(raw rawStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := raw.set(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gym")
}
