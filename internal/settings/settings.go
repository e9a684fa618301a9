// ABOUTME: User preferences persisted under their own key.
// ABOUTME: Changing a preference never rewrites schedule data.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/storage"
)

// Settings holds the current preferences.
type Settings struct {
	gw      storage.Gateway
	logger  *log.Logger
	current models.Settings
	lastErr error
}

// Open loads preferences from gw, falling back to defaults on first run.
func Open(gw storage.Gateway, logger *log.Logger) (*Settings, error) {
	loaded, err := gw.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	s := &Settings{gw: gw, logger: logger}
	if loaded != nil {
		s.current = *loaded
	}
	return s, nil
}

// DarkMode reports whether dark mode is on.
func (s *Settings) DarkMode() bool {
	return s.current.DarkMode
}

// SetDarkMode updates the preference and writes the settings key.
func (s *Settings) SetDarkMode(on bool) {
	s.current.DarkMode = on
	if err := s.gw.SaveSettings(s.current); err != nil {
		s.lastErr = err
		s.logger.Warn("failed to save settings", "err", err)
		return
	}
	s.lastErr = nil
}

// Current returns a copy of all preferences.
func (s *Settings) Current() models.Settings {
	return s.current
}

// Err returns the error from the most recent write, or nil.
func (s *Settings) Err() error {
	return s.lastErr
}
