// ABOUTME: Schedule export and import in JSON and YAML.
// ABOUTME: Imports must be a top-level array and pass full validation before replacing the week.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/gym/internal/models"
	"github.com/r3labs/diff"
	"gopkg.in/yaml.v3"
)

// ErrMalformedImport rejects an import without touching the store.
var ErrMalformedImport = errors.New("malformed import")

// Format is a backup serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml, or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %q (use json or yaml)", s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ExportFilename suggests a backup file name stamped with now's date.
func ExportFilename(format Format, now time.Time) string {
	return fmt.Sprintf("gym_backup_%s.%s", models.DateOf(now), format)
}

// Export serializes the whole week. It never mutates the store.
func (s *Store) Export(format Format) ([]byte, error) {
	days := models.CloneDays(s.days)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(days, "", "  ")
	case FormatYAML:
		return yaml.Marshal(days)
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}

// Import replaces the whole week with data. Anything other than a valid
// array of days is rejected and the store is left as it was.
func (s *Store) Import(format Format, data []byte) error {
	days, err := decodeImport(format, data)
	if err != nil {
		return err
	}
	s.days = days
	s.persist()
	return nil
}

// PreviewImport reports what Import would change without applying it.
func (s *Store) PreviewImport(format Format, data []byte) (diff.Changelog, error) {
	days, err := decodeImport(format, data)
	if err != nil {
		return nil, err
	}
	changes, err := diff.Diff(s.days, days)
	if err != nil {
		return nil, fmt.Errorf("diff schedules: %w", err)
	}
	return changes, nil
}

func decodeImport(format Format, data []byte) ([]models.DaySchedule, error) {
	var (
		unmarshal func([]byte, any) error
		raw       any
	)
	switch format {
	case FormatJSON:
		unmarshal = json.Unmarshal
	case FormatYAML:
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}

	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	if _, ok := raw.([]any); !ok {
		return nil, fmt.Errorf("%w: top level must be an array of days", ErrMalformedImport)
	}

	var days []models.DaySchedule
	if err := unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	models.Normalize(days)
	if err := models.ValidateDays(days); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	return days, nil
}
