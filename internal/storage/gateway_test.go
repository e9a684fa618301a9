// ABOUTME: Contract tests run against every local Gateway backend.
// ABOUTME: Covers first-run loads, round trips, key independence, and clears.
package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/harperreed/gym/internal/models"
)

type backend struct {
	name string
	open func(t *testing.T) Gateway
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T) Gateway {
			return NewMemoryStore()
		}},
		{"sqlite", func(t *testing.T) Gateway {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "gym.db"))
			if err != nil {
				t.Fatalf("OpenSQLite failed: %v", err)
			}
			return s
		}},
		{"badger", func(t *testing.T) Gateway {
			s, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
			if err != nil {
				t.Fatalf("OpenBadger failed: %v", err)
			}
			return s
		}},
	}
}

func sampleWeek() []models.DaySchedule {
	days := models.InitialDays()
	days[0].Exercises = []models.Exercise{{
		ID:         "e1",
		Name:       "Bench press",
		Sets:       3,
		Reps:       10,
		Weight:     52,
		MuscleType: models.MuscleChest,
		Position:   models.PositionMiddle,
		History: []models.WeightLog{
			{Date: "2024-03-01", Weight: 50},
			{Date: "2024-03-02", Weight: 52},
		},
	}}
	return days
}

func TestGatewayFirstRun(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			gw := b.open(t)
			defer gw.Close()

			days, err := gw.LoadSchedule()
			if err != nil {
				t.Fatalf("LoadSchedule failed: %v", err)
			}
			if days != nil {
				t.Errorf("expected nil schedule on first run, got %d days", len(days))
			}

			settings, err := gw.LoadSettings()
			if err != nil {
				t.Fatalf("LoadSettings failed: %v", err)
			}
			if settings != nil {
				t.Errorf("expected nil settings on first run, got %+v", settings)
			}
		})
	}
}

func TestGatewayRoundTrip(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			gw := b.open(t)
			defer gw.Close()

			if err := gw.SaveSchedule(sampleWeek()); err != nil {
				t.Fatalf("SaveSchedule failed: %v", err)
			}
			if err := gw.SaveSettings(models.Settings{DarkMode: true}); err != nil {
				t.Fatalf("SaveSettings failed: %v", err)
			}

			days, err := gw.LoadSchedule()
			if err != nil {
				t.Fatalf("LoadSchedule failed: %v", err)
			}
			if len(days) != 7 {
				t.Fatalf("len(days) = %d, want 7", len(days))
			}
			ex := days[0].Exercises[0]
			if ex.Name != "Bench press" || len(ex.History) != 2 || ex.History[1].Weight != 52 {
				t.Errorf("unexpected exercise after round trip: %+v", ex)
			}
			if !days[6].IsRest {
				t.Error("expected sunday to stay a rest day")
			}

			settings, err := gw.LoadSettings()
			if err != nil {
				t.Fatalf("LoadSettings failed: %v", err)
			}
			if settings == nil || !settings.DarkMode {
				t.Errorf("settings = %+v, want dark mode on", settings)
			}
		})
	}
}

func TestGatewayClearKeepsSettings(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			gw := b.open(t)
			defer gw.Close()

			_ = gw.SaveSchedule(sampleWeek())
			_ = gw.SaveSettings(models.Settings{DarkMode: true})

			if err := gw.ClearSchedule(); err != nil {
				t.Fatalf("ClearSchedule failed: %v", err)
			}
			// Clearing twice is not an error.
			if err := gw.ClearSchedule(); err != nil {
				t.Fatalf("second ClearSchedule failed: %v", err)
			}

			days, err := gw.LoadSchedule()
			if err != nil || days != nil {
				t.Errorf("LoadSchedule after clear = %v, %v; want nil, nil", days, err)
			}
			settings, _ := gw.LoadSettings()
			if settings == nil || !settings.DarkMode {
				t.Error("expected settings to survive a schedule clear")
			}
		})
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.SaveSchedule(sampleWeek()); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}
	_ = s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	days, err := s.LoadSchedule()
	if err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}
	if len(days) != 7 || len(days[0].Exercises) != 1 {
		t.Errorf("unexpected schedule after reopen: %+v", days)
	}
}

func TestMemoryStoreFailWrites(t *testing.T) {
	m := NewMemoryStore()
	m.FailWrites(true)

	err := m.SaveSchedule(sampleWeek())
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("SaveSchedule error = %v, want ErrWriteFailed", err)
	}
	if m.Writes(ScheduleKey) != 0 {
		t.Error("expected failed write to not be counted")
	}

	m.FailWrites(false)
	if err := m.SaveSchedule(sampleWeek()); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}
	if m.Writes(ScheduleKey) != 1 || !m.Has(ScheduleKey) {
		t.Error("expected one recorded write")
	}
}

func TestCorruptScheduleIsAnError(t *testing.T) {
	m := NewMemoryStore()
	_ = m.set(ScheduleKey, []byte(`{"not":"an array"}`))

	if _, err := m.LoadSchedule(); err == nil {
		t.Error("expected error decoding corrupt schedule")
	}
}
