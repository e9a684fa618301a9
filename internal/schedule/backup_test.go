// ABOUTME: Tests for schedule import, export, and import previews.
// ABOUTME: Imports must replace wholesale or leave the store untouched.
package schedule

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/gym/internal/storage"
	"github.com/r3labs/diff"
)

const legacyBackup = `[
  {"id":"mon","name":"الاثنين","isRest":false,"exercises":[
    {"id":"k3j9x8a1q","name":"Bench","sets":4,"reps":10,"weight":55,
     "muscleType":"صدر","secondaryMuscles":"triceps","position":"وسط",
     "history":[{"date":"2024-03-01","weight":50},{"date":"2024-03-02","weight":55}]}
  ]},
  {"id":"sun","name":"الأحد (راحة)","isRest":true,"exercises":[]}
]`

func TestImportRejectsNonArray(t *testing.T) {
	inputs := map[string]string{
		"object":  `{"not": "an array"}`,
		"string":  `"days"`,
		"null":    `null`,
		"garbage": `{{{`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			s, gw := newTestStore(t)
			mustAdd(t, s, "mon", draft("Squat"))
			before := s.Days()
			writes := gw.Writes(storage.ScheduleKey)

			err := s.Import(FormatJSON, []byte(input))
			if !errors.Is(err, ErrMalformedImport) {
				t.Fatalf("Import error = %v, want ErrMalformedImport", err)
			}
			after := s.Days()
			if len(after) != len(before) || len(after[0].Exercises) != 1 {
				t.Error("expected store unchanged after rejected import")
			}
			if gw.Writes(storage.ScheduleKey) != writes {
				t.Error("expected no write after rejected import")
			}
		})
	}
}

func TestImportRejectsInvalidFields(t *testing.T) {
	inputs := map[string]string{
		"missing day id":     `[{"name":"x","isRest":false,"exercises":[]}]`,
		"bad muscle":         `[{"id":"mon","exercises":[{"id":"a","name":"x","sets":1,"reps":1,"muscleType":"calves","position":"upper","history":[]}]}]`,
		"zero sets":          `[{"id":"mon","exercises":[{"id":"a","name":"x","sets":0,"reps":1,"muscleType":"chest","position":"upper","history":[]}]}]`,
		"wrong type":         `[{"id":"mon","exercises":[{"id":"a","name":"x","sets":"3","reps":1,"muscleType":"chest","position":"upper"}]}]`,
		"duplicate day":      `[{"id":"mon","exercises":[]},{"id":"mon","exercises":[]}]`,
		"bad history date":   `[{"id":"mon","exercises":[{"id":"a","name":"x","sets":1,"reps":1,"muscleType":"chest","position":"upper","history":[{"date":"soon","weight":1}]}]}]`,
		"duplicate log date": `[{"id":"mon","exercises":[{"id":"a","name":"x","sets":1,"reps":1,"muscleType":"chest","position":"upper","history":[{"date":"2024-01-01","weight":1},{"date":"2024-01-01","weight":2}]}]}]`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestStore(t)
			if err := s.Import(FormatJSON, []byte(input)); !errors.Is(err, ErrMalformedImport) {
				t.Errorf("Import error = %v, want ErrMalformedImport", err)
			}
			if len(s.Days()) != 7 {
				t.Error("expected store unchanged")
			}
		})
	}
}

func TestImportReplacesWholesale(t *testing.T) {
	s, gw := newTestStore(t)
	old := mustAdd(t, s, "tue", draft("Old"))

	if err := s.Import(FormatJSON, []byte(legacyBackup)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	days := s.Days()
	if len(days) != 2 || days[0].ID != "mon" || days[1].ID != "sun" {
		t.Fatalf("unexpected days after import: %+v", days)
	}
	if _, ok := s.Day("tue"); ok {
		t.Error("expected tue removed by import")
	}
	if _, ok := s.Exercise("tue", old.ID); ok {
		t.Error("expected old exercise removed by import")
	}

	e := days[0].Exercises[0]
	if e.MuscleType != "chest" || e.Position != "middle" {
		t.Errorf("expected labels normalized, got %s/%s", e.MuscleType, e.Position)
	}
	if len(e.History) != 2 || e.Weight != 55 {
		t.Errorf("unexpected imported exercise: %+v", e)
	}
	if !gw.Has(storage.ScheduleKey) {
		t.Error("expected import to persist")
	}

	// Imported exercises keep working with the normal mutations.
	if err := s.RecordWeight("mon", e.ID, 57, time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("RecordWeight failed: %v", err)
	}
	got, _ := s.Exercise("mon", e.ID)
	if len(got.History) != 3 || got.Weight != 57 {
		t.Errorf("unexpected history after import: %+v", got.History)
	}
}

func TestImportEmptyArray(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Import(FormatJSON, []byte(`[]`)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(s.Days()) != 0 {
		t.Errorf("expected empty week, got %d days", len(s.Days()))
	}
}

func TestExportRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			s, gw := newTestStore(t)
			e := mustAdd(t, s, "mon", draft("Bench"))
			_ = s.RecordWeight("mon", e.ID, 50, march(1))
			_ = s.RecordWeight("mon", e.ID, 55, march(2))
			s.ToggleRestDay("wed")
			writes := gw.Writes(storage.ScheduleKey)

			data, err := s.Export(format)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			if gw.Writes(storage.ScheduleKey) != writes {
				t.Error("expected export to not write")
			}

			other, _ := newTestStore(t)
			if err := other.Import(format, data); err != nil {
				t.Fatalf("Import failed: %v", err)
			}
			got, ok := other.Exercise("mon", e.ID)
			if !ok || len(got.History) != 2 || got.Weight != 55 {
				t.Errorf("unexpected exercise after round trip: %+v", got)
			}
			if wed, _ := other.Day("wed"); !wed.IsRest {
				t.Error("expected rest flag to survive round trip")
			}
		})
	}
}

func TestExportJSONShape(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "mon", draft("Bench"))

	data, err := s.Export(FormatJSON)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not an array of objects: %v", err)
	}
	for _, key := range []string{"id", "name", "isRest", "exercises"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("day missing key %q", key)
		}
	}
	ex := raw[0]["exercises"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "name", "sets", "reps", "weight", "muscleType", "position", "history"} {
		if _, ok := ex[key]; !ok {
			t.Errorf("exercise missing key %q", key)
		}
	}
	if _, ok := ex["image"]; ok {
		t.Error("expected empty image to be omitted")
	}
	if h, ok := ex["history"].([]any); !ok || len(h) != 0 {
		t.Errorf("expected history to be an empty array, got %v", ex["history"])
	}
}

func TestImportYAMLRejectsMapping(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Import(FormatYAML, []byte("days:\n  - id: mon\n"))
	if !errors.Is(err, ErrMalformedImport) {
		t.Errorf("Import error = %v, want ErrMalformedImport", err)
	}
}

func TestPreviewImport(t *testing.T) {
	s, gw := newTestStore(t)
	writes := gw.Writes(storage.ScheduleKey)

	changes, err := s.PreviewImport(FormatJSON, []byte(legacyBackup))
	if err != nil {
		t.Fatalf("PreviewImport failed: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("expected changes in preview")
	}

	var sawDelete bool
	for _, c := range changes {
		if c.Type == diff.DELETE {
			sawDelete = true
		}
	}
	if !sawDelete {
		t.Errorf("expected deletes for the dropped days in %+v", changes)
	}

	if len(s.Days()) != 7 || gw.Writes(storage.ScheduleKey) != writes {
		t.Error("expected preview to leave the store untouched")
	}

	if _, err := s.PreviewImport(FormatJSON, []byte(`{}`)); !errors.Is(err, ErrMalformedImport) {
		t.Errorf("expected ErrMalformedImport, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"json", "JSON", "yaml", "yml"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
	if FormatFromPath("backup.YML") != FormatYAML || FormatFromPath("backup.json") != FormatJSON {
		t.Error("unexpected FormatFromPath result")
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	got := ExportFilename(FormatJSON, now)
	if got != "gym_backup_2024-03-09.json" {
		t.Errorf("ExportFilename() = %s", got)
	}
	if !strings.HasSuffix(ExportFilename(FormatYAML, now), ".yaml") {
		t.Error("expected yaml extension")
	}
}
