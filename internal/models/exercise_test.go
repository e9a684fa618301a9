// ABOUTME: Tests for Exercise, WeightLog, and the muscle/position enums.
// ABOUTME: Validates label parsing and deep copies.
package models

import (
	"testing"
)

func TestParseMuscleType(t *testing.T) {
	tests := []struct {
		input string
		want  MuscleType
		ok    bool
	}{
		{"chest", MuscleChest, true},
		{"  Legs ", MuscleLegs, true},
		{"ظهر", MuscleBack, true},
		{"بطن", MuscleAbs, true},
		{"calves", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseMuscleType(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseMuscleType(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input string
		want  Position
		ok    bool
	}{
		{"upper", PositionUpper, true},
		{"REAR", PositionRear, true},
		{"وسط", PositionMiddle, true},
		{"sideways", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePosition(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePosition(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEveryEnumHasLabel(t *testing.T) {
	for _, mt := range AllMuscleTypes {
		if MuscleLabels[mt] == "" {
			t.Errorf("missing label for muscle %s", mt)
		}
	}
	for _, p := range AllPositions {
		if PositionLabels[p] == "" {
			t.Errorf("missing label for position %s", p)
		}
	}
}

func TestExerciseClone(t *testing.T) {
	e := Exercise{
		ID:      "a",
		History: []WeightLog{{Date: "2024-03-01", Weight: 50}},
	}
	c := e.Clone()
	c.History[0].Weight = 99

	if e.History[0].Weight != 50 {
		t.Error("expected clone to not share history with original")
	}

	var empty Exercise
	if empty.Clone().History != nil {
		t.Error("expected nil history to stay nil")
	}
}

func TestLastLog(t *testing.T) {
	e := Exercise{}
	if _, ok := e.LastLog(); ok {
		t.Error("expected no last log on empty history")
	}

	e.History = []WeightLog{{Date: "2024-03-01", Weight: 50}, {Date: "2024-03-02", Weight: 55}}
	last, ok := e.LastLog()
	if !ok || last.Weight != 55 {
		t.Errorf("LastLog() = %+v, want weight 55", last)
	}
}
