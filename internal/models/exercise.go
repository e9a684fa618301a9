// ABOUTME: Exercise and WeightLog models for the weekly training schedule.
// ABOUTME: Defines the fixed MuscleType and Position enums with display labels.
package models

import (
	"strings"
)

// MuscleType is the primary muscle group an exercise targets.
type MuscleType string

const (
	MuscleChest     MuscleType = "chest"
	MuscleBack      MuscleType = "back"
	MuscleLegs      MuscleType = "legs"
	MuscleShoulders MuscleType = "shoulders"
	MuscleArms      MuscleType = "arms"
	MuscleAbs       MuscleType = "abs"
)

// AllMuscleTypes lists every muscle group in display order.
var AllMuscleTypes = []MuscleType{
	MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleAbs,
}

// MuscleLabels maps muscle groups to the labels used by the original mobile app.
// Backups written by that app carry these labels instead of the canonical values.
var MuscleLabels = map[MuscleType]string{
	MuscleChest:     "صدر",
	MuscleBack:      "ظهر",
	MuscleLegs:      "أرجل",
	MuscleShoulders: "أكتاف",
	MuscleArms:      "ذراع",
	MuscleAbs:       "بطن",
}

// IsValid reports whether m is one of the canonical muscle groups.
func (m MuscleType) IsValid() bool {
	for _, mt := range AllMuscleTypes {
		if mt == m {
			return true
		}
	}
	return false
}

// ParseMuscleType accepts a canonical value (case-insensitive) or a display label.
func ParseMuscleType(s string) (MuscleType, bool) {
	s = strings.TrimSpace(s)
	for _, mt := range AllMuscleTypes {
		if strings.EqualFold(string(mt), s) || MuscleLabels[mt] == s {
			return mt, true
		}
	}
	return "", false
}

// Position is the body or grip position an exercise is performed in.
type Position string

const (
	PositionUpper  Position = "upper"
	PositionMiddle Position = "middle"
	PositionLower  Position = "lower"
	PositionFront  Position = "front"
	PositionRear   Position = "rear"
)

// AllPositions lists every position in display order.
var AllPositions = []Position{
	PositionUpper, PositionMiddle, PositionLower, PositionFront, PositionRear,
}

// PositionLabels maps positions to the labels used by the original mobile app.
var PositionLabels = map[Position]string{
	PositionUpper:  "علوي",
	PositionMiddle: "وسط",
	PositionLower:  "سفلي",
	PositionFront:  "أمامي",
	PositionRear:   "خلفي",
}

// IsValid reports whether p is one of the canonical positions.
func (p Position) IsValid() bool {
	for _, pos := range AllPositions {
		if pos == p {
			return true
		}
	}
	return false
}

// ParsePosition accepts a canonical value (case-insensitive) or a display label.
func ParsePosition(s string) (Position, bool) {
	s = strings.TrimSpace(s)
	for _, pos := range AllPositions {
		if strings.EqualFold(string(pos), s) || PositionLabels[pos] == s {
			return pos, true
		}
	}
	return "", false
}

// WeightLog is one dated weight observation. Date is always YYYY-MM-DD.
type WeightLog struct {
	Date   string  `json:"date" yaml:"date" validate:"datetime=2006-01-02" diff:"date,identifier"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gte=0"`
}

// Exercise is a movement in a day's schedule together with its weight history.
type Exercise struct {
	ID               string      `json:"id" yaml:"id" validate:"required" diff:"id,identifier"`
	Name             string      `json:"name" yaml:"name" validate:"required"`
	Sets             int         `json:"sets" yaml:"sets" validate:"min=1"`
	Reps             int         `json:"reps" yaml:"reps" validate:"min=1"`
	Weight           float64     `json:"weight" yaml:"weight" validate:"gte=0"`
	Image            string      `json:"image,omitempty" yaml:"image,omitempty"`
	MuscleType       MuscleType  `json:"muscleType" yaml:"muscleType" validate:"muscle"`
	SecondaryMuscles string      `json:"secondaryMuscles" yaml:"secondaryMuscles"`
	Position         Position    `json:"position" yaml:"position" validate:"position"`
	History          []WeightLog `json:"history" yaml:"history" validate:"dive"`
}

// LastLog returns the most recent history entry, if any.
func (e *Exercise) LastLog() (WeightLog, bool) {
	if len(e.History) == 0 {
		return WeightLog{}, false
	}
	return e.History[len(e.History)-1], true
}

// Clone returns a deep copy of the exercise. A nil history stays nil.
func (e Exercise) Clone() Exercise {
	if e.History != nil {
		h := make([]WeightLog, len(e.History))
		copy(h, e.History)
		e.History = h
	}
	return e
}
