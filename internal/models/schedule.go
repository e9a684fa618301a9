// ABOUTME: DaySchedule model, the fixed seed week, and user Settings.
// ABOUTME: A week is always seven days with ids mon..sun; sun starts as rest.
package models

import (
	"time"
)

// DaySchedule is one weekday container in the weekly plan.
type DaySchedule struct {
	ID        string     `json:"id" yaml:"id" validate:"required" diff:"id,identifier"`
	Name      string     `json:"name" yaml:"name"`
	IsRest    bool       `json:"isRest" yaml:"isRest"`
	Exercises []Exercise `json:"exercises" yaml:"exercises" validate:"dive"`
}

// Clone returns a deep copy of the day and its exercises.
func (d DaySchedule) Clone() DaySchedule {
	exercises := make([]Exercise, len(d.Exercises))
	for i, e := range d.Exercises {
		exercises[i] = e.Clone()
		if exercises[i].History == nil {
			exercises[i].History = []WeightLog{}
		}
	}
	d.Exercises = exercises
	return d
}

// CloneDays deep-copies a whole week.
func CloneDays(days []DaySchedule) []DaySchedule {
	out := make([]DaySchedule, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

// Weekday ids in display order.
const (
	DayMonday    = "mon"
	DayTuesday   = "tue"
	DayWednesday = "wed"
	DayThursday  = "thu"
	DayFriday    = "fri"
	DaySaturday  = "sat"
	DaySunday    = "sun"
)

// AllDayIDs lists the canonical weekday ids in display order.
var AllDayIDs = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

// InitialDays returns a fresh seed week: six empty training days and Sunday as rest.
func InitialDays() []DaySchedule {
	return []DaySchedule{
		{ID: DayMonday, Name: "Monday", Exercises: []Exercise{}},
		{ID: DayTuesday, Name: "Tuesday", Exercises: []Exercise{}},
		{ID: DayWednesday, Name: "Wednesday", Exercises: []Exercise{}},
		{ID: DayThursday, Name: "Thursday", Exercises: []Exercise{}},
		{ID: DayFriday, Name: "Friday", Exercises: []Exercise{}},
		{ID: DaySaturday, Name: "Saturday", Exercises: []Exercise{}},
		{ID: DaySunday, Name: "Sunday (rest)", IsRest: true, Exercises: []Exercise{}},
	}
}

// DayIDOf maps a weekday to its schedule day id.
func DayIDOf(w time.Weekday) string {
	// AllDayIDs starts on Monday; time.Weekday starts on Sunday.
	return AllDayIDs[(int(w)+6)%7]
}

// Settings holds user preferences persisted independently of schedule data.
type Settings struct {
	DarkMode bool `json:"darkMode" yaml:"darkMode"`
}
