// ABOUTME: Structural validation for schedules, exercises, and weight logs.
// ABOUTME: Uses validator struct tags plus cross-entity uniqueness checks.
package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("muscle", func(fl validator.FieldLevel) bool {
		return MuscleType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		return Position(fl.Field().String()).IsValid()
	})
	return v
}

// ValidateExercise checks a single exercise, including its history.
func ValidateExercise(e Exercise) error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	return checkHistory(e)
}

// ValidateDays checks a whole schedule. Every problem found is reported,
// not only the first one.
func ValidateDays(days []DaySchedule) error {
	var errs error
	dayIDs := make(map[string]bool, len(days))
	owners := make(map[string]string)

	for i, d := range days {
		if err := validate.Struct(d); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("day %d (%q): %w", i, d.ID, err))
			continue
		}
		if dayIDs[d.ID] {
			errs = multierr.Append(errs, fmt.Errorf("day %q: duplicate day id", d.ID))
		}
		dayIDs[d.ID] = true

		for _, e := range d.Exercises {
			if owner, ok := owners[e.ID]; ok {
				errs = multierr.Append(errs, fmt.Errorf("exercise %q: listed in both %s and %s", e.ID, owner, d.ID))
			}
			owners[e.ID] = d.ID
			if err := checkHistory(e); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}
	return errs
}

func checkHistory(e Exercise) error {
	seen := make(map[string]bool, len(e.History))
	for _, l := range e.History {
		if seen[l.Date] {
			return fmt.Errorf("exercise %q: duplicate history date %s", e.ID, l.Date)
		}
		seen[l.Date] = true
	}
	return nil
}

// Normalize rewrites imported data into canonical form in place: display
// labels become enum values, timestamps become calendar dates, and nil
// slices become empty ones. Values it cannot interpret are left for
// ValidateDays to reject.
func Normalize(days []DaySchedule) {
	for i := range days {
		d := &days[i]
		if d.Exercises == nil {
			d.Exercises = []Exercise{}
		}
		for j := range d.Exercises {
			e := &d.Exercises[j]
			if mt, ok := ParseMuscleType(string(e.MuscleType)); ok {
				e.MuscleType = mt
			}
			if pos, ok := ParsePosition(string(e.Position)); ok {
				e.Position = pos
			}
			if e.History == nil {
				e.History = []WeightLog{}
			}
			for k := range e.History {
				if date, err := ParseDate(e.History[k].Date); err == nil {
					e.History[k].Date = date
				}
			}
		}
	}
}
