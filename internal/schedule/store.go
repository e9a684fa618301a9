// ABOUTME: Store holds the weekly schedule in memory and applies every mutation.
// ABOUTME: Each successful mutation writes the full schedule through the Gateway.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/gym/internal/logging"
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/storage"
)

var (
	// ErrDayNotFound rejects an exercise edit aimed at an unknown day.
	ErrDayNotFound = errors.New("day not found")
	// ErrExerciseNotFound is returned by lookups, never by mutations.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrAmbiguousID is returned when an id prefix matches several exercises.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
	// ErrInvalidExercise rejects a draft that fails validation.
	ErrInvalidExercise = errors.New("invalid exercise")
	// ErrInvalidWeight rejects a negative or non-finite weight.
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrBackdated rejects a weight logged before the newest history entry.
	ErrBackdated = errors.New("date is before the latest history entry")
)

// Store is the in-memory week of DaySchedules.
// It is not safe for concurrent use; one caller drives it at a time.
type Store struct {
	days    []models.DaySchedule
	gw      storage.Gateway
	logger  *log.Logger
	newID   func() string
	lastErr error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithIDGenerator replaces the UUID generator for new exercises.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) {
		s.newID = f
	}
}

// Open loads the schedule from gw, seeding the default week on first run.
func Open(gw storage.Gateway, opts ...Option) (*Store, error) {
	s := &Store{
		gw:     gw,
		logger: logging.Discard(),
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	days, err := gw.LoadSchedule()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	if days == nil {
		s.logger.Debug("no saved schedule, starting from the default week")
		days = models.InitialDays()
	} else {
		models.Normalize(days)
	}
	s.days = days
	return s, nil
}

// Err returns the error from the most recent write, or nil if it succeeded.
// Mutations never fail because of persistence; callers that care check here.
func (s *Store) Err() error {
	return s.lastErr
}

func (s *Store) persist() {
	if err := s.gw.SaveSchedule(s.days); err != nil {
		s.lastErr = err
		s.logger.Warn("failed to save schedule", "err", err)
		return
	}
	s.lastErr = nil
}

// Days returns a copy of the whole week in display order.
func (s *Store) Days() []models.DaySchedule {
	return models.CloneDays(s.days)
}

// WorkDays returns the days not flagged as rest.
func (s *Store) WorkDays() []models.DaySchedule {
	var out []models.DaySchedule
	for _, d := range s.days {
		if !d.IsRest {
			out = append(out, d.Clone())
		}
	}
	return out
}

// Day returns a copy of the day with the given id.
func (s *Store) Day(id string) (models.DaySchedule, bool) {
	d := s.day(id)
	if d == nil {
		return models.DaySchedule{}, false
	}
	return d.Clone(), true
}

// ResolveDay finds a day by id or, failing that, by case-insensitive name.
func (s *Store) ResolveDay(idOrName string) (models.DaySchedule, error) {
	if d, ok := s.Day(idOrName); ok {
		return d, nil
	}
	var match *models.DaySchedule
	for i := range s.days {
		if strings.EqualFold(strings.TrimSpace(s.days[i].Name), strings.TrimSpace(idOrName)) {
			if match != nil {
				return models.DaySchedule{}, fmt.Errorf("%w: %q names more than one day", ErrAmbiguousID, idOrName)
			}
			match = &s.days[i]
		}
	}
	if match == nil {
		return models.DaySchedule{}, fmt.Errorf("%w: %s", ErrDayNotFound, idOrName)
	}
	return match.Clone(), nil
}

// Exercise returns a copy of one exercise.
func (s *Store) Exercise(dayID, exerciseID string) (models.Exercise, bool) {
	e := s.exercise(dayID, exerciseID)
	if e == nil {
		return models.Exercise{}, false
	}
	return e.Clone(), true
}

// ResolveExercise finds an exercise in a day by full id or unique id prefix.
func (s *Store) ResolveExercise(dayID, idOrPrefix string) (models.Exercise, error) {
	d := s.day(dayID)
	if d == nil {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrDayNotFound, dayID)
	}
	if idOrPrefix == "" {
		return models.Exercise{}, fmt.Errorf("%w: empty id", ErrExerciseNotFound)
	}

	var matches []*models.Exercise
	for i := range d.Exercises {
		e := &d.Exercises[i]
		if e.ID == idOrPrefix {
			return e.Clone(), nil
		}
		if strings.HasPrefix(e.ID, idOrPrefix) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrExerciseNotFound, idOrPrefix)
	case 1:
		return matches[0].Clone(), nil
	default:
		return models.Exercise{}, fmt.Errorf("%w %s: matches %d exercises", ErrAmbiguousID, idOrPrefix, len(matches))
	}
}

// RecordWeight logs weight for today's calendar date. A second call on the
// same date overwrites that entry; a later date appends a new one. Either
// way the exercise's current weight follows. Unknown ids are ignored.
func (s *Store) RecordWeight(dayID, exerciseID string, weight float64, today time.Time) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	e := s.exercise(dayID, exerciseID)
	if e == nil {
		s.logger.Debug("record weight: no such exercise", "day", dayID, "exercise", exerciseID)
		return nil
	}

	date := models.DateOf(today)
	last, ok := e.LastLog()
	switch {
	case ok && last.Date == date:
		e.History[len(e.History)-1].Weight = weight
	case ok && date < last.Date:
		return fmt.Errorf("%w: %s < %s", ErrBackdated, date, last.Date)
	default:
		e.History = append(e.History, models.WeightLog{Date: date, Weight: weight})
	}
	e.Weight = weight

	s.persist()
	return nil
}

// AddOrUpdateExercise replaces the exercise whose id matches draft.ID in
// place, or appends draft as a new exercise with a fresh id. On update the
// existing history is kept unless draft carries one.
func (s *Store) AddOrUpdateExercise(dayID string, draft models.Exercise) (models.Exercise, error) {
	d := s.day(dayID)
	if d == nil {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrDayNotFound, dayID)
	}

	draft = draft.Clone()
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return models.Exercise{}, fmt.Errorf("%w: name is required", ErrInvalidExercise)
	}

	idx := -1
	if draft.ID != "" {
		idx = indexOf(d, draft.ID)
	}
	if idx >= 0 {
		if draft.History == nil {
			draft.History = d.Exercises[idx].Clone().History
		}
	} else {
		draft.ID = s.uniqueID()
	}
	if draft.History == nil {
		draft.History = []models.WeightLog{}
	}

	if err := models.ValidateExercise(draft); err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrInvalidExercise, err)
	}

	if idx >= 0 {
		d.Exercises[idx] = draft
	} else {
		d.Exercises = append(d.Exercises, draft)
	}

	s.persist()
	return draft.Clone(), nil
}

// DeleteExercise removes an exercise and its history. Unknown ids are ignored.
func (s *Store) DeleteExercise(dayID, exerciseID string) {
	d := s.day(dayID)
	if d == nil {
		return
	}
	idx := indexOf(d, exerciseID)
	if idx < 0 {
		return
	}
	d.Exercises = append(d.Exercises[:idx], d.Exercises[idx+1:]...)
	s.persist()
}

// RenameDay sets a day's display name. Empty names are allowed.
func (s *Store) RenameDay(dayID, name string) {
	d := s.day(dayID)
	if d == nil {
		return
	}
	d.Name = name
	s.persist()
}

// ToggleRestDay flips a day's rest flag. Its exercises are kept either way.
func (s *Store) ToggleRestDay(dayID string) {
	d := s.day(dayID)
	if d == nil {
		return
	}
	d.IsRest = !d.IsRest
	s.persist()
}

// Reset deletes the saved schedule and returns to the default week.
// Settings are untouched.
func (s *Store) Reset() error {
	if err := s.gw.ClearSchedule(); err != nil {
		return fmt.Errorf("reset schedule: %w", err)
	}
	s.days = models.InitialDays()
	s.lastErr = nil
	return nil
}

func (s *Store) day(id string) *models.DaySchedule {
	for i := range s.days {
		if s.days[i].ID == id {
			return &s.days[i]
		}
	}
	return nil
}

func (s *Store) exercise(dayID, exerciseID string) *models.Exercise {
	d := s.day(dayID)
	if d == nil {
		return nil
	}
	if idx := indexOf(d, exerciseID); idx >= 0 {
		return &d.Exercises[idx]
	}
	return nil
}

func indexOf(d *models.DaySchedule, exerciseID string) int {
	for i := range d.Exercises {
		if d.Exercises[i].ID == exerciseID {
			return i
		}
	}
	return -1
}

// uniqueID draws ids until one is unused anywhere in the week.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && !s.idInUse(id) {
			return id
		}
	}
}

func (s *Store) idInUse(id string) bool {
	for i := range s.days {
		if indexOf(&s.days[i], id) >= 0 {
			return true
		}
	}
	return false
}
