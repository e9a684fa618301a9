// ABOUTME: MCP tool implementations for the weekly schedule.
// ABOUTME: Covers day listing, exercise CRUD, weight logging, and progress stats.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/progress"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_days",
		Description: "List the seven days of the week with their names, rest flags, and exercise counts",
	}, s.handleListDays)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get one day with all its exercises and weight history",
	}, s.handleGetDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to a day",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_exercise",
		Description: "Edit an exercise; omitted fields keep their current values",
	}, s.handleUpdateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise and its weight history",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_weight",
		Description: "Log the weight lifted for an exercise; one entry per calendar date",
	}, s.handleRecordWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rename_day",
		Description: "Change a day's display name",
	}, s.handleRenameDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_rest_day",
		Description: "Flip a day between workout day and rest day",
	}, s.handleToggleRestDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Weight-progress stats for an exercise over a period",
	}, s.handleGetProgress)
}

// Tool input/output types

type listDaysInput struct {
	WorkDaysOnly bool `json:"work_days_only,omitempty" jsonschema:"Only list days that are not rest days"`
}

type daySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsRest    bool   `json:"is_rest"`
	Exercises int    `json:"exercises"`
}

type listDaysOutput struct {
	Days []daySummary `json:"days"`
}

type dayInput struct {
	Day string `json:"day" jsonschema:"Day id (mon..sun) or day name"`
}

type addExerciseInput struct {
	Day              string  `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	Name             string  `json:"name" jsonschema:"Exercise name"`
	Sets             int     `json:"sets" jsonschema:"Number of sets (at least 1)"`
	Reps             int     `json:"reps" jsonschema:"Reps per set (at least 1)"`
	Weight           float64 `json:"weight,omitempty" jsonschema:"Starting weight in kg"`
	MuscleType       string  `json:"muscle_type" jsonschema:"Primary muscle: chest, back, legs, shoulders, arms, or abs"`
	Position         string  `json:"position" jsonschema:"Position: upper, middle, lower, front, or rear"`
	SecondaryMuscles string  `json:"secondary_muscles,omitempty" jsonschema:"Free-text secondary muscles"`
	Image            string  `json:"image,omitempty" jsonschema:"Image URL or data URI"`
}

type updateExerciseInput struct {
	Day              string   `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	ID               string   `json:"id" jsonschema:"Exercise ID or prefix"`
	Name             string   `json:"name,omitempty" jsonschema:"New name"`
	Sets             int      `json:"sets,omitempty" jsonschema:"New number of sets"`
	Reps             int      `json:"reps,omitempty" jsonschema:"New reps per set"`
	Weight           *float64 `json:"weight,omitempty" jsonschema:"New current weight in kg"`
	MuscleType       string   `json:"muscle_type,omitempty" jsonschema:"New primary muscle"`
	Position         string   `json:"position,omitempty" jsonschema:"New position"`
	SecondaryMuscles *string  `json:"secondary_muscles,omitempty" jsonschema:"New secondary muscles text"`
	Image            *string  `json:"image,omitempty" jsonschema:"New image URL or data URI"`
}

type exerciseRefInput struct {
	Day string `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	ID  string `json:"id" jsonschema:"Exercise ID or prefix"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type recordWeightInput struct {
	Day    string  `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	ID     string  `json:"id" jsonschema:"Exercise ID or prefix"`
	Weight float64 `json:"weight" jsonschema:"Weight lifted in kg"`
	Date   string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type renameDayInput struct {
	Day  string `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	Name string `json:"name" jsonschema:"New display name"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type progressInput struct {
	Day    string `json:"day" jsonschema:"Day id (mon..sun) or day name"`
	ID     string `json:"id" jsonschema:"Exercise ID or prefix"`
	Period string `json:"period,omitempty" jsonschema:"week, month, 3months, all (default), or custom"`
	From   string `json:"from,omitempty" jsonschema:"Custom range start (YYYY-MM-DD), inclusive"`
	To     string `json:"to,omitempty" jsonschema:"Custom range end (YYYY-MM-DD), inclusive"`
}

type progressOutput struct {
	Exercise    string             `json:"exercise"`
	Period      string             `json:"period"`
	HasData     bool               `json:"has_data"`
	Max         float64            `json:"max"`
	First       float64            `json:"first"`
	Last        float64            `json:"last"`
	Improvement float64            `json:"improvement_percent"`
	Points      []models.WeightLog `json:"points"`
}

// Tool handlers

func (s *Server) handleListDays(ctx context.Context, req *mcp.CallToolRequest, input listDaysInput) (*mcp.CallToolResult, listDaysOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := s.store.Days()
	if input.WorkDaysOnly {
		days = s.store.WorkDays()
	}

	out := listDaysOutput{Days: make([]daySummary, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, daySummary{
			ID:        d.ID,
			Name:      d.Name,
			IsRest:    d.IsRest,
			Exercises: len(d.Exercises),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, models.DaySchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, models.DaySchedule{}, err
	}
	return nil, d, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	muscle, ok := models.ParseMuscleType(input.MuscleType)
	if !ok {
		return nil, exerciseOutput{}, fmt.Errorf("unknown muscle type: %s", input.MuscleType)
	}
	pos, ok := models.ParsePosition(input.Position)
	if !ok {
		return nil, exerciseOutput{}, fmt.Errorf("unknown position: %s", input.Position)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, exerciseOutput{}, err
	}

	e, err := s.store.AddOrUpdateExercise(d.ID, models.Exercise{
		Name:             input.Name,
		Sets:             input.Sets,
		Reps:             input.Reps,
		Weight:           input.Weight,
		MuscleType:       muscle,
		Position:         pos,
		SecondaryMuscles: input.SecondaryMuscles,
		Image:            input.Image,
	})
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      e.ID,
		Name:    e.Name,
		Message: fmt.Sprintf("Added %s to %s (ID: %s)%s", e.Name, d.Name, shortID(e.ID), s.warnIfUnsaved("add_exercise")),
	}, nil
}

func (s *Server) handleUpdateExercise(ctx context.Context, req *mcp.CallToolRequest, input updateExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, exerciseOutput{}, err
	}
	e, err := s.store.ResolveExercise(d.ID, input.ID)
	if err != nil {
		return nil, exerciseOutput{}, err
	}

	if input.Name != "" {
		e.Name = input.Name
	}
	if input.Sets != 0 {
		e.Sets = input.Sets
	}
	if input.Reps != 0 {
		e.Reps = input.Reps
	}
	if input.Weight != nil {
		e.Weight = *input.Weight
	}
	if input.MuscleType != "" {
		m, ok := models.ParseMuscleType(input.MuscleType)
		if !ok {
			return nil, exerciseOutput{}, fmt.Errorf("unknown muscle type: %s", input.MuscleType)
		}
		e.MuscleType = m
	}
	if input.Position != "" {
		p, ok := models.ParsePosition(input.Position)
		if !ok {
			return nil, exerciseOutput{}, fmt.Errorf("unknown position: %s", input.Position)
		}
		e.Position = p
	}
	if input.SecondaryMuscles != nil {
		e.SecondaryMuscles = *input.SecondaryMuscles
	}
	if input.Image != nil {
		e.Image = *input.Image
	}

	updated, err := s.store.AddOrUpdateExercise(d.ID, e)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to update exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      updated.ID,
		Name:    updated.Name,
		Message: fmt.Sprintf("Updated %s%s", updated.Name, s.warnIfUnsaved("update_exercise")),
	}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input exerciseRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	e, err := s.store.ResolveExercise(d.ID, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	s.store.DeleteExercise(d.ID, e.ID)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s from %s%s", e.Name, d.Name, s.warnIfUnsaved("delete_exercise")),
	}, nil
}

func (s *Server) handleRecordWeight(ctx context.Context, req *mcp.CallToolRequest, input recordWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	when := s.now()
	if input.Date != "" {
		date, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		when, _ = time.Parse(models.DateLayout, date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	e, err := s.store.ResolveExercise(d.ID, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.store.RecordWeight(d.ID, e.ID, input.Weight, when); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record weight: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s kg for %s on %s%s", formatKg(input.Weight), e.Name, models.DateOf(when), s.warnIfUnsaved("record_weight")),
	}, nil
}

func (s *Server) handleRenameDay(ctx context.Context, req *mcp.CallToolRequest, input renameDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.RenameDay(d.ID, input.Name)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Renamed %s to %q%s", d.ID, input.Name, s.warnIfUnsaved("rename_day")),
	}, nil
}

func (s *Server) handleToggleRestDay(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.ToggleRestDay(d.ID)

	state := "rest day"
	if d.IsRest {
		state = "workout day"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("%s is now a %s%s", d.Name, state, s.warnIfUnsaved("toggle_rest_day")),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, progressOutput, error) {
	period, err := progress.ParsePeriod(input.Period)
	if err != nil {
		return nil, progressOutput{}, err
	}
	r, err := parseRange(input.From, input.To)
	if err != nil {
		return nil, progressOutput{}, err
	}

	s.mu.Lock()
	d, err := s.store.ResolveDay(input.Day)
	if err != nil {
		s.mu.Unlock()
		return nil, progressOutput{}, err
	}
	e, err := s.store.ResolveExercise(d.ID, input.ID)
	s.mu.Unlock()
	if err != nil {
		return nil, progressOutput{}, err
	}

	filtered := progress.Filter(e.History, period, r, s.now())
	st, ok := progress.Summarize(e.History, filtered)

	out := progressOutput{
		Exercise: e.Name,
		Period:   string(period),
		HasData:  ok,
		Points:   filtered,
	}
	if ok {
		out.Max = st.Max
		out.First = st.First
		out.Last = st.Last
		out.Improvement = st.Improvement
	}
	return nil, out, nil
}

// parseRange normalizes optional custom bounds to YYYY-MM-DD.
func parseRange(from, to string) (progress.Range, error) {
	var (
		r   progress.Range
		err error
	)
	if from != "" {
		if r.From, err = models.ParseDate(from); err != nil {
			return r, err
		}
	}
	if to != "" {
		if r.To, err = models.ParseDate(to); err != nil {
			return r, err
		}
	}
	return r, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatKg(w float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", w), "0"), ".")
}
