// ABOUTME: MCP resource implementations for the weekly schedule.
// ABOUTME: Provides gym://schedule and gym://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/gym/internal/models"
)

const (
	scheduleURI = "gym://schedule"
	todayURI    = "gym://today"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         scheduleURI,
		Name:        "Weekly Schedule",
		Description: "All seven days with exercises and weight history",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workout",
		Description: "Today's day with its exercises and the last logged weight of each",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	days := s.store.Days()
	s.mu.Unlock()

	return jsonResource(scheduleURI, days)
}

type todayExercise struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	MuscleType string  `json:"muscle_type"`
	LastLogged string  `json:"last_logged,omitempty"`
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.now()
	dayID := models.DayIDOf(now.Weekday())

	s.mu.Lock()
	d, ok := s.store.Day(dayID)
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("day not found: %s", dayID)
	}

	exercises := make([]todayExercise, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		te := todayExercise{
			ID:         e.ID,
			Name:       e.Name,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			MuscleType: string(e.MuscleType),
		}
		if last, ok := e.LastLog(); ok {
			te.LastLogged = last.Date
		}
		exercises = append(exercises, te)
	}

	result := map[string]interface{}{
		"date":      models.DateOf(now),
		"day":       d.ID,
		"name":      d.Name,
		"is_rest":   d.IsRest,
		"exercises": exercises,
	}
	return jsonResource(todayURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
