// ABOUTME: Shared CLI helpers for argument resolution and terminal output.
// ABOUTME: Dark mode picks the accent palette used by every command.
package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/harperreed/gym/internal/config"
	"github.com/harperreed/gym/internal/models"
)

var (
	accent = color.New(color.FgBlue, color.Bold)
	faint  = color.New(color.Faint)
)

// applyPalette switches accent colors for dark or light terminals.
func applyPalette(dark bool) {
	if dark {
		accent = color.New(color.FgHiCyan, color.Bold)
		return
	}
	accent = color.New(color.FgBlue, color.Bold)
}

func mcpLogPath(c *config.Config) string {
	return filepath.Join(c.GetDataDir(), "mcp.log")
}

// reportUnsaved warns when the last change stayed in memory only.
func reportUnsaved() {
	if err := store.Err(); err != nil {
		color.Yellow("⚠ Change not saved: %v", err)
	}
}

func resolveDay(arg string) (models.DaySchedule, error) {
	return store.ResolveDay(arg)
}

func resolveExercise(dayArg, exArg string) (models.DaySchedule, models.Exercise, error) {
	d, err := store.ResolveDay(dayArg)
	if err != nil {
		return models.DaySchedule{}, models.Exercise{}, err
	}
	e, err := store.ResolveExercise(d.ID, exArg)
	if err != nil {
		return models.DaySchedule{}, models.Exercise{}, err
	}
	return d, e, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight: %s", s)
	}
	return w, nil
}

// formatKg drops trailing zeros: 60 -> "60", 62.50 -> "62.5".
func formatKg(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func dayTitle(d models.DaySchedule) string {
	name := d.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	if d.IsRest {
		return fmt.Sprintf("%s %s", accent.Sprint(name), faint.Sprint("[rest]"))
	}
	return accent.Sprint(name)
}

func printExerciseLine(e models.Exercise) {
	last := ""
	if l, ok := e.LastLog(); ok {
		last = faint.Sprintf(" (last %s)", l.Date)
	}
	fmt.Printf("  %s %s %dx%d @ %s kg  %s%s\n",
		faint.Sprint(shortID(e.ID)),
		padRight(truncate(e.Name, 24), 24),
		e.Sets, e.Reps,
		formatKg(e.Weight),
		faint.Sprint(e.MuscleType),
		last)
}

func printDay(d models.DaySchedule) {
	fmt.Printf("%s %s\n", faint.Sprint(d.ID), dayTitle(d))
	if len(d.Exercises) == 0 {
		fmt.Println(faint.Sprint("  No exercises."))
		return
	}
	for _, e := range d.Exercises {
		printExerciseLine(e)
	}
}
