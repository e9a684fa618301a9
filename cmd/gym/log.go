// ABOUTME: CLI command for logging the weight lifted on an exercise.
// ABOUTME: One entry per calendar date; logging twice on a date overwrites it.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/models"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log <day> <id> <weight>",
	Short: "Log the weight lifted for an exercise",
	Long: `Log today's weight for an exercise. The exercise's current weight follows.

Logging again on the same date replaces that date's entry. Use --date to
log a past session; it must not be earlier than the newest entry.

Examples:
  gym log mon a1b2 62.5
  gym log mon a1b2 60 --date 2024-03-01`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e, err := resolveExercise(args[0], args[1])
		if err != nil {
			return err
		}
		weight, err := parseWeight(args[2])
		if err != nil {
			return err
		}

		when, err := logTime(logDate, time.Now())
		if err != nil {
			return err
		}

		if err := store.RecordWeight(d.ID, e.ID, weight, when); err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}
		reportUnsaved()

		color.Green("✓ Logged %s kg for %s", formatKg(weight), e.Name)
		fmt.Printf("  %s\n", faint.Sprint(models.DateOf(when)))
		return nil
	},
}

// logTime returns now, or the given YYYY-MM-DD date when set.
func logTime(date string, now time.Time) (time.Time, error) {
	if date == "" {
		return now, nil
	}
	normalized, err := models.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(models.DateLayout, normalized)
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date of the session (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(logCmd)
}
