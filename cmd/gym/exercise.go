// ABOUTME: CLI commands for exercises within a day.
// ABOUTME: Supports add, edit, delete, and show with weight history.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/models"
)

var (
	exSets      int
	exReps      int
	exWeight    float64
	exMuscle    string
	exPosition  string
	exSecondary string
	exImage     string
	exName      string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage a day's exercises",
	Long: `Manage the exercises on a day.

Exercises are addressed by day plus ID. Any unique prefix of the ID works,
so the 8-character ID shown by 'gym day show' is enough.

MUSCLES:    chest, back, legs, shoulders, arms, abs
POSITIONS:  upper, middle, lower, front, rear

COMMANDS:

  add      Add an exercise
  edit     Change an exercise; unset flags keep their values
  delete   Remove an exercise and its history
  show     Show an exercise with its full weight history`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <day> <name>",
	Short: "Add an exercise to a day",
	Long: `Add an exercise to a day.

Examples:
  gym exercise add mon "Bench Press" --sets 4 --reps 8 --weight 60
  gym exercise add legs Squat --muscle legs --position lower`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDay(args[0])
		if err != nil {
			return err
		}

		muscle, pos, err := parseMuscleAndPosition(exMuscle, exPosition)
		if err != nil {
			return err
		}

		e, err := store.AddOrUpdateExercise(d.ID, models.Exercise{
			Name:             strings.Join(args[1:], " "),
			Sets:             exSets,
			Reps:             exReps,
			Weight:           exWeight,
			MuscleType:       muscle,
			Position:         pos,
			SecondaryMuscles: exSecondary,
			Image:            exImage,
		})
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		reportUnsaved()

		color.Green("✓ Added %s to %s", e.Name, d.Name)
		fmt.Printf("  %s %dx%d @ %s kg\n", faint.Sprint(shortID(e.ID)), e.Sets, e.Reps, formatKg(e.Weight))
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <day> <id>",
	Short: "Edit an exercise",
	Long: `Edit an exercise. Only the flags you pass are changed; history is kept.

Example:
  gym exercise edit mon a1b2c3d4 --reps 6 --name "Incline Bench"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e, err := resolveExercise(args[0], args[1])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			e.Name = exName
		}
		if flags.Changed("sets") {
			e.Sets = exSets
		}
		if flags.Changed("reps") {
			e.Reps = exReps
		}
		if flags.Changed("weight") {
			e.Weight = exWeight
		}
		if flags.Changed("muscle") {
			m, ok := models.ParseMuscleType(exMuscle)
			if !ok {
				return fmt.Errorf("unknown muscle type: %s", exMuscle)
			}
			e.MuscleType = m
		}
		if flags.Changed("position") {
			p, ok := models.ParsePosition(exPosition)
			if !ok {
				return fmt.Errorf("unknown position: %s", exPosition)
			}
			e.Position = p
		}
		if flags.Changed("secondary") {
			e.SecondaryMuscles = exSecondary
		}
		if flags.Changed("image") {
			e.Image = exImage
		}

		updated, err := store.AddOrUpdateExercise(d.ID, e)
		if err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
		reportUnsaved()

		color.Green("✓ Updated %s", updated.Name)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <day> <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise and its history",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e, err := resolveExercise(args[0], args[1])
		if err != nil {
			return err
		}
		store.DeleteExercise(d.ID, e.ID)
		reportUnsaved()

		color.Green("✓ Deleted %s from %s", e.Name, d.Name)
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <day> <id>",
	Short: "Show an exercise with its weight history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := resolveExercise(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", accent.Sprint(e.Name), faint.Sprint(e.ID))
		fmt.Printf("  Sets x Reps:  %dx%d\n", e.Sets, e.Reps)
		fmt.Printf("  Weight:       %s kg\n", formatKg(e.Weight))
		fmt.Printf("  Muscle:       %s\n", e.MuscleType)
		if e.SecondaryMuscles != "" {
			fmt.Printf("  Secondary:    %s\n", e.SecondaryMuscles)
		}
		fmt.Printf("  Position:     %s\n", e.Position)
		if e.Image != "" {
			fmt.Printf("  Image:        %s\n", truncate(e.Image, 60))
		}

		if len(e.History) == 0 {
			fmt.Println(faint.Sprint("\n  No weight logged yet."))
			return nil
		}
		fmt.Println("\n  History:")
		for _, l := range e.History {
			fmt.Printf("    %s  %s kg\n", faint.Sprint(l.Date), formatKg(l.Weight))
		}
		return nil
	},
}

func parseMuscleAndPosition(muscle, position string) (models.MuscleType, models.Position, error) {
	m, ok := models.ParseMuscleType(muscle)
	if !ok {
		return "", "", fmt.Errorf("unknown muscle type: %s", muscle)
	}
	p, ok := models.ParsePosition(position)
	if !ok {
		return "", "", fmt.Errorf("unknown position: %s", position)
	}
	return m, p, nil
}

func addExerciseFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&exSets, "sets", 3, "number of sets")
	cmd.Flags().IntVar(&exReps, "reps", 12, "reps per set")
	cmd.Flags().Float64VarP(&exWeight, "weight", "w", 0, "current weight in kg")
	cmd.Flags().StringVarP(&exMuscle, "muscle", "m", string(models.MuscleChest), "primary muscle")
	cmd.Flags().StringVarP(&exPosition, "position", "p", string(models.PositionMiddle), "position")
	cmd.Flags().StringVar(&exSecondary, "secondary", "", "secondary muscles (free text)")
	cmd.Flags().StringVar(&exImage, "image", "", "image URL or data URI")
}

func init() {
	addExerciseFlags(exerciseAddCmd)
	addExerciseFlags(exerciseEditCmd)
	exerciseEditCmd.Flags().StringVar(&exName, "name", "", "new name")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	rootCmd.AddCommand(exerciseCmd)
}
