// ABOUTME: CLI commands for a single day.
// ABOUTME: Supports show, rename, and toggling the rest flag.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:     "day",
	Aliases: []string{"d"},
	Short:   "Show or edit a day",
	Long: `Show or edit a single day. Days are addressed by id (mon..sun) or name.

COMMANDS:

  show     Show a day's exercises
  rename   Change a day's display name
  rest     Toggle between rest day and workout day`,
}

var dayShowCmd = &cobra.Command{
	Use:   "show <day>",
	Short: "Show a day's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDay(args[0])
		if err != nil {
			return err
		}
		printDay(d)
		return nil
	},
}

var dayRenameCmd = &cobra.Command{
	Use:   "rename <day> <name>",
	Short: "Rename a day",
	Long: `Change a day's display name. The day id never changes.

Example:
  gym day rename fri "Leg Day"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDay(args[0])
		if err != nil {
			return err
		}
		name := strings.Join(args[1:], " ")
		store.RenameDay(d.ID, name)
		reportUnsaved()

		color.Green("✓ Renamed %s to %q", d.ID, name)
		return nil
	},
}

var dayRestCmd = &cobra.Command{
	Use:   "rest <day>",
	Short: "Toggle a day's rest flag",
	Long: `Flip a day between rest day and workout day.
Exercises on the day are kept either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDay(args[0])
		if err != nil {
			return err
		}
		store.ToggleRestDay(d.ID)
		reportUnsaved()

		if d.IsRest {
			color.Green("✓ %s is now a workout day", d.Name)
		} else {
			color.Green("✓ %s is now a rest day", d.Name)
		}
		if n := len(d.Exercises); n > 0 && !d.IsRest {
			fmt.Printf("  %s\n", faint.Sprintf("%d exercises kept", n))
		}
		return nil
	},
}

func init() {
	dayCmd.AddCommand(dayShowCmd)
	dayCmd.AddCommand(dayRenameCmd)
	dayCmd.AddCommand(dayRestCmd)
	rootCmd.AddCommand(dayCmd)
}
