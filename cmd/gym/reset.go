// ABOUTME: CLI command for wiping the schedule back to the default week.
// ABOUTME: Settings survive a reset.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all exercises and history",
	Long: `Delete the saved schedule and start over from the default week.

This is a DESTRUCTIVE operation. Every exercise and all weight history is
removed. Preferences are kept. Export a backup first if unsure:

  gym export json -o .
  gym reset`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This will PERMANENTLY DELETE all exercises and weight history.")
			fmt.Print("Type 'reset' to confirm: ")
			var confirm string
			_, _ = fmt.Scanln(&confirm)
			if confirm != "reset" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := store.Reset(); err != nil {
			return err
		}

		color.Green("✓ Schedule reset to the default week")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
