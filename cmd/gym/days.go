// ABOUTME: CLI command for listing the week.
// ABOUTME: Shows each day with its rest flag and exercise count.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var daysWorkOnly bool

var daysCmd = &cobra.Command{
	Use:     "days",
	Aliases: []string{"week", "ls"},
	Short:   "List the days of the week",
	Long: `List all seven days in order, Monday first.

EXAMPLES:

  gym days          # Whole week
  gym days --work   # Only days that are not rest days`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := store.Days()
		if daysWorkOnly {
			days = store.WorkDays()
		}
		if len(days) == 0 {
			fmt.Println("No workout days.")
			return nil
		}

		for _, d := range days {
			count := fmt.Sprintf("%d exercises", len(d.Exercises))
			if len(d.Exercises) == 1 {
				count = "1 exercise"
			}
			fmt.Printf("%s %s %s\n", faint.Sprint(d.ID), dayTitle(d), faint.Sprint(count))
		}
		return nil
	},
}

func init() {
	daysCmd.Flags().BoolVar(&daysWorkOnly, "work", false, "only list workout days")
	rootCmd.AddCommand(daysCmd)
}
