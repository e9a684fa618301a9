// ABOUTME: CLI command for an exercise's weight trend.
// ABOUTME: Prints max, first, last, improvement, and a bar chart of the window.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/progress"
)

var (
	progressPeriod string
	progressFrom   string
	progressTo     string
)

const chartWidth = 30

var progressCmd = &cobra.Command{
	Use:     "progress <day> <id>",
	Aliases: []string{"p"},
	Short:   "Show weight progress for an exercise",
	Long: `Show weight progress for an exercise over a period.

PERIODS:

  week      last 7 days
  month     last month
  3months   last 3 months
  all       full history (default)
  custom    between --from and --to (inclusive, either may be omitted)

When the period holds no entries the stats fall back to the full history.

Examples:
  gym progress mon a1b2 --period month
  gym progress mon a1b2 --from 2024-01-01 --to 2024-03-31`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, e, err := resolveExercise(args[0], args[1])
		if err != nil {
			return err
		}

		period, err := progress.ParsePeriod(progressPeriod)
		if err != nil {
			return err
		}
		var r progress.Range
		if progressFrom != "" || progressTo != "" {
			if !cmd.Flags().Changed("period") {
				period = progress.PeriodCustom
			}
			if r.From, err = optionalDate(progressFrom); err != nil {
				return err
			}
			if r.To, err = optionalDate(progressTo); err != nil {
				return err
			}
		}

		filtered := progress.Filter(e.History, period, r, time.Now())
		st, ok := progress.Summarize(e.History, filtered)

		fmt.Printf("%s %s\n", accent.Sprint(e.Name), faint.Sprintf("(%s)", period))
		if !ok {
			fmt.Println(faint.Sprint("  No weight logged yet."))
			return nil
		}

		fmt.Printf("  Max:          %s kg\n", formatKg(st.Max))
		fmt.Printf("  First:        %s kg\n", formatKg(st.First))
		fmt.Printf("  Last:         %s kg\n", formatKg(st.Last))
		fmt.Printf("  Improvement:  %s\n", formatImprovement(st.Improvement))

		if len(st.Points) == 0 {
			fmt.Println(faint.Sprint("\n  No entries in this period; stats cover the full history."))
			return nil
		}
		fmt.Println()
		for _, line := range chartLines(st.Points, st.Max) {
			fmt.Println("  " + line)
		}
		return nil
	},
}

func optionalDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return models.ParseDate(s)
}

func formatImprovement(pct float64) string {
	s := fmt.Sprintf("%+.1f%%", pct)
	switch {
	case pct > 0:
		return color.GreenString(s)
	case pct < 0:
		return color.RedString(s)
	default:
		return s
	}
}

// chartLines renders one bar per entry, scaled so max fills chartWidth.
func chartLines(points []models.WeightLog, max float64) []string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if max > 0 {
			n = int(p.Weight / max * chartWidth)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			faint.Sprint(p.Date),
			accent.Sprint(strings.Repeat("█", n))+strings.Repeat(" ", chartWidth-n),
			formatKg(p.Weight)))
	}
	return lines
}

func init() {
	progressCmd.Flags().StringVar(&progressPeriod, "period", "all", "week, month, 3months, all, or custom")
	progressCmd.Flags().StringVar(&progressFrom, "from", "", "custom range start (YYYY-MM-DD)")
	progressCmd.Flags().StringVar(&progressTo, "to", "", "custom range end (YYYY-MM-DD)")
	rootCmd.AddCommand(progressCmd)
}
