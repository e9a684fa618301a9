// ABOUTME: CLI commands for exporting and importing the schedule.
// ABOUTME: Export writes JSON or YAML; import replaces the whole week after validation.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/r3labs/diff"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/schedule"
)

var (
	exportOutput string
	importFormat string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export [format]",
	Short: "Export the schedule",
	Long: `Export the whole week, including weight history.

FORMATS:

  json   Full JSON export (default, suitable for backup/restore)
  yaml   YAML export (human-readable)

OPTIONS:

  --output, -o   Write to a file instead of stdout. If the path is a
                 directory the file is named gym_backup_YYYY-MM-DD.<format>.

EXAMPLES:

  gym export                     # JSON to stdout
  gym export json -o .           # ./gym_backup_2024-03-13.json
  gym export yaml -o week.yaml   # YAML to a file`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := schedule.FormatJSON
		if len(args) == 1 {
			var err error
			if format, err = schedule.ParseFormat(args[0]); err != nil {
				return err
			}
		}

		data, err := store.Export(format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		path := exportPath(exportOutput, format, time.Now())
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported to %s", path)
		return nil
	},
}

// exportPath appends the dated backup name when output is a directory.
func exportPath(output string, format schedule.Format, now time.Time) string {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, schedule.ExportFilename(format, now))
	}
	return output
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the schedule from a backup",
	Long: `Replace the whole week with the days in a JSON or YAML backup.

The file must hold an array of days. Anything else, or a file that fails
validation, is rejected and the current schedule is left untouched.
The format follows the file extension unless --format is given.

EXAMPLES:

  gym import gym_backup_2024-03-13.json            # Replace the week
  gym import week.yaml --dry-run                   # Show what would change`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		format := schedule.FormatFromPath(filename)
		if importFormat != "" {
			if format, err = schedule.ParseFormat(importFormat); err != nil {
				return err
			}
		}

		if importDryRun {
			changes, err := store.PreviewImport(format, data)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			printChanges(changes)
			return nil
		}

		if err := store.Import(format, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		reportUnsaved()

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func printChanges(changes diff.Changelog) {
	if len(changes) == 0 {
		fmt.Println("No changes.")
		return
	}

	color.Yellow("Dry run - %d changes would be made:", len(changes))
	for _, c := range changes {
		var mark string
		switch c.Type {
		case diff.CREATE:
			mark = color.GreenString("+")
		case diff.DELETE:
			mark = color.RedString("-")
		default:
			mark = color.YellowString("~")
		}
		fmt.Printf("  %s %s %s\n", mark, strings.Join(c.Path, "."), faint.Sprint(changeValues(c)))
	}
}

func changeValues(c diff.Change) string {
	switch c.Type {
	case diff.CREATE:
		return truncate(fmt.Sprint(c.To), 40)
	case diff.DELETE:
		return truncate(fmt.Sprint(c.From), 40)
	default:
		return truncate(fmt.Sprintf("%v -> %v", c.From, c.To), 40)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file or directory (default: stdout)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "json or yaml (default: from file extension)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "show what would change without importing")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
