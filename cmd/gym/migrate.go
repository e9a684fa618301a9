// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Moves the schedule and settings from the current backend to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/config"
	"github.com/harperreed/gym/internal/storage"
)

var (
	migrateTo      string
	migrateDataDir string
	migrateDryRun  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy the schedule and settings from the current backend to another one.

The target's existing schedule and settings are overwritten. The source is
left as it was. Switch backends afterwards with --backend or GYM_BACKEND.

USAGE:

  gym migrate --to badger --dry-run    # Preview
  gym migrate --to charm               # Start syncing an existing schedule
  gym --backend charm migrate --to sqlite`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := &config.Config{
			Backend:   migrateTo,
			DataDir:   cfg.DataDir,
			CharmHost: cfg.CharmHost,
		}
		if migrateDataDir != "" {
			target.DataDir = migrateDataDir
		}
		if target.GetBackend() == cfg.GetBackend() && target.GetDataDir() == cfg.GetDataDir() {
			return fmt.Errorf("source and target are the same %s store", cfg.GetBackend())
		}

		days := store.Days()
		current := prefs.Current()

		exercises := 0
		for _, d := range days {
			exercises += len(d.Exercises)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("Would copy %d days (%d exercises) and settings from %s to %s\n",
				len(days), exercises, cfg.GetBackend(), target.GetBackend())
			return nil
		}

		dst, err := target.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", target.GetBackend(), err)
		}
		defer dst.Close()

		// Sync once after both keys are written.
		cs, isCharm := dst.(*storage.CharmStore)
		if isCharm {
			cs.SetAutoSync(false)
		}

		if err := dst.SaveSchedule(days); err != nil {
			return fmt.Errorf("failed to copy schedule: %w", err)
		}
		if err := dst.SaveSettings(current); err != nil {
			return fmt.Errorf("failed to copy settings: %w", err)
		}
		if isCharm {
			if err := cs.Sync(); err != nil {
				color.Yellow("⚠ Copied locally but sync failed: %v", err)
			}
		}

		color.Green("✓ Copied %d days (%d exercises) to %s", len(days), exercises, target.GetBackend())
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend: sqlite, badger, or charm")
	migrateCmd.Flags().StringVar(&migrateDataDir, "to-data-dir", "", "target data directory (default: current)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
