// ABOUTME: Root Cobra command for gym CLI.
// ABOUTME: Opens config, logger, storage, and the schedule in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/config"
	"github.com/harperreed/gym/internal/logging"
	"github.com/harperreed/gym/internal/schedule"
	"github.com/harperreed/gym/internal/settings"
	"github.com/harperreed/gym/internal/storage"
)

var (
	cfg    *config.Config
	logger *log.Logger
	gw     storage.Gateway
	store  *schedule.Store
	prefs  *settings.Settings

	flagBackend  string
	flagDataDir  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gym",
	Short: "Weekly workout schedule and weight tracker",
	Long: `Gym keeps a seven-day workout plan and the weight you lift for every exercise.

QUICK START:

  $ gym days                                       # See the week
  $ gym exercise add mon "Bench Press" --sets 4 --reps 8 --muscle chest
  $ gym day show mon                               # Exercises with IDs
  $ gym log mon a1b2c3d4 62.5                      # Log today's weight
  $ gym progress mon a1b2c3d4 --period month       # Trend over a month

DAYS:

  Days are addressed by id (mon, tue, wed, thu, fri, sat, sun) or by name.

  $ gym day rename fri "Leg Day"
  $ gym day rest sat                               # Toggle rest day

BACKUP:

  $ gym export json -o .                           # gym_backup_YYYY-MM-DD.json
  $ gym import backup.json --dry-run               # Show what would change
  $ gym import backup.json                         # Replace the whole week

STORAGE:

  sqlite (default)  ~/.local/share/gym/gym.db
  badger            ~/.local/share/gym/badger
  charm             Charm Cloud KV, E2E encrypted with your SSH key

  Choose with --backend, GYM_BACKEND, or "backend" in ~/.config/gym/config.json.

MCP INTEGRATION:

  Run 'gym mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "gym": { "command": "gym", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsStorage(cmd) {
			return nil
		}
		return openApp(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, or charm")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for local backends")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, or error")
}

func skipsStorage(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion", "__complete", "install-skill":
		return true
	}
	return syncOwnsDatabase(cmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		c.Backend = flagBackend
	}
	if flagDataDir != "" {
		c.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		c.LogLevel = flagLogLevel
	}
	return c, nil
}

func openApp(cmd *cobra.Command) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logFile := cfg.GetLogFile()
	if cmd.Name() == "mcp" && logFile == "" {
		// stdout carries the protocol; keep logs off the terminal streams.
		logFile = mcpLogPath(cfg)
	}
	logger = logging.New(logging.Options{File: logFile, Level: cfg.LogLevel})

	gw, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}
	logger.Debug("storage opened", "backend", cfg.GetBackend())

	store, err = schedule.Open(gw, schedule.WithLogger(logger))
	if err != nil {
		return err
	}
	prefs, err = settings.Open(gw, logger)
	if err != nil {
		return err
	}
	applyPalette(prefs.DarkMode())
	return nil
}

func closeApp() error {
	if gw == nil {
		return nil
	}
	err := gw.Close()
	gw = nil
	return err
}
