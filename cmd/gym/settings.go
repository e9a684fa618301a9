// ABOUTME: CLI command for user preferences.
// ABOUTME: Shows settings and toggles dark mode without touching the schedule.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show preferences",
	Long: `Show preferences. Settings are stored apart from the schedule,
so changing them never rewrites workout data.

COMMANDS:

  dark-mode on|off   Use the palette for dark terminals`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Dark mode:  %s\n", onOff(prefs.DarkMode()))
		fmt.Printf("Backend:    %s\n", cfg.GetBackend())
		if cfg.GetBackend() != "charm" {
			fmt.Printf("Data dir:   %s\n", cfg.GetDataDir())
		}
		return nil
	},
}

var settingsDarkModeCmd = &cobra.Command{
	Use:       "dark-mode <on|off>",
	Short:     "Turn dark mode on or off",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		prefs.SetDarkMode(on)
		if err := prefs.Err(); err != nil {
			color.Yellow("⚠ Setting not saved: %v", err)
		}
		applyPalette(on)

		color.Green("✓ Dark mode %s", onOff(on))
		return nil
	},
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	settingsCmd.AddCommand(settingsDarkModeCmd)
	rootCmd.AddCommand(settingsCmd)
}
