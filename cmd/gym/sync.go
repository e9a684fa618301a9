// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, repair, reset, and wipe on the charm backend.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/config"
	"github.com/harperreed/gym/internal/storage"
)

const charmDBName = "gym"

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync the schedule across devices",
	Long: `Sync the schedule across devices using Charm Cloud.

Sync needs the charm backend:

  gym --backend charm days
  export GYM_BACKEND=charm
  or "backend": "charm" in ~/.config/gym/config.json

Your data is E2E encrypted with your SSH key before upload.

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  repair      Repair local database corruption
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

Data syncs automatically after each change.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		color.Green("\n✓ Device linked to Charm")

		c, err := loadConfig()
		if err != nil {
			return err
		}
		if c.GetBackend() != config.BackendCharm {
			color.Yellow("⚠ Backend is %s; use --backend charm or set GYM_BACKEND=charm to sync.", c.GetBackend())
			return nil
		}

		cs, err := storage.OpenCharm(charmDBName, c.GetCharmHost())
		if err != nil {
			return err
		}
		defer cs.Close()
		if err := cs.Sync(); err != nil {
			color.Yellow("⚠ Initial sync failed: %v", err)
		} else {
			color.Green("✓ Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm. Local data is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		color.Green("✓ Device unlinked from Charm")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, ok := gw.(*storage.CharmStore)
		if !ok {
			color.Yellow("Backend is %s; sync is off", cfg.GetBackend())
			fmt.Println("\nUse --backend charm to sync through Charm Cloud.")
			return nil
		}

		id, err := cs.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'gym sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server:", cfg.GetCharmHost())
		if cs.IsReadOnly() {
			color.Yellow("⚠ Read-only: another gym process holds the database")
		}
		fmt.Println()

		exercises, logs := 0, 0
		for _, d := range store.Days() {
			exercises += len(d.Exercises)
			for _, e := range d.Exercises {
				logs += len(e.History)
			}
		}
		color.Green("✓ Connected to Charm")
		fmt.Printf("  Exercises: %d\n", exercises)
		fmt.Printf("  Weight logs: %d\n", logs)
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Repair local database corruption by checkpointing WAL, removing SHM files,
checking integrity, and vacuuming. Run with --force to attempt recovery
even if integrity checks fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		fmt.Println("Repairing gym database...")
		result, err := kv.Repair(charmDBName, force)

		if result.WalCheckpointed {
			color.Green("  ✓ WAL checkpointed")
		}
		if result.ShmRemoved {
			color.Green("  ✓ SHM file removed")
		}
		if result.IntegrityOK {
			color.Green("  ✓ Integrity check passed")
		} else {
			color.Red("  ✗ Integrity check failed")
		}
		if result.Vacuumed {
			color.Green("  ✓ Database vacuumed")
		}

		if err != nil {
			if !force {
				color.Yellow("\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		color.Green("\n✓ Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.
Use this to fix sync conflicts or reset a device to cloud state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, ok := gw.(*storage.CharmStore)
		if !ok {
			return fmt.Errorf("sync reset needs the charm backend (current: %s)", cfg.GetBackend())
		}

		fmt.Println("This will DELETE all local gym data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		_, _ = fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := cs.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Long: `Delete all cloud backups and local data.

This is a DESTRUCTIVE operation. ALL synced data will be permanently deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will PERMANENTLY DELETE all cloud backups and local gym data.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		_, _ = fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := kv.Wipe(charmDBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Data wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func runCharm(arg string) error {
	c := exec.Command("charm", arg)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// syncOwnsDatabase reports sync subcommands that open the Charm database
// themselves, or do not need it.
func syncOwnsDatabase(cmd *cobra.Command) bool {
	if cmd.Parent() != syncCmd {
		return false
	}
	switch cmd.Name() {
	case "link", "unlink", "repair", "wipe":
		return true
	}
	return false
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	syncRepairCmd.Flags().Bool("force", false, "Attempt recovery even if integrity checks fail")

	rootCmd.AddCommand(syncCmd)
}
