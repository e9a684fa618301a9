// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/gym/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to the configured log
file, or to mcp.log in the data directory.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "gym": {
        "command": "gym",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_days         List the week
  get_day           A day with exercises and history
  add_exercise      Add an exercise to a day
  update_exercise   Edit an exercise
  delete_exercise   Delete an exercise
  record_weight     Log the weight lifted
  rename_day        Rename a day
  toggle_rest_day   Flip a day's rest flag
  get_progress      Progress stats over a period

AVAILABLE RESOURCES:

  gym://schedule    The whole week
  gym://today       Today's day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
