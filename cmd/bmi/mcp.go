// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/bmi/internal/mcp"
	"github.com/harperreed/bmi/internal/storage"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server. The server communicates
via stdin/stdout and keeps the database open until it exits.

CONFIGURATION:

  {
    "mcpServers": {
      "bmi": { "command": "bmi", "args": ["mcp"] }
    }
  }

AVAILABLE TOOLS:

  add_record     Record height and weight, returns the computed BMI
  list_records   List recent records
  get_stats      Category counts, tallest and heaviest client

AVAILABLE RESOURCES:

  bmi://stats    Statistics report
  bmi://recent   Last 10 records`,
	Annotations: map[string]string{needsStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo storage.Repository) error {
			server, err := mcp.NewServer(repo, version)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Debug("serving MCP on stdio")
			return server.Serve(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
