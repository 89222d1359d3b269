// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server exposing role views to AI assistants.
package main

import (
	"github.com/harperreed/galaxydash/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Log lines go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "galaxydash": {
        "command": "galaxydash",
        "args": ["mcp", "--data-dir", "/path/to/data"]
      }
    }
  }

AVAILABLE TOOLS:

  render_view     Render one role view (markdown, text, json, or yaml report)
  list_datasets   Load status of every dataset file
  list_roles      Roles with slugs and page titles

AVAILABLE RESOURCES:

  galaxydash://datasets   Dataset load status
  galaxydash://roles      Dashboard roles`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(engine)
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
