package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsuites/internal/adapters/driving/mcp"
)

var mcpAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve Drive, Gmail and Calendar tools over MCP",
	Long: `Start a Model Context Protocol server exposing Drive, Gmail and Calendar
tools to AI assistants.

By default the server speaks JSON-RPC over stdio. Use --http to serve the
streamable HTTP transport instead.

Examples:
  # Stdio mode
  gsuites mcp

  # HTTP mode
  gsuites mcp --http :8080

Client configuration:
  {
    "mcpServers": {
      "gsuites": {
        "command": "/path/to/gsuites",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpAddr, "http", "", "serve streamable HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if err := connect(cmd); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Drive:    driveService,
		Mail:     mailService,
		Calendar: calendarService,
	})
	if err != nil {
		return err
	}

	if mcpAddr != "" {
		cmd.Printf("MCP server listening on http://%s\n", mcpAddr)
		return server.RunHTTP(cmd.Context(), mcpAddr)
	}
	return server.Run(cmd.Context())
}
