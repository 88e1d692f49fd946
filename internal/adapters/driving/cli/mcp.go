package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawdata/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Tools: search_statutes, get_statute, search_precedents, get_precedent,
parse_citations.

Examples:
  # Stdio mode (default)
  lawdata mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  lawdata mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "lawdata": {
        "command": "/path/to/lawdata",
        "args": ["mcp", "serve"],
        "env": {"LAWDATA_OC": "<key>"}
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if err := ensureServices(); err != nil {
		return err
	}

	ports := &mcp.Ports{
		Statute:   statuteService,
		Precedent: precedentService,
		Citation:  citationService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
