package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can edit
images through tools: load_image, apply_filter, resize_image, rotate_image,
adjust_brightness_contrast, crop_image, save_image, reset_image,
image_info, display_image and list_history.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  retouch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  retouch mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "retouch": {
        "command": "/path/to/retouch",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// buildMCPPorts maps the services onto the MCP ports.
func buildMCPPorts(svc *Services) *mcp.Ports {
	ports := &mcp.Ports{
		History:  svc.History,
		Settings: svc.Settings,
	}
	if svc.NewSession != nil {
		ports.Session = svc.NewSession(false)
	}
	return ports
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	svc, err := loadServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(buildMCPPorts(svc))
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
