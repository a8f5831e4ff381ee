package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/getpostkit/postkit/pkg/logging"
	"github.com/getpostkit/postkit/pkg/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpHTTP        bool
	mcpPort        int
	mcpAllowRemote bool
	mcpLogLevel    string
)

// mcpCmd is the Cobra command for "postkit mcp".
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI assistants (stdio transport)",
	Long: `Start the Model Context Protocol (MCP) server.

By default the server speaks newline-delimited JSON-RPC over
stdin/stdout, which is what AI assistants (Claude Desktop, Cursor,
etc.) spawn. Pass --http to run the Streamable HTTP transport instead.

Claude Desktop config (~/.config/claude/claude_desktop_config.json):

  {
    "mcpServers": {
      "postkit": {
        "command": "postkit",
        "args": ["mcp"],
        "env": {"POSTMAN_API_KEY": "PMAK-..."}
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mcpHTTP {
			return runMCPHTTP(mcpPort, mcpAllowRemote, mcpLogLevel, "")
		}
		return runMCPStdio(mcpLogLevel)
	},
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpHTTP, "http", false, "Serve MCP over HTTP instead of stdio")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 0, "HTTP port (default: 9091, implies --http)")
	mcpCmd.Flags().BoolVar(&mcpAllowRemote, "allow-remote", false, "Accept non-localhost HTTP connections")
	mcpCmd.Flags().StringVar(&mcpLogLevel, "log-level", "warn", "Log level for stderr (debug, info, warn, error)")
	rootCmd.AddCommand(mcpCmd)
}

// mcpConfig builds an MCP server config from the global and command flags.
func mcpConfig() *mcp.Config {
	cfg := mcp.DefaultConfig()
	if key := resolveAPIKey(); key != "" {
		cfg.APIKey = key
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg
}

// runMCPStdio runs the MCP server in stdio mode. Logs go to stderr so
// stdout stays clean for the protocol.
func runMCPStdio(logLevel string) error {
	cfg := mcpConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	server := mcp.NewServer(cfg, nil)
	log := logging.NewWithLevel(logging.ParseLevel(logLevel))
	server.SetLogger(log)

	stdio := mcp.NewStdioServer(server)
	stdio.SetLogger(log)
	return stdio.Run()
}

// runMCPHTTP runs the MCP server over the Streamable HTTP transport and
// blocks until SIGINT or SIGTERM.
func runMCPHTTP(port int, allowRemote bool, logLevel, logFormat string) error {
	cfg := mcpConfig()
	if port != 0 {
		cfg.Port = port
	}
	cfg.AllowRemote = allowRemote

	server := mcp.NewServer(cfg, nil)
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.ParseFormat(logFormat),
	})
	server.SetLogger(log)

	if err := server.Start(); err != nil {
		return err
	}
	log.Info("MCP HTTP server listening", "addr", cfg.Address(), "path", cfg.Path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	return server.Stop()
}
