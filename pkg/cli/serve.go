package cli

import (
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveAllowRemote bool
	serveLogLevel    string
	serveLogFormat   string
)

// serveCmd runs the MCP server over HTTP. Equivalent to "postkit mcp --http"
// but reads better in service definitions.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over HTTP (Streamable HTTP transport)",
	Long: `Run the MCP server over HTTP on 127.0.0.1:9091 (POST /mcp for
JSON-RPC, GET /mcp for the SSE notification stream).

Only localhost connections are accepted unless --allow-remote is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPHTTP(servePort, serveAllowRemote, serveLogLevel, serveLogFormat)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (default: 9091)")
	serveCmd.Flags().BoolVar(&serveAllowRemote, "allow-remote", false, "Accept non-localhost connections")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.AddCommand(serveCmd)
}
