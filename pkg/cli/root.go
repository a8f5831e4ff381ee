package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	apiKey     string
	baseURL    string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "postkit",
	Short: "postkit manages Postman collections, environments, and mock servers",
	Long: `postkit is a CLI and MCP server for the Postman API.

It exports collections to Postman v2.1, Insomnia v4, or OpenAPI 3.0,
imports and validates collection documents, and exposes the full
workspace/collection/environment/mock-server surface to AI assistants
through the Model Context Protocol.

The API key is read from the POSTMAN_API_KEY environment variable or
the --api-key flag.`,
	// No Run function here means 'postkit' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all postkit commands
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Postman API key (default: $POSTMAN_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Postman API base URL (default: https://api.getpostman.com)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
