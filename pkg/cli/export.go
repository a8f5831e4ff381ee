package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/getpostkit/postkit/pkg/cli/internal/output"
	"github.com/getpostkit/postkit/pkg/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat    string
	exportOutput    string
	exportWorkspace string
	exportNoSynth   bool
	exportNoEnvTmpl bool
)

var exportCmd = &cobra.Command{
	Use:   "export [collection-id]",
	Short: "Export a collection to Postman, Insomnia, or OpenAPI format",
	Long: `Export a remote collection to an interchange format.

Gaps in the collection (missing query parameters, headers, bodies) are
filled with synthesized placeholder data unless --no-synth is given, and
an environment template is derived from the {{variable}} references the
collection uses.

With --workspace, every collection in the workspace is exported to the
output directory instead.`,
	Example: `  # Print the native v2.1 document to stdout
  postkit export 12345-abcd

  # Write an Insomnia v4 export
  postkit export 12345-abcd -f insomnia -o api.insomnia.json

  # OpenAPI 3.0 as YAML
  postkit export 12345-abcd -f openapi -o api.yaml

  # Everything in a workspace
  postkit export --workspace ws-1 -o ./exports`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(exportFormat)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if exportWorkspace != "" {
			opts := export.ExportOptions{
				Format:                 format,
				IncludeSynthesizedData: !exportNoSynth,
				OutputPath:             exportOutput,
			}
			result := export.ExportWorkspace(context.Background(), client, exportWorkspace, opts)
			if jsonOutput {
				return output.JSON(result)
			}
			for _, msg := range result.Errors {
				output.Warn("%s", msg)
			}
			fmt.Printf("Exported %d collection(s), %d failed", result.Exported, result.Failed)
			if result.OutputDir != "" {
				fmt.Printf(" to %s", result.OutputDir)
			}
			fmt.Println()
			if !result.Success {
				return fmt.Errorf("workspace export failed")
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("collection ID is required (or pass --workspace)")
		}

		opts := export.ExportOptions{
			CollectionID:                args[0],
			Format:                      format,
			IncludeSynthesizedData:      !exportNoSynth,
			GenerateEnvironmentTemplate: !exportNoEnvTmpl && !exportNoSynth,
			OutputPath:                  exportOutput,
		}
		result := export.Export(context.Background(), client, opts)
		if jsonOutput {
			return output.JSON(result)
		}
		if !result.Success {
			for _, msg := range result.Errors {
				fmt.Fprintln(os.Stderr, msg)
			}
			return fmt.Errorf("export failed")
		}

		for _, warning := range result.Warnings {
			output.Warn("%s", warning)
		}
		if result.FilePath != "" {
			fmt.Printf("Exported collection to %s (format: %s)\n", result.FilePath, result.Format)
			if result.EnvironmentPath != "" {
				fmt.Printf("Environment template written to %s\n", result.EnvironmentPath)
			}
			return nil
		}

		// No output path: print the document itself.
		data, err := json.MarshalIndent(result.CollectionData, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render export: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "postman", "Output format: postman, insomnia, openapi")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file or directory (default: stdout)")
	exportCmd.Flags().StringVar(&exportWorkspace, "workspace", "", "Export every collection in this workspace")
	exportCmd.Flags().BoolVar(&exportNoSynth, "no-synth", false, "Skip synthesized placeholder data")
	exportCmd.Flags().BoolVar(&exportNoEnvTmpl, "no-env-template", false, "Skip the environment template")
	rootCmd.AddCommand(exportCmd)
}

// resolveFormat parses a format flag value, defaulting to the native format.
func resolveFormat(s string) (export.Format, error) {
	if s == "" {
		return export.FormatNative, nil
	}
	format := export.ParseFormat(s)
	if format == export.FormatUnknown {
		return export.FormatUnknown, fmt.Errorf("invalid format: %s\n\nSupported formats: postman, insomnia, openapi", s)
	}
	return format, nil
}
