package cli

import (
	"context"
	"fmt"

	"github.com/getpostkit/postkit/pkg/cli/internal/output"
	"github.com/getpostkit/postkit/pkg/export"
	"github.com/spf13/cobra"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <collection-id>",
	Short: "Check whether a collection exports cleanly to a format",
	Long: `Validate a remote collection against a target export format.

Reports conversion errors, warnings (empty collections, structural
problems in emitted OpenAPI documents), and which client formats the
collection is compatible with. Exits non-zero when validation fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(validateFormat)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		result := export.Validate(context.Background(), client, export.ValidateOptions{
			CollectionID: args[0],
			Format:       format,
		})
		if jsonOutput {
			if err := output.JSON(result); err != nil {
				return err
			}
			if !result.IsValid {
				return fmt.Errorf("validation failed")
			}
			return nil
		}

		for _, msg := range result.Errors {
			fmt.Printf("Error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("Warning: %s\n", msg)
		}

		if !result.IsValid {
			return fmt.Errorf("collection is not valid for %s export", result.Format)
		}

		fmt.Printf("Collection is valid for %s export\n", result.Format)
		fmt.Printf("Compatibility: postman=%t insomnia=%t\n",
			result.Compatibility.Postman, result.Compatibility.Insomnia)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "postman", "Target format: postman, insomnia, openapi")
	rootCmd.AddCommand(validateCmd)
}
