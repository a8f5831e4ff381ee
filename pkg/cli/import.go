package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/getpostkit/postkit/pkg/cli/internal/output"
	"github.com/getpostkit/postkit/pkg/export"
	"github.com/spf13/cobra"
)

var (
	importWorkspace  string
	importConflict   string
	importNoValidate bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a collection document into the remote workspace",
	Long: `Import a collection from a Postman v2.1 JSON file.

When a collection with the same name already exists, the conflict is
resolved by renaming (" (1)", " (2)", ...) unless --conflict says
otherwise. The document is validated before any remote call; pass
--no-validate to skip.`,
	Example: `  postkit import api.postman_collection.json
  postkit import api.json --workspace ws-1 --conflict overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch export.ConflictResolution(importConflict) {
		case export.ConflictRename, export.ConflictSkip, export.ConflictOverwrite:
		default:
			return fmt.Errorf("invalid conflict resolution: %s (expected rename, skip, or overwrite)", importConflict)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		opts := export.ImportOptions{
			TargetWorkspaceID:    importWorkspace,
			ConflictResolution:   export.ConflictResolution(importConflict),
			ValidateBeforeImport: !importNoValidate,
		}
		result := export.ImportFile(context.Background(), client, args[0], opts)
		if jsonOutput {
			return output.JSON(result)
		}
		if !result.Success {
			for _, msg := range result.Errors {
				fmt.Fprintln(os.Stderr, msg)
			}
			return fmt.Errorf("import failed")
		}

		for _, warning := range result.Warnings {
			output.Warn("%s", warning)
		}
		if len(result.SkippedItems) > 0 {
			fmt.Printf("Import skipped: collection %q already exists\n", result.SkippedItems[0])
			return nil
		}
		fmt.Printf("Imported collection %q (ID: %s)\n", result.Name, result.CollectionID)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importWorkspace, "workspace", "", "Target workspace ID")
	importCmd.Flags().StringVar(&importConflict, "conflict", "rename", "Name conflict handling: rename, skip, overwrite")
	importCmd.Flags().BoolVar(&importNoValidate, "no-validate", false, "Skip pre-import validation")
	rootCmd.AddCommand(importCmd)
}
