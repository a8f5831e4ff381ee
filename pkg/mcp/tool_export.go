package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/getpostkit/postkit/pkg/export"
)

// Import/export tool handlers, wired to pkg/export.

func handleExportCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	format, errResult := parseFormatArg(args)
	if errResult != nil {
		return errResult, nil
	}

	opts := export.ExportOptions{
		CollectionID:                collectionID,
		Format:                      format,
		IncludeSynthesizedData:      getBool(args, "includeSynthesizedData", true),
		GenerateEnvironmentTemplate: getBool(args, "generateEnvironmentTemplate", true),
		OutputPath:                  getString(args, "outputPath", ""),
	}

	result := export.Export(context.Background(), client, opts)
	return renderExportResult(result), nil
}

func handleExportCollectionWithSamples(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	format, errResult := parseFormatArg(args)
	if errResult != nil {
		return errResult, nil
	}

	opts := export.DefaultExportOptions(collectionID)
	opts.Format = format
	opts.OutputPath = getString(args, "outputPath", "")

	result := export.Export(context.Background(), client, opts)
	return renderExportResult(result), nil
}

func handleExportWorkspaceCollections(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")
	if workspaceID == "" {
		return ToolResultError("workspaceId is required"), nil
	}

	format, errResult := parseFormatArg(args)
	if errResult != nil {
		return errResult, nil
	}

	opts := export.ExportOptions{
		Format:                 format,
		IncludeSynthesizedData: getBool(args, "includeSynthesizedData", true),
		OutputPath:             getString(args, "outputDir", ""),
	}

	result := export.ExportWorkspace(context.Background(), client, workspaceID, opts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Exported %d collection(s), %d failed.\n", result.Exported, result.Failed)
	if result.OutputDir != "" {
		fmt.Fprintf(&sb, "Output directory: %s\n", result.OutputDir)
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(&sb, "\nError: %s", msg)
	}

	if !result.Success {
		return ToolResultError(sb.String()), nil
	}
	return ToolResultText(sb.String()), nil
}

func handleValidateCollectionExport(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	format, errResult := parseFormatArg(args)
	if errResult != nil {
		return errResult, nil
	}

	result := export.Validate(context.Background(), client, export.ValidateOptions{
		CollectionID: collectionID,
		Format:       format,
	})
	return ToolResultJSON(result)
}

func handleImportCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionData := getString(args, "collectionData", "")
	if collectionData == "" {
		return ToolResultError("collectionData is required"), nil
	}

	opts := export.ImportOptions{
		CollectionData:       []byte(collectionData),
		TargetWorkspaceID:    getString(args, "workspaceId", ""),
		ConflictResolution:   export.ConflictResolution(getString(args, "conflictResolution", string(export.ConflictRename))),
		ValidateBeforeImport: getBool(args, "validate", true),
	}

	result := export.Import(context.Background(), client, opts)
	return renderImportResult(result), nil
}

func handleImportCollectionFromFile(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	filePath := getString(args, "filePath", "")
	if filePath == "" {
		return ToolResultError("filePath is required"), nil
	}

	opts := export.ImportOptions{
		TargetWorkspaceID:    getString(args, "workspaceId", ""),
		ConflictResolution:   export.ConflictResolution(getString(args, "conflictResolution", string(export.ConflictRename))),
		ValidateBeforeImport: getBool(args, "validate", true),
	}

	result := export.ImportFile(context.Background(), client, filePath, opts)
	return renderImportResult(result), nil
}

// parseFormatArg resolves the optional format argument, defaulting to the
// native format.
func parseFormatArg(args map[string]interface{}) (export.Format, *ToolResult) {
	raw := getString(args, "format", "")
	if raw == "" {
		return export.FormatNative, nil
	}
	format := export.ParseFormat(raw)
	if format == export.FormatUnknown {
		return export.FormatUnknown, ToolResultErrorf(
			"Invalid format %q (expected postman, insomnia, or openapi)", raw)
	}
	return format, nil
}

// renderExportResult turns an export result into tool output. Document data
// is inlined only when nothing was written to disk.
func renderExportResult(result *export.ExportResult) *ToolResult {
	if !result.Success {
		return ToolResultError(strings.Join(result.Errors, "\n"))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Collection exported successfully in %s format.\n", result.Format)
	for _, warning := range result.Warnings {
		fmt.Fprintf(&sb, "Warning: %s\n", warning)
	}

	if result.FilePath != "" {
		fmt.Fprintf(&sb, "Written to: %s\n", result.FilePath)
		if result.EnvironmentPath != "" {
			fmt.Fprintf(&sb, "Environment template written to: %s\n", result.EnvironmentPath)
		}
		return ToolResultText(sb.String())
	}

	fmt.Fprintf(&sb, "\n%s\n", mustJSON(result.CollectionData))
	if result.EnvironmentData != nil {
		fmt.Fprintf(&sb, "\nEnvironment template:\n%s\n", mustJSON(result.EnvironmentData))
	}
	return ToolResultText(sb.String())
}

// renderImportResult turns an import result into tool output.
func renderImportResult(result *export.ImportResult) *ToolResult {
	if !result.Success {
		return ToolResultError(strings.Join(result.Errors, "\n"))
	}

	var sb strings.Builder
	if len(result.SkippedItems) > 0 {
		fmt.Fprintf(&sb, "Import skipped: collection %q already exists.\n", result.SkippedItems[0])
	} else {
		fmt.Fprintf(&sb, "Collection imported successfully: %s (ID: %s)\n", result.Name, result.CollectionID)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(&sb, "Warning: %s\n", warning)
	}
	return ToolResultText(sb.String())
}
