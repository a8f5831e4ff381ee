package export

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/getpostkit/postkit/pkg/postman"
)

// ConflictResolution decides what happens when a collection with the same
// name already exists in the target workspace.
type ConflictResolution string

// Conflict resolution strategies.
const (
	ConflictRename    ConflictResolution = "rename"
	ConflictSkip      ConflictResolution = "skip"
	ConflictOverwrite ConflictResolution = "overwrite"
)

//go:embed schema.json
var collectionSchema string

// schema validates incoming documents against the structural subset of the
// collection format.
var schema = jsonschema.MustCompileString("collection.schema.json", collectionSchema)

// ImportOptions configures the import operation.
type ImportOptions struct {
	// CollectionData is the raw collection document.
	CollectionData []byte

	// TargetWorkspaceID optionally scopes the import to a workspace.
	TargetWorkspaceID string

	// ConflictResolution handles name collisions (defaults to rename).
	ConflictResolution ConflictResolution

	// ValidateBeforeImport checks the document before any remote call.
	ValidateBeforeImport bool
}

// DefaultImportOptions imports with rename conflict handling and
// pre-import validation.
func DefaultImportOptions(data []byte) ImportOptions {
	return ImportOptions{
		CollectionData:       data,
		ConflictResolution:   ConflictRename,
		ValidateBeforeImport: true,
	}
}

// ImportResult is the structured outcome of an import. Failures are
// reported through Errors, not a raised error.
type ImportResult struct {
	Success      bool     `json:"success"`
	CollectionID string   `json:"collectionId,omitempty"`
	Name         string   `json:"name,omitempty"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	SkippedItems []string `json:"skippedItems,omitempty"`
}

// Import creates a remote collection from a raw document. Only the
// collection's name and description are transferred; the item tree of the
// source document is not.
func Import(ctx context.Context, client postman.Client, opts ImportOptions) *ImportResult {
	result := &ImportResult{}

	var col postman.Collection
	if err := json.Unmarshal(opts.CollectionData, &col); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to parse collection data: %v", err))
		return result
	}

	if opts.ValidateBeforeImport {
		if col.Info.Name == "" {
			result.Errors = append(result.Errors, "Invalid collection: missing name")
			return result
		}
		result.Warnings = append(result.Warnings, schemaWarnings(opts.CollectionData)...)
	}

	existing, err := client.ListCollections(ctx, opts.TargetWorkspaceID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to list collections: %v", err))
		return result
	}
	byName := make(map[string]*postman.CollectionSummary, len(existing))
	for _, c := range existing {
		byName[c.Name] = c
	}

	name := col.Info.Name
	if conflict, ok := byName[name]; ok {
		switch opts.ConflictResolution {
		case ConflictSkip:
			result.Success = true
			result.CollectionID = conflict.ID
			result.SkippedItems = append(result.SkippedItems, name)
			result.Warnings = append(result.Warnings, fmt.Sprintf("Collection %q already exists, skipped", name))
			return result

		case ConflictOverwrite:
			summary, err := client.UpdateCollection(ctx, conflict.ID, importPayload(name, col.Info.Description))
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to overwrite collection: %v", err))
				return result
			}
			result.Success = true
			result.CollectionID = summary.ID
			result.Name = name
			return result

		default: // rename
			for counter := 1; ; counter++ {
				candidate := fmt.Sprintf("%s (%d)", col.Info.Name, counter)
				if _, taken := byName[candidate]; !taken {
					name = candidate
					break
				}
			}
		}
	}

	summary, err := client.CreateCollection(ctx, opts.TargetWorkspaceID, importPayload(name, col.Info.Description))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to create collection: %v", err))
		return result
	}
	result.Success = true
	result.CollectionID = summary.ID
	result.Name = name
	return result
}

// ImportFile reads a collection document from disk and imports it.
func ImportFile(ctx context.Context, client postman.Client, path string, opts ImportOptions) *ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ImportResult{
			Errors: []string{fmt.Sprintf("Failed to read file: %v", err)},
		}
	}
	opts.CollectionData = data
	return Import(ctx, client, opts)
}

// importPayload is the document sent to the remote API on import.
func importPayload(name, description string) *postman.Collection {
	return &postman.Collection{
		Info: postman.Info{
			Name:        name,
			Description: description,
			Schema:      postman.SchemaV21,
		},
		Items: []postman.Item{},
	}
}

// schemaWarnings checks the raw document against the embedded schema and
// turns violations into warnings.
func schemaWarnings(data []byte) []string {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if err := schema.Validate(doc); err != nil {
		return []string{fmt.Sprintf("Schema check: %v", err)}
	}
	return nil
}
