package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getpostkit/postkit/pkg/postman"
	"github.com/getpostkit/postkit/pkg/synth"
)

// ExportOptions configures the export operation.
type ExportOptions struct {
	// CollectionID is the remote collection to export.
	CollectionID string

	// Format is the output format (defaults to FormatNative).
	Format Format

	// IncludeSynthesizedData fills gaps with synthesized query parameters,
	// headers, and bodies.
	IncludeSynthesizedData bool

	// GenerateEnvironmentTemplate also builds an environment document from
	// the collection's variable references. Requires synthesized data.
	GenerateEnvironmentTemplate bool

	// OutputPath, when set, writes the document to disk. Parent directories
	// are created. Paths ending in .yaml or .yml render as YAML.
	OutputPath string

	// Convert carries id and timestamp sources through to the converter.
	Convert ConvertOptions
}

// DefaultExportOptions exports a collection in the native format with
// synthesized data and an environment template.
func DefaultExportOptions(collectionID string) ExportOptions {
	return ExportOptions{
		CollectionID:                collectionID,
		Format:                      FormatNative,
		IncludeSynthesizedData:      true,
		GenerateEnvironmentTemplate: true,
	}
}

// ExportResult is the structured outcome of an export. Failures are
// reported through Errors, not a raised error.
type ExportResult struct {
	Success         bool                 `json:"success"`
	Format          Format               `json:"format"`
	CollectionData  any                  `json:"collectionData,omitempty"`
	EnvironmentData *postman.Environment `json:"environmentData,omitempty"`
	FilePath        string               `json:"filePath,omitempty"`
	EnvironmentPath string               `json:"environmentPath,omitempty"`
	Errors          []string             `json:"errors,omitempty"`
	Warnings        []string             `json:"warnings,omitempty"`
}

// Export fetches a collection and converts it to the requested format,
// optionally writing the result (and an environment template) to disk.
func Export(ctx context.Context, client postman.Client, opts ExportOptions) *ExportResult {
	format := opts.Format
	if format == FormatUnknown {
		format = FormatNative
	}
	result := &ExportResult{Format: format}

	col, err := client.GetCollection(ctx, opts.CollectionID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch collection: %v", err))
		return result
	}

	convOpts := opts.Convert
	convOpts.IncludeSynthesized = opts.IncludeSynthesizedData
	doc, err := Convert(col, format, convOpts)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to convert to %s: %v", format, err))
		return result
	}
	result.CollectionData = doc

	if opts.GenerateEnvironmentTemplate && opts.IncludeSynthesizedData {
		result.EnvironmentData = synth.EnvironmentTemplate(col)
	}

	if opts.OutputPath != "" {
		if err := writeDocument(opts.OutputPath, doc); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to write file: %v", err))
			return result
		}
		result.FilePath = opts.OutputPath

		if result.EnvironmentData != nil {
			envPath := environmentPath(opts.OutputPath)
			if err := writeDocument(envPath, result.EnvironmentData); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to write environment file: %v", err))
				return result
			}
			result.EnvironmentPath = envPath
		}
	}

	result.Success = true
	return result
}

// WorkspaceExportResult aggregates per-collection export outcomes.
type WorkspaceExportResult struct {
	Success   bool            `json:"success"`
	Exported  int             `json:"exported"`
	Failed    int             `json:"failed"`
	Results   []*ExportResult `json:"results"`
	OutputDir string          `json:"outputDir,omitempty"`
	Errors    []string        `json:"errors,omitempty"`
}

// unsafeFilename matches characters stripped from collection names when
// deriving filenames.
var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// ExportWorkspace exports every collection in a workspace. Per-collection
// failures are collected; one bad collection does not abort the rest.
func ExportWorkspace(ctx context.Context, client postman.Client, workspaceID string, opts ExportOptions) *WorkspaceExportResult {
	format := opts.Format
	if format == FormatUnknown {
		format = FormatNative
	}
	result := &WorkspaceExportResult{OutputDir: opts.OutputPath}

	cols, err := client.ListCollections(ctx, workspaceID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to list collections: %v", err))
		return result
	}

	for _, summary := range cols {
		colOpts := opts
		colOpts.Format = format
		colOpts.CollectionID = summary.UID
		if colOpts.CollectionID == "" {
			colOpts.CollectionID = summary.ID
		}
		if opts.OutputPath != "" {
			name := unsafeFilename.ReplaceAllString(summary.Name, "_")
			colOpts.OutputPath = filepath.Join(opts.OutputPath, fmt.Sprintf("%s.%s.json", name, format))
		}

		r := Export(ctx, client, colOpts)
		result.Results = append(result.Results, r)
		if r.Success {
			result.Exported++
		} else {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", summary.Name, strings.Join(r.Errors, "; ")))
		}
	}

	result.Success = result.Failed == 0
	return result
}

// writeDocument renders a document to disk, creating parent directories.
// JSON output is indented; .yaml/.yml paths render as YAML.
func writeDocument(path string, doc any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := renderDocument(path, doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// renderDocument marshals a document for the extension of the target path.
func renderDocument(path string, doc any) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		// Round-trip through JSON so custom marshalers and json tags apply.
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var plain any
		if err := json.Unmarshal(raw, &plain); err != nil {
			return nil, err
		}
		return yaml.Marshal(plain)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// environmentPath derives the environment template path from the collection
// output path by replacing its extension.
func environmentPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".environment.json"
}
