package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/getpostkit/postkit/pkg/postman"
)

// ValidateOptions configures the validate operation.
type ValidateOptions struct {
	// CollectionID is the remote collection to check.
	CollectionID string

	// Format is the target format (defaults to FormatNative).
	Format Format
}

// Compatibility reports which client formats the collection converts to
// cleanly.
type Compatibility struct {
	Postman  bool `json:"postman"`
	Insomnia bool `json:"insomnia"`
}

// ValidationResult is the structured outcome of a validation.
type ValidationResult struct {
	IsValid       bool          `json:"isValid"`
	Format        Format        `json:"format"`
	Errors        []string      `json:"errors,omitempty"`
	Warnings      []string      `json:"warnings,omitempty"`
	Compatibility Compatibility `json:"compatibility"`
}

// Validate checks whether a collection can be exported to the target format
// and reports errors, warnings, and client compatibility.
func Validate(ctx context.Context, client postman.Client, opts ValidateOptions) *ValidationResult {
	format := opts.Format
	if format == FormatUnknown {
		format = FormatNative
	}
	result := &ValidationResult{Format: format}

	col, err := client.GetCollection(ctx, opts.CollectionID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch collection: %v", err))
		return result
	}

	if col.Info.Name == "" {
		result.Errors = append(result.Errors, "Collection name is required")
	}
	if postman.CountItems(col.Items) == 0 {
		result.Warnings = append(result.Warnings, "Collection has no requests")
	}

	doc, err := Convert(col, format, DefaultConvertOptions())
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to convert to %s: %v", format, err))
	} else if format == FormatOpenAPI {
		result.Warnings = append(result.Warnings, openAPIWarnings(ctx, doc)...)
	}

	result.IsValid = len(result.Errors) == 0
	result.Compatibility = Compatibility{
		Postman:  format == FormatNative && result.IsValid,
		Insomnia: format == FormatInsomnia && result.IsValid,
	}
	return result
}

// openAPIWarnings loads the emitted document through the OpenAPI toolchain
// and reports structural problems as warnings.
func openAPIWarnings(ctx context.Context, doc any) []string {
	data, err := json.Marshal(doc)
	if err != nil {
		return []string{fmt.Sprintf("OpenAPI document not serializable: %v", err)}
	}

	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return []string{fmt.Sprintf("OpenAPI document failed to load: %v", err)}
	}
	if err := spec.Validate(ctx); err != nil {
		return []string{fmt.Sprintf("OpenAPI validation: %v", err)}
	}
	return nil
}
