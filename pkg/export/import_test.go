package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getpostkit/postkit/pkg/postman"
)

const validDoc = `{"info":{"name":"Test Collection","description":"imported"},"item":[]}`

func TestImport_Creates(t *testing.T) {
	client := newFakeClient()

	result := Import(context.Background(), client, DefaultImportOptions([]byte(validDoc)))

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "Test Collection", result.Name)
	require.Len(t, client.created, 1)
	for _, col := range client.created {
		assert.Equal(t, "Test Collection", col.Info.Name)
		assert.Equal(t, "imported", col.Info.Description)
		assert.Empty(t, col.Items, "item tree must not transfer")
	}
}

func TestImport_MalformedJSON(t *testing.T) {
	client := newFakeClient()

	result := Import(context.Background(), client, DefaultImportOptions([]byte(`{not json`)))

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Failed to parse collection data")
	assert.Empty(t, client.created)
}

func TestImport_MissingName(t *testing.T) {
	client := newFakeClient()

	result := Import(context.Background(), client, DefaultImportOptions([]byte(`{"info":{},"item":[]}`)))

	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "Invalid collection: missing name")
	assert.Empty(t, client.created)
}

func TestImport_SchemaWarnings(t *testing.T) {
	client := newFakeClient()

	// Parses fine but misses the required item array.
	result := Import(context.Background(), client, DefaultImportOptions([]byte(`{"info":{"name":"Partial"}}`)))

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.NotEmpty(t, result.Warnings, "schema violation should surface as a warning")
}

func TestImport_Rename(t *testing.T) {
	client := newFakeClient()
	client.summaries = []*postman.CollectionSummary{
		{ID: "e1", Name: "Test Collection"},
		{ID: "e2", Name: "Test Collection (1)"},
	}

	result := Import(context.Background(), client, DefaultImportOptions([]byte(validDoc)))

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "Test Collection (2)", result.Name)
}

func TestImport_Skip(t *testing.T) {
	client := newFakeClient()
	client.summaries = []*postman.CollectionSummary{{ID: "e1", Name: "Test Collection"}}

	opts := DefaultImportOptions([]byte(validDoc))
	opts.ConflictResolution = ConflictSkip

	result := Import(context.Background(), client, opts)

	require.True(t, result.Success)
	assert.Equal(t, []string{"Test Collection"}, result.SkippedItems)
	assert.Equal(t, "e1", result.CollectionID)
	assert.Empty(t, client.created, "skip must not create")
	assert.NotEmpty(t, result.Warnings)
}

func TestImport_Overwrite(t *testing.T) {
	client := newFakeClient()
	client.summaries = []*postman.CollectionSummary{{ID: "e1", Name: "Test Collection"}}

	opts := DefaultImportOptions([]byte(validDoc))
	opts.ConflictResolution = ConflictOverwrite

	result := Import(context.Background(), client, opts)

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, "e1", result.CollectionID)
	assert.Empty(t, client.created)
	require.Contains(t, client.updated, "e1")
	assert.Equal(t, "Test Collection", client.updated["e1"].Info.Name)
}

func TestImport_ListFailure(t *testing.T) {
	client := newFakeClient()
	client.listErr = &postman.APIError{StatusCode: 401, Message: "invalid or expired API key"}

	result := Import(context.Background(), client, DefaultImportOptions([]byte(validDoc)))

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Failed to list collections")
}

func TestImportFile(t *testing.T) {
	client := newFakeClient()
	path := filepath.Join(t.TempDir(), "col.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	result := ImportFile(context.Background(), client, path, DefaultImportOptions(nil))
	require.True(t, result.Success, "errors: %v", result.Errors)

	missing := ImportFile(context.Background(), client, filepath.Join(t.TempDir(), "nope.json"), DefaultImportOptions(nil))
	assert.False(t, missing.Success)
	require.NotEmpty(t, missing.Errors)
	assert.Contains(t, missing.Errors[0], "Failed to read file")
}
