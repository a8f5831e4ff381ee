package postman

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithBaseURL(srv.URL))
}

func TestClient_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(APIKeyHeader)
		_ = json.NewEncoder(w).Encode(map[string]any{"workspaces": []any{}})
	})

	_, err := client.ListWorkspaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_ListCollections_UnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		assert.Equal(t, "ws-1", r.URL.Query().Get("workspace"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"collections": []map[string]any{
				{"id": "col-1", "name": "Test Collection", "uid": "owner-col-1"},
			},
		})
	})

	cols, err := client.ListCollections(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "col-1", cols[0].ID)
	assert.Equal(t, "Test Collection", cols[0].Name)
}

func TestClient_GetCollection_DecodesItemTree(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"collection": map[string]any{
				"info": map[string]any{"name": "Test API"},
				"item": []map[string]any{
					{"name": "List", "request": map[string]any{"method": "GET", "url": "/users"}},
				},
			},
		})
	})

	col, err := client.GetCollection(context.Background(), "col-1")
	require.NoError(t, err)
	assert.Equal(t, "Test API", col.Info.Name)
	require.Len(t, col.Items, 1)
	assert.Equal(t, KindRequest, col.Items[0].Kind)
}

func TestClient_CreateCollection_WorkspaceScoped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "ws-9", r.URL.Query().Get("workspace"))

		var payload struct {
			Collection Collection `json:"collection"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "New", payload.Collection.Info.Name)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"collection": map[string]any{"id": "col-new", "name": "New"},
		})
	})

	sum, err := client.CreateCollection(context.Background(), "ws-9", &Collection{
		Info: Info{Name: "New", Schema: SchemaV21},
	})
	require.NoError(t, err)
	assert.Equal(t, "col-new", sum.ID)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, "invalid or expired API key"},
		{"forbidden", http.StatusForbidden, "insufficient permissions for this operation"},
		{"not found", http.StatusNotFound, "resource not found"},
		{"rate limited", http.StatusTooManyRequests, "rate limit exceeded, retry later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"name": "someError", "message": "remote detail"},
				})
			})

			_, err := client.GetCollection(context.Background(), "missing")
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "want *APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_ErrorMapping_PassesThroughUnknown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"name": "instanceFoundError", "message": "mock already exists"},
		})
	})

	_, err := client.GetMockServer(context.Background(), "dup")
	require.Error(t, err)
	apiErr := err.(*APIError)
	assert.Equal(t, "mock already exists", apiErr.Message)
	assert.Equal(t, "instanceFoundError", apiErr.ErrorCode)
}

func TestClient_IsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsNotFound(context.Canceled))
}

func TestClient_ValidateKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": "u-1", "username": "demo"},
		})
	})

	user, err := client.ValidateKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
}

func TestClient_MockCallLogs_Limit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mocks/mock-1/call-logs", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"call-logs": []map[string]any{
				{"id": "log-1", "method": "GET", "path": "/users", "responseStatusCode": 200},
			},
		})
	})

	logs, err := client.MockCallLogs(context.Background(), "mock-1", 25)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 200, logs[0].ResponseCode)
}

func TestClient_DeleteCollection_AcceptsOKAndNoContent(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(status)
		})
		assert.NoError(t, client.DeleteCollection(context.Background(), "col-1"))
	}
}
