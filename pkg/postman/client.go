package postman

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/getpostkit/postkit/pkg/logging"
)

const (
	// DefaultBaseURL is the remote management API endpoint.
	DefaultBaseURL = "https://api.getpostman.com"

	// APIKeyHeader is the HTTP header for API key authentication.
	APIKeyHeader = "X-API-Key"
)

// Client provides methods for communicating with the remote management API.
type Client interface {
	// ValidateKey checks the API key by fetching the authenticated user.
	ValidateKey(ctx context.Context) (*User, error)

	// ListWorkspaces returns all workspaces visible to the API key.
	ListWorkspaces(ctx context.Context) ([]*Workspace, error)
	// GetWorkspace returns a specific workspace by ID.
	GetWorkspace(ctx context.Context, id string) (*Workspace, error)
	// CreateWorkspace creates a new workspace.
	CreateWorkspace(ctx context.Context, req WorkspaceRequest) (*Workspace, error)
	// UpdateWorkspace updates an existing workspace by ID.
	UpdateWorkspace(ctx context.Context, id string, req WorkspaceRequest) (*Workspace, error)
	// DeleteWorkspace deletes a workspace by ID.
	DeleteWorkspace(ctx context.Context, id string) error

	// ListCollections returns collection summaries, optionally scoped to a
	// workspace.
	ListCollections(ctx context.Context, workspaceID string) ([]*CollectionSummary, error)
	// GetCollection returns the full collection document by ID.
	GetCollection(ctx context.Context, id string) (*Collection, error)
	// CreateCollection creates a collection, optionally in a workspace.
	CreateCollection(ctx context.Context, workspaceID string, col *Collection) (*CollectionSummary, error)
	// UpdateCollection replaces a collection document by ID.
	UpdateCollection(ctx context.Context, id string, col *Collection) (*CollectionSummary, error)
	// DeleteCollection deletes a collection by ID.
	DeleteCollection(ctx context.Context, id string) error

	// ListEnvironments returns environments, optionally scoped to a workspace.
	ListEnvironments(ctx context.Context, workspaceID string) ([]*Environment, error)
	// GetEnvironment returns an environment by ID.
	GetEnvironment(ctx context.Context, id string) (*Environment, error)
	// CreateEnvironment creates an environment, optionally in a workspace.
	CreateEnvironment(ctx context.Context, workspaceID string, env *Environment) (*Environment, error)
	// UpdateEnvironment replaces an environment by ID.
	UpdateEnvironment(ctx context.Context, id string, env *Environment) (*Environment, error)
	// DeleteEnvironment deletes an environment by ID.
	DeleteEnvironment(ctx context.Context, id string) error

	// ListMockServers returns mock servers, optionally scoped to a workspace.
	ListMockServers(ctx context.Context, workspaceID string) ([]*MockServer, error)
	// GetMockServer returns a mock server by ID.
	GetMockServer(ctx context.Context, id string) (*MockServer, error)
	// CreateMockServer creates a mock server bound to a collection.
	CreateMockServer(ctx context.Context, workspaceID string, req MockServerRequest) (*MockServer, error)
	// UpdateMockServer updates a mock server by ID.
	UpdateMockServer(ctx context.Context, id string, req MockServerRequest) (*MockServer, error)
	// DeleteMockServer deletes a mock server by ID.
	DeleteMockServer(ctx context.Context, id string) error
	// MockCallLogs returns recent calls served by a mock server.
	MockCallLogs(ctx context.Context, id string, limit int) ([]*CallLog, error)
}

// APIError represents an error response from the remote API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether the error is a 404 from the remote API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// httpClient implements Client using HTTP.
type httpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a client.
type ClientOption func(*httpClient)

// WithBaseURL overrides the API base URL. Used by tests against a fake API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *httpClient) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *httpClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *httpClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *httpClient) {
		c.logger = logger
	}
}

// NewClient creates a new remote API client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) Client {
	c := &httpClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateKey checks the API key by fetching the authenticated user.
func (c *httpClient) ValidateKey(ctx context.Context) (*User, error) {
	resp, err := c.get(ctx, "/me")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		User *User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.User, nil
}

// ListWorkspaces returns all workspaces visible to the API key.
func (c *httpClient) ListWorkspaces(ctx context.Context) ([]*Workspace, error) {
	resp, err := c.get(ctx, "/workspaces")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Workspaces []*Workspace `json:"workspaces"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Workspaces, nil
}

// GetWorkspace returns a specific workspace by ID.
func (c *httpClient) GetWorkspace(ctx context.Context, id string) (*Workspace, error) {
	resp, err := c.get(ctx, "/workspaces/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Workspace, nil
}

// CreateWorkspace creates a new workspace.
func (c *httpClient) CreateWorkspace(ctx context.Context, req WorkspaceRequest) (*Workspace, error) {
	body, err := json.Marshal(map[string]WorkspaceRequest{"workspace": req})
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}

	resp, err := c.post(ctx, "/workspaces", body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}

	var result struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Workspace, nil
}

// UpdateWorkspace updates an existing workspace by ID.
func (c *httpClient) UpdateWorkspace(ctx context.Context, id string, req WorkspaceRequest) (*Workspace, error) {
	body, err := json.Marshal(map[string]WorkspaceRequest{"workspace": req})
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}

	resp, err := c.put(ctx, "/workspaces/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Workspace, nil
}

// DeleteWorkspace deletes a workspace by ID.
func (c *httpClient) DeleteWorkspace(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, "/workspaces/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// ListCollections returns collection summaries, optionally workspace-scoped.
func (c *httpClient) ListCollections(ctx context.Context, workspaceID string) ([]*CollectionSummary, error) {
	path := "/collections"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Collections []*CollectionSummary `json:"collections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Collections, nil
}

// GetCollection returns the full collection document by ID.
func (c *httpClient) GetCollection(ctx context.Context, id string) (*Collection, error) {
	resp, err := c.get(ctx, "/collections/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Collection *Collection `json:"collection"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Collection, nil
}

// CreateCollection creates a collection, optionally in a workspace.
func (c *httpClient) CreateCollection(ctx context.Context, workspaceID string, col *Collection) (*CollectionSummary, error) {
	body, err := json.Marshal(map[string]*Collection{"collection": col})
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}

	path := "/collections"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}

	var result struct {
		Collection *CollectionSummary `json:"collection"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Collection, nil
}

// UpdateCollection replaces a collection document by ID.
func (c *httpClient) UpdateCollection(ctx context.Context, id string, col *Collection) (*CollectionSummary, error) {
	body, err := json.Marshal(map[string]*Collection{"collection": col})
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}

	resp, err := c.put(ctx, "/collections/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Collection *CollectionSummary `json:"collection"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Collection, nil
}

// DeleteCollection deletes a collection by ID.
func (c *httpClient) DeleteCollection(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, "/collections/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// ListEnvironments returns environments, optionally workspace-scoped.
func (c *httpClient) ListEnvironments(ctx context.Context, workspaceID string) ([]*Environment, error) {
	path := "/environments"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Environments []*Environment `json:"environments"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Environments, nil
}

// GetEnvironment returns an environment by ID.
func (c *httpClient) GetEnvironment(ctx context.Context, id string) (*Environment, error) {
	resp, err := c.get(ctx, "/environments/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Environment *Environment `json:"environment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Environment, nil
}

// CreateEnvironment creates an environment, optionally in a workspace.
func (c *httpClient) CreateEnvironment(ctx context.Context, workspaceID string, env *Environment) (*Environment, error) {
	body, err := json.Marshal(map[string]*Environment{"environment": env})
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment: %w", err)
	}

	path := "/environments"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}

	var result struct {
		Environment *Environment `json:"environment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Environment, nil
}

// UpdateEnvironment replaces an environment by ID.
func (c *httpClient) UpdateEnvironment(ctx context.Context, id string, env *Environment) (*Environment, error) {
	body, err := json.Marshal(map[string]*Environment{"environment": env})
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment: %w", err)
	}

	resp, err := c.put(ctx, "/environments/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Environment *Environment `json:"environment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Environment, nil
}

// DeleteEnvironment deletes an environment by ID.
func (c *httpClient) DeleteEnvironment(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, "/environments/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// ListMockServers returns mock servers, optionally workspace-scoped.
func (c *httpClient) ListMockServers(ctx context.Context, workspaceID string) ([]*MockServer, error) {
	path := "/mocks"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Mocks []*MockServer `json:"mocks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Mocks, nil
}

// GetMockServer returns a mock server by ID.
func (c *httpClient) GetMockServer(ctx context.Context, id string) (*MockServer, error) {
	resp, err := c.get(ctx, "/mocks/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Mock *MockServer `json:"mock"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Mock, nil
}

// CreateMockServer creates a mock server bound to a collection.
func (c *httpClient) CreateMockServer(ctx context.Context, workspaceID string, req MockServerRequest) (*MockServer, error) {
	body, err := json.Marshal(map[string]MockServerRequest{"mock": req})
	if err != nil {
		return nil, fmt.Errorf("failed to encode mock server: %w", err)
	}

	path := "/mocks"
	if workspaceID != "" {
		path += "?workspace=" + url.QueryEscape(workspaceID)
	}

	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}

	var result struct {
		Mock *MockServer `json:"mock"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Mock, nil
}

// UpdateMockServer updates a mock server by ID.
func (c *httpClient) UpdateMockServer(ctx context.Context, id string, req MockServerRequest) (*MockServer, error) {
	body, err := json.Marshal(map[string]MockServerRequest{"mock": req})
	if err != nil {
		return nil, fmt.Errorf("failed to encode mock server: %w", err)
	}

	resp, err := c.put(ctx, "/mocks/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		Mock *MockServer `json:"mock"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Mock, nil
}

// DeleteMockServer deletes a mock server by ID.
func (c *httpClient) DeleteMockServer(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, "/mocks/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// MockCallLogs returns recent calls served by a mock server.
func (c *httpClient) MockCallLogs(ctx context.Context, id string, limit int) ([]*CallLog, error) {
	path := "/mocks/" + url.PathEscape(id) + "/call-logs"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result struct {
		CallLogs []*CallLog `json:"call-logs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result.CallLogs, nil
}

// get performs an HTTP GET request.
func (c *httpClient) get(ctx context.Context, path string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

// post performs an HTTP POST request.
func (c *httpClient) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

// put performs an HTTP PUT request.
func (c *httpClient) put(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPut, path, body)
}

// delete performs an HTTP DELETE request.
func (c *httpClient) delete(ctx context.Context, path string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil)
}

// doRequest performs an HTTP request.
func (c *httpClient) doRequest(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{
			StatusCode: 0,
			ErrorCode:  "connection_error",
			Message:    fmt.Sprintf("cannot reach API at %s: %v", c.baseURL, err),
		}
	}
	return resp, nil
}

// parseError parses an error response from the API. Well-known status codes
// get actionable messages; anything else carries the remote message through.
func (c *httpClient) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &errResp)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		ErrorCode:  errResp.Error.Name,
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Message = "invalid or expired API key"
	case http.StatusForbidden:
		apiErr.Message = "insufficient permissions for this operation"
	case http.StatusNotFound:
		apiErr.Message = "resource not found"
	case http.StatusTooManyRequests:
		apiErr.Message = "rate limit exceeded, retry later"
	default:
		if errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
		} else {
			apiErr.Message = fmt.Sprintf("server returned status %d: %s", resp.StatusCode, string(body))
		}
	}
	return apiErr
}
