package postman

import "time"

// Workspace is a remote workspace summary.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// WorkspaceRequest carries the mutable workspace fields for create/update.
type WorkspaceRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// CollectionSummary is the list/create/update view of a collection.
type CollectionSummary struct {
	ID        string     `json:"id"`
	UID       string     `json:"uid,omitempty"`
	Name      string     `json:"name"`
	Owner     string     `json:"owner,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Environment is a named set of variables.
type Environment struct {
	ID     string     `json:"id,omitempty"`
	UID    string     `json:"uid,omitempty"`
	Name   string     `json:"name"`
	Values []Variable `json:"values,omitempty"`
}

// MockServer is a remote mock server bound to a collection.
type MockServer struct {
	ID             string      `json:"id"`
	UID            string      `json:"uid,omitempty"`
	Name           string      `json:"name"`
	CollectionUID  string      `json:"collection"`
	EnvironmentUID string      `json:"environment,omitempty"`
	URL            string      `json:"mockUrl,omitempty"`
	Private        bool        `json:"private,omitempty"`
	Config         *MockConfig `json:"config,omitempty"`
}

// MockConfig holds mock server matching behavior.
type MockConfig struct {
	Headers          []string `json:"headers,omitempty"`
	MatchBody        bool     `json:"matchBody,omitempty"`
	MatchQueryParams bool     `json:"matchQueryParams,omitempty"`
	MatchWildcards   bool     `json:"matchWildcards,omitempty"`
	Delay            *Delay   `json:"delay,omitempty"`
}

// Delay configures a fixed response delay in milliseconds.
type Delay struct {
	Type   string `json:"type"`
	Preset string `json:"preset,omitempty"`
	Value  int    `json:"value,omitempty"`
}

// MockServerRequest carries the mutable mock server fields for create/update.
type MockServerRequest struct {
	Name           string      `json:"name"`
	CollectionUID  string      `json:"collection"`
	EnvironmentUID string      `json:"environment,omitempty"`
	Private        bool        `json:"private,omitempty"`
	Config         *MockConfig `json:"config,omitempty"`
}

// CallLog is one recorded request served by a mock server.
type CallLog struct {
	ID           string    `json:"id"`
	ServedAt     time.Time `json:"servedAt"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	ResponseCode int       `json:"responseStatusCode"`
	ResponseName string    `json:"responseName,omitempty"`
}

// MockExample is a synthesized request/response pair used to pre-populate a
// mock server with servable examples.
type MockExample struct {
	Name     string          `json:"name"`
	Request  ExampleRequest  `json:"request"`
	Response ExampleResponse `json:"response"`
}

// ExampleRequest is the request half of a mock example.
type ExampleRequest struct {
	Method  string   `json:"method"`
	URL     string   `json:"url"`
	Headers []Header `json:"header,omitempty"`
	Body    string   `json:"body,omitempty"`
}

// ExampleResponse is the response half of a mock example.
type ExampleResponse struct {
	Status     int      `json:"code"`
	StatusText string   `json:"status"`
	Headers    []Header `json:"header,omitempty"`
	Body       string   `json:"body,omitempty"`
	Language   string   `json:"_postman_previewlanguage,omitempty"`
}

// User identifies the API key owner, returned by ValidateKey.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
}
