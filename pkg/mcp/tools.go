package mcp

import (
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// ToolHandler is the signature for tool execution functions.
type ToolHandler func(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error)

// Tool represents a registered MCP tool.
type Tool struct {
	Definition ToolDefinition
	Handler    ToolHandler
}

// ToolRegistry manages all registered MCP tools.
// Tools are stored in a slice to preserve registration order for tools/list.
type ToolRegistry struct {
	tools  []*Tool
	byName map[string]*Tool
	server *Server
}

// NewToolRegistry creates a new tool registry and registers all built-in tools.
func NewToolRegistry(server *Server) *ToolRegistry {
	r := &ToolRegistry{
		tools:  make([]*Tool, 0, 36),
		byName: make(map[string]*Tool, 36),
		server: server,
	}

	r.registerBuiltinTools()
	return r
}

// registerBuiltinTools registers all tools from tool_defs.go with their handlers.
func (r *ToolRegistry) registerBuiltinTools() {
	// Tool name → handler mapping.
	handlers := map[string]ToolHandler{
		// Workspaces
		"list_workspaces":  handleListWorkspaces,
		"get_workspace":    handleGetWorkspace,
		"create_workspace": handleCreateWorkspace,
		"update_workspace": handleUpdateWorkspace,
		"delete_workspace": handleDeleteWorkspace,

		// Collections
		"list_collections":  handleListCollections,
		"get_collection":    handleGetCollection,
		"create_collection": handleCreateCollection,
		"update_collection": handleUpdateCollection,
		"delete_collection": handleDeleteCollection,

		// Environments
		"list_environments":  handleListEnvironments,
		"get_environment":    handleGetEnvironment,
		"create_environment": handleCreateEnvironment,
		"update_environment": handleUpdateEnvironment,
		"delete_environment": handleDeleteEnvironment,

		// Requests / Folders
		"create_request": handleCreateRequest,
		"get_request":    handleGetRequest,
		"update_request": handleUpdateRequest,
		"delete_request": handleDeleteRequest,
		"create_folder":  handleCreateFolder,
		"update_folder":  handleUpdateFolder,
		"delete_folder":  handleDeleteFolder,
		"move_request":   handleMoveRequest,

		// Mock servers
		"list_mock_servers":         handleListMockServers,
		"get_mock_server":           handleGetMockServer,
		"create_mock_server":        handleCreateMockServer,
		"create_ai_mock_server":     handleCreateAIMockServer,
		"update_mock_server":        handleUpdateMockServer,
		"delete_mock_server":        handleDeleteMockServer,
		"get_mock_server_call_logs": handleGetMockServerCallLogs,

		// Import / Export
		"export_collection":              handleExportCollection,
		"export_collection_with_samples": handleExportCollectionWithSamples,
		"export_workspace_collections":   handleExportWorkspaceCollections,
		"validate_collection_export":     handleValidateCollectionExport,
		"import_collection":              handleImportCollection,
		"import_collection_from_file":    handleImportCollectionFromFile,
	}

	// Register in definition order (from tool_defs.go) to guarantee
	// consistent ordering in tools/list responses.
	for _, def := range allToolDefinitions() {
		handler, ok := handlers[def.Name]
		if !ok {
			continue
		}
		r.Register(&Tool{
			Definition: def,
			Handler:    handler,
		})
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool *Tool) {
	r.tools = append(r.tools, tool)
	r.byName[tool.Definition.Name] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) *Tool {
	return r.byName[name]
}

// List returns all tool definitions in registration order.
func (r *ToolRegistry) List() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition)
	}
	return defs
}

// Execute executes a tool by name.
func (r *ToolRegistry) Execute(name string, args map[string]interface{}, session *MCPSession) (*ToolResult, error) {
	tool := r.byName[name]
	if tool == nil {
		return ToolResultError("tool not found: " + name), nil
	}
	return tool.Handler(args, session, r.server)
}

// =============================================================================
// Argument extraction helpers
// =============================================================================

func getString(args map[string]interface{}, key, defaultVal string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}

func getInt(args map[string]interface{}, key string, defaultVal int) int {
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func getBool(args map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func getBoolPtr(args map[string]interface{}, key string) *bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return &b
		}
	}
	return nil
}

func getMap(args map[string]interface{}, key string) map[string]interface{} {
	if v, ok := args[key]; ok {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func getSlice(args map[string]interface{}, key string) []interface{} {
	if v, ok := args[key]; ok {
		if s, ok := v.([]interface{}); ok {
			return s
		}
	}
	return nil
}

// =============================================================================
// Remote API error helpers
// =============================================================================

// requireClient returns the remote API client, or an error result when the
// server has no API key configured.
func requireClient(server *Server) (postman.Client, *ToolResult) {
	if server == nil || server.client == nil {
		return nil, ToolResultError("remote API not configured: set " + APIKeyEnv)
	}
	return server.client, nil
}

// isConnectionError returns true if the error indicates the remote API is unreachable.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "connect: network is unreachable") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "context deadline exceeded")
}

// apiError renders a remote API error for tool output, with an actionable
// message when the API is unreachable.
func apiError(err error) string {
	if isConnectionError(err) {
		return "remote API unreachable: check your network connection"
	}
	return err.Error()
}
