package mcp

// allToolDefinitions returns all 36 tool definitions in display order.
// Tools are grouped by category: Workspaces, Collections, Environments,
// Requests/Folders, Mock Servers, Import/Export.
func allToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// =====================================================================
		// Workspaces (5 tools)
		// =====================================================================
		defListWorkspaces,
		defGetWorkspace,
		defCreateWorkspace,
		defUpdateWorkspace,
		defDeleteWorkspace,

		// =====================================================================
		// Collections (5 tools)
		// =====================================================================
		defListCollections,
		defGetCollection,
		defCreateCollection,
		defUpdateCollection,
		defDeleteCollection,

		// =====================================================================
		// Environments (5 tools)
		// =====================================================================
		defListEnvironments,
		defGetEnvironment,
		defCreateEnvironment,
		defUpdateEnvironment,
		defDeleteEnvironment,

		// =====================================================================
		// Requests / Folders (8 tools)
		// =====================================================================
		defCreateRequest,
		defGetRequest,
		defUpdateRequest,
		defDeleteRequest,
		defCreateFolder,
		defUpdateFolder,
		defDeleteFolder,
		defMoveRequest,

		// =====================================================================
		// Mock Servers (7 tools)
		// =====================================================================
		defListMockServers,
		defGetMockServer,
		defCreateMockServer,
		defCreateAIMockServer,
		defUpdateMockServer,
		defDeleteMockServer,
		defGetMockServerCallLogs,

		// =====================================================================
		// Import / Export (6 tools)
		// =====================================================================
		defExportCollection,
		defExportCollectionWithSamples,
		defExportWorkspaceCollections,
		defValidateCollectionExport,
		defImportCollection,
		defImportCollectionFromFile,
	}
}

// =============================================================================
// Workspace Definitions
// =============================================================================

var defListWorkspaces = ToolDefinition{
	Name:        "list_workspaces",
	Description: "List all workspaces visible to your API key. Returns ID, name, type, and visibility for each workspace.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

var defGetWorkspace = ToolDefinition{
	Name:        "get_workspace",
	Description: "Get detailed information about a specific workspace",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the workspace to retrieve",
			},
		},
		"required": []string{"workspaceId"},
	},
}

var defCreateWorkspace = ToolDefinition{
	Name:        "create_workspace",
	Description: "Create a new workspace",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the workspace",
			},
			"type": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"personal", "team"},
				"description": "Type of workspace (default: personal)",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of the workspace",
			},
		},
		"required": []string{"name"},
	},
}

var defUpdateWorkspace = ToolDefinition{
	Name:        "update_workspace",
	Description: "Update an existing workspace's name or description",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the workspace to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the workspace",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description for the workspace",
			},
		},
		"required": []string{"workspaceId"},
	},
}

var defDeleteWorkspace = ToolDefinition{
	Name:        "delete_workspace",
	Description: "Delete a workspace. This cannot be undone.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the workspace to delete",
			},
		},
		"required": []string{"workspaceId"},
	},
}

// =============================================================================
// Collection Definitions
// =============================================================================

var defListCollections = ToolDefinition{
	Name:        "list_collections",
	Description: "List collections in your account, optionally scoped to a workspace. Returns ID, UID, and name for each collection.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Only list collections in this workspace",
			},
		},
	},
}

var defGetCollection = ToolDefinition{
	Name:        "get_collection",
	Description: "Get the full collection document by ID, including the complete request and folder tree",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to retrieve",
			},
		},
		"required": []string{"collectionId"},
	},
}

var defCreateCollection = ToolDefinition{
	Name:        "create_collection",
	Description: "Create a new empty collection, optionally in a workspace",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the collection",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of the collection",
			},
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Workspace to create the collection in",
			},
		},
		"required": []string{"name"},
	},
}

var defUpdateCollection = ToolDefinition{
	Name:        "update_collection",
	Description: "Update a collection's name or description",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the collection",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description for the collection",
			},
		},
		"required": []string{"collectionId"},
	},
}

var defDeleteCollection = ToolDefinition{
	Name:        "delete_collection",
	Description: "Delete a collection. This cannot be undone.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to delete",
			},
		},
		"required": []string{"collectionId"},
	},
}

// =============================================================================
// Environment Definitions
// =============================================================================

var defListEnvironments = ToolDefinition{
	Name:        "list_environments",
	Description: "List environments in your account, optionally scoped to a workspace",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Only list environments in this workspace",
			},
		},
	},
}

var defGetEnvironment = ToolDefinition{
	Name:        "get_environment",
	Description: "Get an environment by ID, including its variables",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the environment to retrieve",
			},
		},
		"required": []string{"environmentId"},
	},
}

var defCreateEnvironment = ToolDefinition{
	Name:        "create_environment",
	Description: "Create a new environment with variables. Mark credentials as secret so their values are masked.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the environment",
			},
			"values": map[string]interface{}{
				"type":        "array",
				"description": "Environment variables",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"key":   map[string]interface{}{"type": "string"},
						"value": map[string]interface{}{"type": "string"},
						"type": map[string]interface{}{
							"type": "string",
							"enum": []string{"default", "secret"},
						},
						"enabled": map[string]interface{}{"type": "boolean"},
					},
					"required": []string{"key", "value"},
				},
			},
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Workspace to create the environment in",
			},
		},
		"required": []string{"name"},
	},
}

var defUpdateEnvironment = ToolDefinition{
	Name:        "update_environment",
	Description: "Replace an environment's name and variables",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the environment to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the environment",
			},
			"values": map[string]interface{}{
				"type":        "array",
				"description": "Replacement environment variables",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"key":   map[string]interface{}{"type": "string"},
						"value": map[string]interface{}{"type": "string"},
						"type": map[string]interface{}{
							"type": "string",
							"enum": []string{"default", "secret"},
						},
						"enabled": map[string]interface{}{"type": "boolean"},
					},
					"required": []string{"key", "value"},
				},
			},
		},
		"required": []string{"environmentId"},
	},
}

var defDeleteEnvironment = ToolDefinition{
	Name:        "delete_environment",
	Description: "Delete an environment. This cannot be undone.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the environment to delete",
			},
		},
		"required": []string{"environmentId"},
	},
}

// =============================================================================
// Request / Folder Definitions
// =============================================================================

// requestBodySchema is shared by create_request and update_request.
var requestBodySchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"mode": map[string]interface{}{
			"type": "string",
			"enum": []string{"raw", "formdata", "urlencoded", "binary", "graphql"},
		},
		"raw": map[string]interface{}{"type": "string"},
		"formdata": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key":   map[string]interface{}{"type": "string"},
					"value": map[string]interface{}{"type": "string"},
					"type": map[string]interface{}{
						"type": "string",
						"enum": []string{"text", "file"},
					},
				},
				"required": []string{"key", "value"},
			},
		},
		"urlencoded": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key":   map[string]interface{}{"type": "string"},
					"value": map[string]interface{}{"type": "string"},
				},
				"required": []string{"key", "value"},
			},
		},
	},
	"required":    []string{"mode"},
	"description": "Request body",
}

// requestHeadersSchema is shared by create_request and update_request.
var requestHeadersSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"key":         map[string]interface{}{"type": "string"},
			"value":       map[string]interface{}{"type": "string"},
			"disabled":    map[string]interface{}{"type": "boolean"},
			"description": map[string]interface{}{"type": "string"},
		},
		"required": []string{"key", "value"},
	},
	"description": "Request headers",
}

var defCreateRequest = ToolDefinition{
	Name:        "create_request",
	Description: "Create a new request in a collection, at the root or inside a folder",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to add the request to",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the request",
			},
			"url": map[string]interface{}{
				"type":        "string",
				"description": "URL for the request",
			},
			"method": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
				"description": "HTTP method",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of the request",
			},
			"headers": requestHeadersSchema,
			"body":    requestBodySchema,
			"folderId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the folder to add the request to (optional)",
			},
		},
		"required": []string{"collectionId", "name", "url", "method"},
	},
}

var defGetRequest = ToolDefinition{
	Name:        "get_request",
	Description: "Get detailed information about a specific request",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the request",
			},
			"requestId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the request to retrieve",
			},
		},
		"required": []string{"collectionId", "requestId"},
	},
}

var defUpdateRequest = ToolDefinition{
	Name:        "update_request",
	Description: "Update an existing request. Only the provided fields change.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the request",
			},
			"requestId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the request to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the request",
			},
			"url": map[string]interface{}{
				"type":        "string",
				"description": "New URL for the request",
			},
			"method": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
				"description": "New HTTP method",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description for the request",
			},
			"headers": requestHeadersSchema,
			"body":    requestBodySchema,
		},
		"required": []string{"collectionId", "requestId"},
	},
}

var defDeleteRequest = ToolDefinition{
	Name:        "delete_request",
	Description: "Delete a request from a collection",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the request",
			},
			"requestId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the request to delete",
			},
		},
		"required": []string{"collectionId", "requestId"},
	},
}

var defCreateFolder = ToolDefinition{
	Name:        "create_folder",
	Description: "Create a new folder in a collection, at the root or inside another folder",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to add the folder to",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the folder",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of the folder",
			},
			"parentFolderId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the parent folder (optional)",
			},
		},
		"required": []string{"collectionId", "name"},
	},
}

var defUpdateFolder = ToolDefinition{
	Name:        "update_folder",
	Description: "Update an existing folder's name or description",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the folder",
			},
			"folderId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the folder to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the folder",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description for the folder",
			},
		},
		"required": []string{"collectionId", "folderId"},
	},
}

var defDeleteFolder = ToolDefinition{
	Name:        "delete_folder",
	Description: "Delete a folder and everything inside it from a collection",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the folder",
			},
			"folderId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the folder to delete",
			},
		},
		"required": []string{"collectionId", "folderId"},
	},
}

var defMoveRequest = ToolDefinition{
	Name:        "move_request",
	Description: "Move a request to a different folder or to the collection root",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection containing the request",
			},
			"requestId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the request to move",
			},
			"targetFolderId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the target folder (omit to move to collection root)",
			},
		},
		"required": []string{"collectionId", "requestId"},
	},
}

// =============================================================================
// Mock Server Definitions
// =============================================================================

// mockConfigSchema is shared by create_mock_server and update_mock_server.
var mockConfigSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"headers": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Headers the mock server matches on",
		},
		"matchBody": map[string]interface{}{
			"type":        "boolean",
			"description": "Whether to match request body",
		},
		"matchQueryParams": map[string]interface{}{
			"type":        "boolean",
			"description": "Whether to match query parameters",
		},
		"matchWildcards": map[string]interface{}{
			"type":        "boolean",
			"description": "Whether to match wildcards",
		},
		"delay": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type": "string",
					"enum": []string{"fixed", "random"},
				},
				"preset": map[string]interface{}{
					"type": "string",
					"enum": []string{"low", "medium", "high"},
				},
				"value": map[string]interface{}{"type": "number"},
			},
			"required":    []string{"type"},
			"description": "Response delay configuration",
		},
	},
	"description": "Mock server configuration",
}

var defListMockServers = ToolDefinition{
	Name:        "list_mock_servers",
	Description: "List all mock servers in your account, optionally scoped to a workspace",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Only list mock servers in this workspace",
			},
		},
	},
}

var defGetMockServer = ToolDefinition{
	Name:        "get_mock_server",
	Description: "Get detailed information about a specific mock server",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mockId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the mock server to retrieve",
			},
		},
		"required": []string{"mockId"},
	},
}

var defCreateMockServer = ToolDefinition{
	Name:        "create_mock_server",
	Description: "Create a new mock server from a collection",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the mock server",
			},
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the collection to create mock server for",
			},
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "Optional environment ID to use",
			},
			"private": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether the mock server should be private",
			},
			"config": mockConfigSchema,
		},
		"required": []string{"name", "collectionId"},
	},
}

var defCreateAIMockServer = ToolDefinition{
	Name:        "create_ai_mock_server",
	Description: "Create a mock server with automatically generated realistic examples and error responses. Every request in the collection gets a saved success example plus optional 400/401/404/500 error examples before the mock server is created.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the mock server",
			},
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "ID of the collection to create mock server for",
			},
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "Optional environment ID to use",
			},
			"private": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether the mock server should be private",
			},
			"generateRealisticData": map[string]interface{}{
				"type":        "boolean",
				"description": "Generate realistic data using dynamic variables (default: true)",
			},
			"includeErrorResponses": map[string]interface{}{
				"type":        "boolean",
				"description": "Include error response examples (400, 401, 404, 500) (default: true)",
			},
			"responseDelay": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"low", "medium", "high"},
				"description": "Response delay preset",
			},
		},
		"required": []string{"name", "collectionId"},
	},
}

var defUpdateMockServer = ToolDefinition{
	Name:        "update_mock_server",
	Description: "Update an existing mock server configuration",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mockId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the mock server to update",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "New name for the mock server",
			},
			"environmentId": map[string]interface{}{
				"type":        "string",
				"description": "New environment ID",
			},
			"private": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether the mock server should be private",
			},
			"config": mockConfigSchema,
		},
		"required": []string{"mockId"},
	},
}

var defDeleteMockServer = ToolDefinition{
	Name:        "delete_mock_server",
	Description: "Delete a mock server",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mockId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the mock server to delete",
			},
		},
		"required": []string{"mockId"},
	},
}

var defGetMockServerCallLogs = ToolDefinition{
	Name:        "get_mock_server_call_logs",
	Description: "Get call logs for a mock server to see how it has been used",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mockId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the mock server to get call logs for",
			},
			"limit": map[string]interface{}{
				"type":        "number",
				"description": "Maximum number of call logs to retrieve",
			},
		},
		"required": []string{"mockId"},
	},
}

// =============================================================================
// Import / Export Definitions
// =============================================================================

var defExportCollection = ToolDefinition{
	Name:        "export_collection",
	Description: "Export a collection in Postman v2.1, Insomnia v4, or OpenAPI 3.0 format. Optionally writes the document (and a generated environment template) to disk.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to export",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"postman", "insomnia", "openapi"},
				"description": "Export format (default: postman)",
			},
			"includeSynthesizedData": map[string]interface{}{
				"type":        "boolean",
				"description": "Enrich requests with synthesized params, headers, and bodies (default: true)",
			},
			"generateEnvironmentTemplate": map[string]interface{}{
				"type":        "boolean",
				"description": "Generate an environment template from {{variables}} found in the collection (default: true)",
			},
			"outputPath": map[string]interface{}{
				"type":        "string",
				"description": "File path to write the exported document to",
			},
		},
		"required": []string{"collectionId"},
	},
}

var defExportCollectionWithSamples = ToolDefinition{
	Name:        "export_collection_with_samples",
	Description: "Export a collection with full synthesized sample data: realistic query parameters, headers, request bodies, and an environment template. Shorthand for export_collection with all synthesis options enabled.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to export",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"postman", "insomnia", "openapi"},
				"description": "Export format (default: postman)",
			},
			"outputPath": map[string]interface{}{
				"type":        "string",
				"description": "File path to write the exported document to",
			},
		},
		"required": []string{"collectionId"},
	},
}

var defExportWorkspaceCollections = ToolDefinition{
	Name:        "export_workspace_collections",
	Description: "Export every collection in a workspace to a directory, one file per collection. Failures on individual collections are reported without aborting the rest.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the workspace to export",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"postman", "insomnia", "openapi"},
				"description": "Export format (default: postman)",
			},
			"outputDir": map[string]interface{}{
				"type":        "string",
				"description": "Directory to write exported files to",
			},
			"includeSynthesizedData": map[string]interface{}{
				"type":        "boolean",
				"description": "Enrich requests with synthesized data (default: true)",
			},
		},
		"required": []string{"workspaceId"},
	},
}

var defValidateCollectionExport = ToolDefinition{
	Name:        "validate_collection_export",
	Description: "Validate that a collection can be exported in a given format. Returns errors, warnings, and format compatibility flags without writing anything.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionId": map[string]interface{}{
				"type":        "string",
				"description": "The ID of the collection to validate",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"postman", "insomnia", "openapi"},
				"description": "Target format (default: postman)",
			},
		},
		"required": []string{"collectionId"},
	},
}

var defImportCollection = ToolDefinition{
	Name:        "import_collection",
	Description: "Import a collection from a JSON document. Name conflicts are resolved by renaming, skipping, or overwriting.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"collectionData": map[string]interface{}{
				"type":        "string",
				"description": "The collection document as a JSON string",
			},
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Workspace to import the collection into",
			},
			"conflictResolution": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"rename", "skip", "overwrite"},
				"description": "How to resolve a name conflict (default: rename)",
			},
			"validate": map[string]interface{}{
				"type":        "boolean",
				"description": "Check the document against the collection schema before importing (default: true)",
			},
		},
		"required": []string{"collectionData"},
	},
}

var defImportCollectionFromFile = ToolDefinition{
	Name:        "import_collection_from_file",
	Description: "Import a collection from a JSON file on disk",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filePath": map[string]interface{}{
				"type":        "string",
				"description": "Path to the collection JSON file",
			},
			"workspaceId": map[string]interface{}{
				"type":        "string",
				"description": "Workspace to import the collection into",
			},
			"conflictResolution": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"rename", "skip", "overwrite"},
				"description": "How to resolve a name conflict (default: rename)",
			},
			"validate": map[string]interface{}{
				"type":        "boolean",
				"description": "Check the document against the collection schema before importing (default: true)",
			},
		},
		"required": []string{"filePath"},
	},
}
