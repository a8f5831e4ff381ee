// Package mcp implements the Model Context Protocol (MCP) server for postkit.
//
// MCP lets AI agents manage remote workspaces, collections, environments, and
// mock servers, and drive the export/import pipeline, through a standardized
// JSON-RPC 2.0 based protocol.
//
// # Protocol Version
//
// This implementation follows MCP protocol version 2025-06-18 with Streamable
// HTTP and stdio transports. Older protocol versions are negotiated down
// during initialize.
//
// # Tools (36 total)
//
// Workspaces:
//   - list_workspaces, get_workspace, create_workspace, update_workspace,
//     delete_workspace
//
// Collections:
//   - list_collections, get_collection, create_collection, update_collection,
//     delete_collection
//
// Environments:
//   - list_environments, get_environment, create_environment,
//     update_environment, delete_environment
//
// Requests / Folders (collection tree rebuilds):
//   - create_request, get_request, update_request, delete_request,
//     create_folder, update_folder, delete_folder, move_request
//
// Mock Servers:
//   - list_mock_servers, get_mock_server, create_mock_server,
//     create_ai_mock_server, update_mock_server, delete_mock_server,
//     get_mock_server_call_logs
//
// Import / Export:
//   - export_collection, export_collection_with_samples,
//     export_workspace_collections, validate_collection_export,
//     import_collection, import_collection_from_file
//
// # Transports
//
// Stdio (primary): "postkit mcp" speaks newline-delimited JSON-RPC over
// stdin/stdout. HTTP (secondary): "postkit mcp --http" serves Streamable
// HTTP on 127.0.0.1:9091/mcp.
//
// # Security
//
// By default, the HTTP transport only accepts connections from localhost.
// The remote API key is read from POSTMAN_API_KEY and never appears in tool
// responses.
package mcp
