// Package cli implements the postkit command-line interface.
//
// Commands are cobra-based and register themselves with the root command
// in their init() functions:
//
//   - mcp: MCP server over stdio (default) or HTTP (--http)
//   - serve: MCP server over HTTP
//   - export: export a collection (or a whole workspace) to Postman,
//     Insomnia, or OpenAPI format
//   - import: import a collection document
//   - validate: check export compatibility
//   - version: build information
//
// The Postman API key comes from --api-key or POSTMAN_API_KEY; --json
// switches command output to machine-readable JSON.
package cli
