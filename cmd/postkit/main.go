// postkit CLI - Postman collection tooling and MCP server
package main

import (
	"github.com/getpostkit/postkit/pkg/cli"
)

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
