package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPolylintMCPServer creates an MCP server exposing polylint's run and
// single-file lint operations. The projectPath is the directory linted.
func NewPolylintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"polylint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
