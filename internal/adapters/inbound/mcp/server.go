package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/menurota/menurota/internal/domain"
)

// NewMenurotaMCPServer creates a new MCP server with all menurota tools and
// resources registered. The config carries the data directory, the user
// namespace, and the scoring weights the tools run with.
func NewMenurotaMCPServer(cfg domain.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"menurota",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s, cfg)

	return s
}
