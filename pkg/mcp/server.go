package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/wizmcp/pkg/db"
	"github.com/urmzd/wizmcp/pkg/wiz"
	"github.com/urmzd/wizmcp/pkg/wiz/schema"
)

// Server wraps the MCP server with the bulb control tools
type Server struct {
	mcpServer *server.MCPServer
	bulb      *wiz.Bulb
	validator *schema.Validator
	history   *db.DB
}

// NewServer creates a new MCP server for bulb control. history may be nil,
// in which case the get_history tool reports that no log is available.
func NewServer(bulb *wiz.Bulb, validator *schema.Validator, history *db.DB) *Server {
	s := &Server{
		bulb:      bulb,
		validator: validator,
		history:   history,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"wizmcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
