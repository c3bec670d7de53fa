package mcp

import (
	"github.com/ka2n/mealdb/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for mealdb
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance backed by client
func NewServer(client *api.Client) *Server {
	s := server.NewMCPServer("mealdb", api.Version)

	registerTools(s, client)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, client *api.Client) {
	tools := InitTools(client)
	s.AddTools(tools...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
