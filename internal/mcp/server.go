// Package mcp exposes the tracker operations as Model Context Protocol tools
// so an assistant can read and fill in a day over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sajeel/daily-tracker/internal/services"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	trackers  *services.TrackerService
}

// NewServer creates an MCP server with every tracker tool registered.
func NewServer(trackers *services.TrackerService) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "daily-tracker",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		trackers:  trackers,
	}
	s.registerTools()

	return s, nil
}

// Serve runs the server over stdin/stdout until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
