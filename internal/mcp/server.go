// ABOUTME: MCP server setup for the club management store.
// ABOUTME: Wraps the MCP server around the club service and a resolved session.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/tenant"
)

// Server wraps the MCP server with club service access. All tools operate
// inside the session's tenant.
type Server struct {
	mcpServer *mcp.Server
	svc       *club.Service
	sess      tenant.Session
}

// NewServer creates a new MCP server bound to the given session.
func NewServer(svc *club.Service, sess tenant.Session) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "clubtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		sess:      sess,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
