// ABOUTME: MCP server setup for the role dashboard.
// ABOUTME: Wraps the MCP server around a render engine.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/galaxydash/internal/dashboard"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dashboard is the render engine surface the MCP server needs.
type Dashboard interface {
	Render(ctx context.Context, role models.Role) (*render.Page, error)
	Status() []dashboard.DatasetStatus
}

// Server wraps the MCP server with dashboard access.
type Server struct {
	mcpServer *mcp.Server
	dash      Dashboard
}

// NewServer creates a new MCP server over the given dashboard.
func NewServer(dash Dashboard) (*Server, error) {
	if dash == nil {
		return nil, errors.New("dashboard is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "galaxydash",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		dash:      dash,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
