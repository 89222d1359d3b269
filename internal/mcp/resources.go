// ABOUTME: MCP resource implementations for the role dashboard.
// ABOUTME: Provides galaxydash://datasets and galaxydash://roles resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	datasetsURI = "galaxydash://datasets"
	rolesURI    = "galaxydash://roles"
)

func (s *Server) registerResources() {
	// galaxydash://datasets - load status of every dataset file
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         datasetsURI,
		Name:        "Dataset Status",
		Description: "Load status and row count of every dataset file",
		MIMEType:    "application/json",
	}, s.handleDatasetsResource)

	// galaxydash://roles - selectable roles and their page titles
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         rolesURI,
		Name:        "Dashboard Roles",
		Description: "The four dashboard roles with slugs and page titles",
		MIMEType:    "application/json",
	}, s.handleRolesResource)
}

// Resource handlers

func (s *Server) handleDatasetsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"datasets":     s.dash.Status(),
	}
	return jsonResource(datasetsURI, result)
}

func (s *Server) handleRolesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(rolesURI, map[string]interface{}{"roles": roles()})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
