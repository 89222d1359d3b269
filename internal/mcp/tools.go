// ABOUTME: MCP tool implementations for the role dashboard.
// ABOUTME: Renders role views and reports dataset and role catalogs.
package mcp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/harperreed/galaxydash/internal/dashboard"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// render_view
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_view",
		Description: "Run one render cycle for a role (Athlete, Coach, Trainer, Team Doctor) and return the dashboard",
	}, s.handleRenderView)

	// list_datasets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_datasets",
		Description: "Load every dataset file and report which are present and how many rows each has",
	}, s.handleListDatasets)

	// list_roles
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_roles",
		Description: "List the dashboard roles with their slugs and page titles",
	}, s.handleListRoles)
}

// Tool input/output types

type renderViewInput struct {
	Role   string `json:"role" jsonschema:"Role name or slug: athlete, coach, trainer, team-doctor"`
	Format string `json:"format,omitempty" jsonschema:"Report format: markdown (default), text, or json"`
}

type widgetOutput struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Dataset string `json:"dataset,omitempty"`
	Value   string `json:"value,omitempty"`
}

type renderViewOutput struct {
	CycleID  string         `json:"cycle_id"`
	Role     string         `json:"role"`
	Title    string         `json:"title"`
	Warnings []string       `json:"warnings"`
	Widgets  []widgetOutput `json:"widgets"`
	Report   string         `json:"report"`
}

type listDatasetsInput struct{}

type listDatasetsOutput struct {
	Present  int                       `json:"present"`
	Datasets []dashboard.DatasetStatus `json:"datasets"`
}

type listRolesInput struct{}

type roleOutput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type listRolesOutput struct {
	Roles []roleOutput `json:"roles"`
}

// Tool handlers

func (s *Server) handleRenderView(ctx context.Context, req *mcp.CallToolRequest, input renderViewInput) (*mcp.CallToolResult, renderViewOutput, error) {
	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, renderViewOutput{}, err
	}

	format := render.FormatMarkdown
	if input.Format != "" {
		format, err = render.ParseFormat(input.Format)
		if err != nil {
			return nil, renderViewOutput{}, err
		}
		if format == render.FormatHTML {
			return nil, renderViewOutput{}, fmt.Errorf("html is not available over MCP (use markdown, text, json, or yaml)")
		}
	}

	page, err := s.dash.Render(ctx, role)
	if err != nil {
		return nil, renderViewOutput{}, fmt.Errorf("failed to render %s: %w", role, err)
	}

	var report bytes.Buffer
	if err := render.Write(&report, page, format, nil); err != nil {
		return nil, renderViewOutput{}, fmt.Errorf("failed to write report: %w", err)
	}

	out := renderViewOutput{
		CycleID:  page.CycleID,
		Role:     page.Role,
		Title:    page.Title,
		Warnings: append([]string{}, page.Warnings...),
		Widgets:  make([]widgetOutput, 0, len(page.Widgets)),
		Report:   report.String(),
	}
	for _, w := range page.Widgets {
		wo := widgetOutput{Kind: string(w.Kind), Title: w.Title, Dataset: w.Dataset}
		if w.Metric != nil {
			wo.Value = w.Metric.Display
		}
		out.Widgets = append(out.Widgets, wo)
	}
	return nil, out, nil
}

func (s *Server) handleListDatasets(ctx context.Context, req *mcp.CallToolRequest, input listDatasetsInput) (*mcp.CallToolResult, listDatasetsOutput, error) {
	statuses := s.dash.Status()
	out := listDatasetsOutput{Datasets: statuses}
	for _, st := range statuses {
		if st.Present {
			out.Present++
		}
	}
	return nil, out, nil
}

func (s *Server) handleListRoles(ctx context.Context, req *mcp.CallToolRequest, input listRolesInput) (*mcp.CallToolResult, listRolesOutput, error) {
	return nil, listRolesOutput{Roles: roles()}, nil
}

func roles() []roleOutput {
	out := make([]roleOutput, 0, len(models.AllRoles))
	for _, r := range models.AllRoles {
		out = append(out, roleOutput{
			Name:  string(r),
			Slug:  r.Slug(),
			Title: dashboard.Title(r),
		})
	}
	return out
}
