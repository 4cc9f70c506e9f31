package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zenops/zendesk-mcp/internal/zendesk"
)

// ListFunc and friends mirror the zendesk.Client method shapes so the
// handlers can be wired straight to client methods and stubbed in tests.
type (
	ListFunc   func(ctx context.Context, p zendesk.ListParams) (json.RawMessage, error)
	ItemFunc   func(ctx context.Context, id int64) (json.RawMessage, error)
	CreateFunc func(ctx context.Context, data any) (json.RawMessage, error)
	UpdateFunc func(ctx context.Context, id int64, data any) (json.RawMessage, error)
	SearchFunc func(ctx context.Context, p zendesk.SearchParams) (json.RawMessage, error)
	StatsFunc  func(ctx context.Context) (json.RawMessage, error)
)

// ListHandler serves the list_* tools for one collection.
type ListHandler struct {
	Plural string
	List   ListFunc
}

func (h *ListHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.List(ctx, listParams(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing %s: %v", h.Plural, err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// GetHandler serves the get_* tools for one resource.
type GetHandler struct {
	Singular string
	Get      ItemFunc
}

func (h *GetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting %s: %v", h.Singular, err)), nil
	}
	raw, err := h.Get(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting %s: %v", h.Singular, err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// CreateHandler serves the create_* tools. Param names the string argument
// carrying the resource payload as a JSON document.
type CreateHandler struct {
	Singular string
	Param    string
	Create   CreateFunc
}

func (h *CreateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := requireJSON(req, h.Param)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating %s: %v", h.Singular, err)), nil
	}
	raw, err := h.Create(ctx, data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating %s: %v", h.Singular, err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// UpdateHandler serves the update_* tools.
type UpdateHandler struct {
	Singular string
	Param    string
	Update   UpdateFunc
}

func (h *UpdateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating %s: %v", h.Singular, err)), nil
	}
	data, err := requireJSON(req, h.Param)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating %s: %v", h.Singular, err)), nil
	}
	raw, err := h.Update(ctx, id, data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating %s: %v", h.Singular, err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// DeleteHandler serves the delete_* tools.
type DeleteHandler struct {
	Singular string
	Delete   ItemFunc
}

func (h *DeleteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error deleting %s: %v", h.Singular, err)), nil
	}
	raw, err := h.Delete(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error deleting %s: %v", h.Singular, err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// SearchHandler serves the account-wide search tool.
type SearchHandler struct {
	Search SearchFunc
}

func (h *SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("Error searching: query parameter is required"), nil
	}
	p := zendesk.SearchParams{
		Query:     query,
		SortBy:    req.GetString("sort_by", ""),
		SortOrder: req.GetString("sort_order", ""),
	}
	raw, err := h.Search(ctx, p)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching: %v", err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// StatsHandler serves the Talk statistics tool.
type StatsHandler struct {
	Stats StatsFunc
}

func (h *StatsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting talk stats: %v", err)), nil
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}
