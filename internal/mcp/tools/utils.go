package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zenops/zendesk-mcp/internal/zendesk"
)

// listParams extracts the paging and ordering arguments shared by the list
// tools. Absent keys map to zero values, which the client omits from the
// outgoing request.
func listParams(req mcp.CallToolRequest) zendesk.ListParams {
	return zendesk.ListParams{
		Page:      req.GetInt("page", 0),
		PerPage:   req.GetInt("per_page", 0),
		SortBy:    req.GetString("sort_by", ""),
		SortOrder: req.GetString("sort_order", ""),
	}
}

// requireID reads the numeric id argument. Arguments arrive as float64 after
// JSON decoding, but plain ints are accepted too.
func requireID(req mcp.CallToolRequest) (int64, error) {
	switch v := req.GetArguments()["id"].(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("id must be positive")
		}
		return int64(v), nil
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("id must be positive")
		}
		return int64(v), nil
	case int64:
		if v <= 0 {
			return 0, fmt.Errorf("id must be positive")
		}
		return v, nil
	default:
		return 0, fmt.Errorf("id parameter is required")
	}
}

// requireJSON reads a string argument carrying a JSON document and checks
// that it parses before it goes anywhere near the API.
func requireJSON(req mcp.CallToolRequest, key string) (json.RawMessage, error) {
	text := req.GetString(key, "")
	if text == "" {
		return nil, fmt.Errorf("%s parameter is required", key)
	}
	var data json.RawMessage
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %v", key, err)
	}
	return data, nil
}

// prettyJSON re-indents a raw API response without re-marshalling it, so
// field order and values pass through untouched. Empty bodies, as returned
// by delete calls, render as null.
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
