package tools

import (
	"context"
	"fmt"

	"github.com/docmcp/docs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadDocTool handles document read requests
type ReadDocTool struct {
	registry types.Registry
}

// NewReadDocTool creates a new document read tool
func NewReadDocTool(registry types.Registry) *ReadDocTool {
	return &ReadDocTool{
		registry: registry,
	}
}

// GetTool returns the MCP tool definition
func (t *ReadDocTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolReadDoc,
		mcp.WithDescription("Reads the content of a document and returns it as a string"),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("The ID of the document to read")),
	)
	return tool
}

// Handle processes the tool request
func (t *ReadDocTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID := mcp.ParseString(req, "doc_id", "")
	if docID == "" {
		return mcp.NewToolResultError("doc_id parameter is required"), nil
	}

	content, err := t.registry.Get(docID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read document: %v", err)), nil
	}

	return mcp.NewToolResultText(content), nil
}
