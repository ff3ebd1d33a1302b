package tools

import (
	"context"
	"fmt"

	"github.com/docmcp/docs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EditDocTool handles document edit requests
type EditDocTool struct {
	registry types.Registry
}

// NewEditDocTool creates a new document edit tool
func NewEditDocTool(registry types.Registry) *EditDocTool {
	return &EditDocTool{
		registry: registry,
	}
}

// GetTool returns the MCP tool definition
func (t *EditDocTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEditDoc,
		mcp.WithDescription("Edits a document by its ID, replacing the old content with new content"),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("The ID of the document to edit")),
		mcp.WithString("new_content", mcp.Required(), mcp.Description("The new content to replace the old content")),
	)
	return tool
}

// Handle processes the tool request
func (t *EditDocTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID := mcp.ParseString(req, "doc_id", "")
	if docID == "" {
		return mcp.NewToolResultError("doc_id parameter is required"), nil
	}
	newContent := mcp.ParseString(req, "new_content", "")

	if err := t.registry.Set(docID, newContent); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to edit document: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Updated document '%s'", docID)), nil
}
