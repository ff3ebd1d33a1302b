package tools

import (
	"context"
	"testing"

	"github.com/docmcp/docs-mcp/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocTool(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    string
		expectError bool
	}{
		{
			name: "Seeded document",
			arguments: map[string]interface{}{
				"doc_id": "plan.md",
			},
			expected: "The plan outlines the steps for the project's implementation.",
		},
		{
			name: "Another seeded document",
			arguments: map[string]interface{}{
				"doc_id": "report.pdf",
			},
			expected: "The report details the state of a 20m condenser tower.",
		},
		{
			name: "Unknown document",
			arguments: map[string]interface{}{
				"doc_id": "nope",
			},
			expectError: true,
		},
		{
			name:        "Missing doc_id",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewReadDocTool(registry.NewRegistry(registry.SeedDocuments()))

			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments

			result, err := tool.Handle(context.Background(), request)
			require.NoError(t, err)

			if tt.expectError {
				assert.True(t, result.IsError)
			} else {
				assert.False(t, result.IsError)
				assert.Equal(t, tt.expected, resultText(t, result))
			}
		})
	}
}

func TestReadDocToolDefinition(t *testing.T) {
	tool := NewReadDocTool(registry.NewRegistry(registry.SeedDocuments()))

	def := tool.GetTool()
	assert.Equal(t, ToolReadDoc, def.Name)
	assert.Contains(t, def.InputSchema.Required, "doc_id")
}

// resultText extracts the text of the first content block of a tool result
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return textContent.Text
}
