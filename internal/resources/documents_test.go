package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/docmcp/docs-mcp/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsResource(t *testing.T) {
	resource := NewDocumentsResource(registry.NewRegistry(registry.SeedDocuments()))

	request := mcp.ReadResourceRequest{}
	request.Params.URI = DocumentsURI

	contents, err := resource.Handle(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	textContents, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected text resource contents")
	assert.Equal(t, DocumentsURI, textContents.URI)
	assert.Equal(t, "application/json", textContents.MIMEType)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(textContents.Text), &ids))
	assert.Equal(t, []string{
		"deposition.md",
		"report.pdf",
		"financials.docx",
		"outlook.pdf",
		"plan.md",
		"spec.txt",
	}, ids)
}

func TestDocumentsResourceDefinition(t *testing.T) {
	resource := NewDocumentsResource(registry.NewRegistry(registry.SeedDocuments()))

	def := resource.GetResource()
	assert.Equal(t, DocumentsURI, def.URI)
	assert.Equal(t, "documents", def.Name)
	assert.Equal(t, "application/json", def.MIMEType)
}
