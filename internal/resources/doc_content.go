package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/docmcp/docs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocContentURITemplate addresses the content of a single document
const DocContentURITemplate = "docs://documents/{doc_id}"

const docContentURIPrefix = "docs://documents/"

// DocContentResource serves the content of a single document by id
type DocContentResource struct {
	registry types.Registry
}

// NewDocContentResource creates a new document content resource
func NewDocContentResource(registry types.Registry) *DocContentResource {
	return &DocContentResource{
		registry: registry,
	}
}

// GetTemplate returns the MCP resource template definition
func (r *DocContentResource) GetTemplate() mcp.ResourceTemplate {
	template := mcp.NewResourceTemplate(DocContentURITemplate, "document_content",
		mcp.WithTemplateDescription("Returns the content of a document by its ID"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
	return template
}

// Handle processes the resource read request
func (r *DocContentResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	docID := strings.TrimPrefix(uri, docContentURIPrefix)
	if docID == "" || docID == uri {
		return nil, fmt.Errorf("invalid document URI: %s", uri)
	}

	content, err := r.registry.Get(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     content,
		},
	}, nil
}
