package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docmcp/docs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocumentsURI addresses the document id listing
const DocumentsURI = "docs://documents"

// DocumentsResource serves the list of document ids
type DocumentsResource struct {
	registry types.Registry
}

// NewDocumentsResource creates a new document listing resource
func NewDocumentsResource(registry types.Registry) *DocumentsResource {
	return &DocumentsResource{
		registry: registry,
	}
}

// GetResource returns the MCP resource definition
func (r *DocumentsResource) GetResource() mcp.Resource {
	resource := mcp.NewResource(DocumentsURI, "documents",
		mcp.WithResourceDescription("Lists the IDs of all available documents"),
		mcp.WithMIMEType("application/json"),
	)
	return resource
}

// Handle processes the resource read request
func (r *DocumentsResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	ids := r.registry.ListIDs()

	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document ids: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DocumentsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
