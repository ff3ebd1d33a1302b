package registry

import (
	"fmt"
	"sync"

	"github.com/docmcp/docs-mcp/pkg/types"
)

var _ types.Registry = &Registry{}

// Registry is an in-memory document store mapping ids to content.
// Ids are returned in insertion order. The registry never grows or
// shrinks after construction; Set only replaces existing content.
type Registry struct {
	mu       sync.RWMutex
	ids      []string
	contents map[string]string
}

// NewRegistry creates a registry seeded with the given documents.
// Duplicate ids keep their first position and take the last content.
func NewRegistry(docs []types.Document) *Registry {
	r := &Registry{
		contents: make(map[string]string, len(docs)),
	}
	for _, doc := range docs {
		if _, ok := r.contents[doc.ID]; !ok {
			r.ids = append(r.ids, doc.ID)
		}
		r.contents[doc.ID] = doc.Content
	}
	return r
}

// Get returns the content of a document by its id
func (r *Registry) Get(docID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, ok := r.contents[docID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}
	return content, nil
}

// Set replaces the content of an existing document
func (r *Registry) Set(docID string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contents[docID]; !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}
	r.contents[docID] = content
	return nil
}

// ListIDs returns all document ids in insertion order
func (r *Registry) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of documents in the registry
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids)
}
