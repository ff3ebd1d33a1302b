package types

// Registry defines the document registry interface
type Registry interface {
	// Get returns the content of a document, or ErrDocumentNotFound
	// when the id is unknown.
	Get(docID string) (string, error)

	// Set replaces the content of an existing document, or returns
	// ErrDocumentNotFound when the id is unknown. Set never inserts
	// a new document.
	Set(docID string, content string) error

	// ListIDs returns all document ids in insertion order.
	ListIDs() []string
}

// Document is a named unit of text content
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}
