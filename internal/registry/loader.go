package registry

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docmcp/docs-mcp/pkg/types"
)

// ParseDocumentsYAML decodes an ordered list of documents from a YAML payload.
// The payload is a sequence of {id, content} entries; file order becomes
// registry insertion order.
func ParseDocumentsYAML(data []byte) ([]types.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("registry: documents payload is empty")
	}
	var docs []types.Document
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("registry: decode documents: %w", err)
	}
	for i, doc := range docs {
		if strings.TrimSpace(doc.ID) == "" {
			return nil, fmt.Errorf("registry: document %d has an empty id", i)
		}
	}
	return docs, nil
}

// LoadDocuments reads a YAML document set from disk.
func LoadDocuments(path string) ([]types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	docs, err := ParseDocumentsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", path, err)
	}
	return docs, nil
}
