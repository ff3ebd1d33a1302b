package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrDocumentNotFound = errors.New("document not found")
)
