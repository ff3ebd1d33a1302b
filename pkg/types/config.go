package types

// Config represents the configuration for the docs-mcp server
type Config struct {
	DocsFile string `json:"docs_file,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}
