package tools

// Tool names
const (
	ToolReadDoc = "read_doc"
	ToolEditDoc = "edit_doc"
)
