package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const formatTemplate = `Your goal is to reformat a document to be written with markdown syntax.

The id of the document you need to reformat is:
<document_id>
%s
</document_id>

Add in headers, bullet points, tables, etc as necessary. Feel free to add in structure.
Use the 'edit_document' tool to edit the document. After the document has been reformatted, respond with the final version of the document.`

// FormatPrompt generates markdown reformatting instructions for a document.
// The document id is interpolated without an existence check; a prompt for
// an unknown id still renders.
type FormatPrompt struct{}

// NewFormatPrompt creates a new format prompt
func NewFormatPrompt() *FormatPrompt {
	return &FormatPrompt{}
}

// GetPrompt returns the MCP prompt definition
func (p *FormatPrompt) GetPrompt() mcp.Prompt {
	prompt := mcp.NewPrompt(PromptFormat,
		mcp.WithPromptDescription("Formats a document in markdown format"),
		mcp.WithArgument("doc_id",
			mcp.ArgumentDescription("The ID of the document to format"),
			mcp.RequiredArgument(),
		),
	)
	return prompt
}

// Handle processes the prompt request
func (p *FormatPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	docID := req.Params.Arguments["doc_id"]

	return mcp.NewGetPromptResult(
		"Markdown formatting instructions",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(formatTemplate, docID))),
		},
	), nil
}
