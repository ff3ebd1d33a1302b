package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const summarizeTemplate = `Your goal is to summarize a document.

The id of the document you need to summarize is:
<document_id>
%s
</document_id>

Read the document with the 'read_doc' tool, then respond with a short summary of its content in a few sentences. Do not edit the document.`

// SummarizePrompt generates summarization instructions for a document.
// Like FormatPrompt, the id is interpolated without an existence check.
type SummarizePrompt struct{}

// NewSummarizePrompt creates a new summarize prompt
func NewSummarizePrompt() *SummarizePrompt {
	return &SummarizePrompt{}
}

// GetPrompt returns the MCP prompt definition
func (p *SummarizePrompt) GetPrompt() mcp.Prompt {
	prompt := mcp.NewPrompt(PromptSummarize,
		mcp.WithPromptDescription("Summarizes a document by its ID"),
		mcp.WithArgument("doc_id",
			mcp.ArgumentDescription("The ID of the document to summarize"),
			mcp.RequiredArgument(),
		),
	)
	return prompt
}

// Handle processes the prompt request
func (p *SummarizePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	docID := req.Params.Arguments["doc_id"]

	return mcp.NewGetPromptResult(
		"Document summarization instructions",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(summarizeTemplate, docID))),
		},
	), nil
}
