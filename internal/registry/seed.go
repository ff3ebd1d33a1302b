package registry

import "github.com/docmcp/docs-mcp/pkg/types"

// SeedDocuments returns the default document set loaded at process start.
func SeedDocuments() []types.Document {
	return []types.Document{
		{ID: "deposition.md", Content: "This deposition covers the testimony of Angela Smith, P.E."},
		{ID: "report.pdf", Content: "The report details the state of a 20m condenser tower."},
		{ID: "financials.docx", Content: "These financials outline the project's budget and expenditures."},
		{ID: "outlook.pdf", Content: "This document presents the projected future performance of the system."},
		{ID: "plan.md", Content: "The plan outlines the steps for the project's implementation."},
		{ID: "spec.txt", Content: "These specifications define the technical requirements for the equipment."},
	}
}
