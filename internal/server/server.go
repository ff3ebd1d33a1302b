package server

import (
	"context"
	"fmt"
	"log"

	"github.com/docmcp/docs-mcp/internal/prompts"
	"github.com/docmcp/docs-mcp/internal/resources"
	"github.com/docmcp/docs-mcp/internal/tools"
	"github.com/docmcp/docs-mcp/pkg/project"
	"github.com/docmcp/docs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &DocsServer{}

// serverInstructions is returned in the initialize response and tells MCP
// clients how to use the document capabilities together.
const serverInstructions = `docs-mcp exposes a small set of documents. ` +
	`Read a document with the read_doc tool, replace its content with the ` +
	`edit_doc tool, and list available ids via the docs://documents resource. ` +
	`Individual documents are addressable as docs://documents/{doc_id}.`

// DocsServer represents the document MCP server
type DocsServer struct {
	mcpServer *server.MCPServer
	registry  types.Registry
	config    types.Config
}

// NewDocsServer creates a new document MCP server
func NewDocsServer(config types.Config, registry types.Registry) *DocsServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	s := &DocsServer{
		mcpServer: mcpServer,
		registry:  registry,
		config:    config,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// Serve serves the document MCP server over stdio, blocking until the
// client disconnects.
func (s *DocsServer) Serve(ctx context.Context) error {
	log.Printf("Starting %s %s with config: %+v", project.Name, project.Version, s.config)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *DocsServer) registerTools() {
	readDocTool := tools.NewReadDocTool(s.registry)
	s.mcpServer.AddTool(readDocTool.GetTool(), readDocTool.Handle)

	editDocTool := tools.NewEditDocTool(s.registry)
	s.mcpServer.AddTool(editDocTool.GetTool(), editDocTool.Handle)
}

func (s *DocsServer) registerResources() {
	documentsResource := resources.NewDocumentsResource(s.registry)
	s.mcpServer.AddResource(documentsResource.GetResource(), documentsResource.Handle)

	docContentResource := resources.NewDocContentResource(s.registry)
	s.mcpServer.AddResourceTemplate(docContentResource.GetTemplate(), docContentResource.Handle)
}

func (s *DocsServer) registerPrompts() {
	formatPrompt := prompts.NewFormatPrompt()
	s.mcpServer.AddPrompt(formatPrompt.GetPrompt(), formatPrompt.Handle)

	summarizePrompt := prompts.NewSummarizePrompt()
	s.mcpServer.AddPrompt(summarizePrompt.GetPrompt(), summarizePrompt.Handle)
}
