package main

import (
	"context"
	"flag"
	"log"

	"github.com/docmcp/docs-mcp/internal/registry"
	"github.com/docmcp/docs-mcp/internal/server"
	"github.com/docmcp/docs-mcp/pkg/types"
)

func main() {
	var (
		docsFile = flag.String("docs-file", "", "Path to a YAML file with an alternate document set")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	config := types.Config{
		DocsFile: *docsFile,
		LogLevel: *logLevel,
	}

	docs := registry.SeedDocuments()
	if config.DocsFile != "" {
		loaded, err := registry.LoadDocuments(config.DocsFile)
		if err != nil {
			log.Fatalf("Failed to load documents: %v", err)
		}
		docs = loaded
	}

	docsServer := server.NewDocsServer(config, registry.NewRegistry(docs))

	// Serve blocks until the client disconnects
	if err := docsServer.Serve(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
