package project

// Name identifies the MCP server in the initialize response
const Name = "docs-mcp"

// Version of the docs-mcp server
const Version = "0.1.0"
