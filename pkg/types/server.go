package types

import "context"

// Server defines the MCP server interface. Serve blocks until the
// transport is closed by the client.
type Server interface {
	Serve(ctx context.Context) error
}
