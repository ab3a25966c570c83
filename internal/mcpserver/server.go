// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apidocswagger capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/apidocswagger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `apidocswagger MCP server: converts apiDoc api_data.json output into Swagger 2.0 documents and validates them.

Configuration: All defaults are configurable via APIDOCSWAGGER_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- APIDOCSWAGGER_CACHE_ENABLED (default: true): disable endpoint caching entirely
- APIDOCSWAGGER_CACHE_FILE_TTL (default: 15m): cache TTL for local api_data.json files
- APIDOCSWAGGER_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline content
- APIDOCSWAGGER_ISSUE_LIMIT (default: 100): default page size for issue lists
- APIDOCSWAGGER_OPERATION_IDS (default: false): emit endpoint names as operationId
- APIDOCSWAGGER_NORMALIZE_PATHS (default: false): rewrite :id placeholders as {id}
- APIDOCSWAGGER_STRICT (default: false): fail conversions that raise warnings

Caching: Decoded endpoint lists are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		endpointCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidocswagger", Version: apidocswagger.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an apiDoc api_data.json endpoint array into a Swagger 2.0 document. Provide the endpoints as a file path or inline content, and optionally api_project.json for the info block. Returns the document (json or yaml), conversion issues and statistics. Use validate=true to also check the produced document. Use output to write to a file instead of returning inline.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a Swagger 2.0 document (JSON or YAML) for structural problems. Returns errors with dotted path locations. Use offset/limit to paginate through results.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_field",
		Description: "Explain how an apiDoc field name and type map onto Swagger definitions. Returns the property name, the definition it is placed in, and the property schema the converter emits (type, array item type, and $ref for Object fields).",
	}, handleResolveField)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
