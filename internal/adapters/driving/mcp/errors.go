// Package mcp provides an MCP (Model Context Protocol) server adapter for Stacks.
// It enables AI assistants to search a personal library over stdio or HTTP.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
