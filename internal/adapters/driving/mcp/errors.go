// Package mcp provides an MCP (Model Context Protocol) server adapter for lawdata.
// It lets AI assistants look up statutes, precedents and citations.
package mcp

import "errors"

// ErrMissingStatuteService is returned when the statute service is not provided.
var ErrMissingStatuteService = errors.New("mcp: statute service is required")

// ErrMissingPrecedentService is returned when the precedent service is not provided.
var ErrMissingPrecedentService = errors.New("mcp: precedent service is required")
