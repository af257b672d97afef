// Package mcp provides an MCP (Model Context Protocol) server adapter for captionview.
// It lets AI assistants read, format and correct captions stored locally.
package mcp

import "errors"

// ErrMissingCaptionService is returned when the caption service is not provided.
var ErrMissingCaptionService = errors.New("mcp: caption service is required")

// ErrMissingField is returned when no field is given and no default is configured.
var ErrMissingField = errors.New("mcp: field is required")
