package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/segmentio/encoding/json"
)

const (
	// uriScheme is the custom URI scheme for captionview resources.
	uriScheme = "captionview://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "List of all stored records",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}",
		Name:        "record",
		Description: "Field values of a specific record",
		MIMEType:    "application/json",
	}, s.handleRecordResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}/fields/{field}",
		Name:        "caption",
		Description: "A record's text field rendered as Markdown",
		MIMEType:    "text/markdown",
	}, s.handleCaptionResource)
}

// handleRecordsResource returns a summary of every record.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	records, err := s.ports.Records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	type recordInfo struct {
		ID        string    `json:"id"`
		Fields    []string  `json:"fields"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	infos := make([]recordInfo, len(records))
	for i := range records {
		names := make([]string, 0, len(records[i].Fields))
		for name := range records[i].Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		infos[i] = recordInfo{
			ID:        records[i].ID,
			Fields:    names,
			UpdatedAt: records[i].UpdatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

// handleRecordResource returns the raw field values of one record.
func (s *Server) handleRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// captionview://records/{recordId}
	recordID := extractRecordID(req.Params.URI)
	if recordID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Records.Get(ctx, recordID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(map[string]any{
		"id":     record.ID,
		"fields": record.Fields,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

// handleCaptionResource returns a rendered caption as Markdown.
func (s *Server) handleCaptionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// captionview://records/{recordId}/fields/{field}
	recordID, field := extractCaptionRef(req.Params.URI)
	if recordID == "" || field == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	view, err := s.ports.Caption.Render(ctx, recordID, field)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     view.Markdown,
		}},
	}, nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractRecordID extracts the record ID from a URI like captionview://records/{recordId}.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

// extractCaptionRef extracts the record ID and field from a URI like
// captionview://records/{recordId}/fields/{field}.
func extractCaptionRef(uri string) (string, string) {
	const prefix = uriScheme + "records/"
	const sep = "/fields/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	id, field, ok := strings.Cut(strings.TrimPrefix(uri, prefix), sep)
	if !ok || strings.Contains(field, "/") {
		return "", ""
	}
	return id, field
}
