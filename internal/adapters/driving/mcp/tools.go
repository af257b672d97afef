package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// ListFieldsInput is the input schema for the list_fields tool.
type ListFieldsInput struct {
	All bool `json:"all,omitempty" jsonschema:"include non-string fields"`
}

// ListFieldsOutput is the output schema for the list_fields tool.
type ListFieldsOutput struct {
	Fields []FieldOutput `json:"fields"`
}

// FieldOutput describes one record field.
type FieldOutput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RenderCaptionInput is the input schema for the render_caption tool.
type RenderCaptionInput struct {
	RecordID string `json:"record_id" jsonschema:"the record to read"`
	Field    string `json:"field,omitempty" jsonschema:"the text field to render (default: configured default field)"`
}

// RenderCaptionOutput is the output schema for the render_caption tool.
type RenderCaptionOutput struct {
	RecordID  string `json:"record_id"`
	Field     string `json:"field"`
	Present   bool   `json:"present"`
	Kind      string `json:"kind"`
	Markdown  string `json:"markdown"`
	Raw       string `json:"raw"`
	CharCount int    `json:"char_count"`
}

// FormatTextInput is the input schema for the format_text tool.
type FormatTextInput struct {
	Text string `json:"text" jsonschema:"model output to normalise"`
}

// FormatTextOutput is the output schema for the format_text tool.
type FormatTextOutput struct {
	Kind     string `json:"kind"`
	Content  string `json:"content"`
	Markdown string `json:"markdown"`
}

// UpdateCaptionInput is the input schema for the update_caption tool.
type UpdateCaptionInput struct {
	RecordID string `json:"record_id" jsonschema:"the record to change"`
	Field    string `json:"field" jsonschema:"the string field to replace"`
	Value    string `json:"value" jsonschema:"the new raw value"`
}

// UpdateCaptionOutput is the output schema for the update_caption tool.
type UpdateCaptionOutput struct {
	RecordID  string `json:"record_id"`
	Field     string `json:"field"`
	CharCount int    `json:"char_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_fields",
		Description: "List record fields that can be shown as captions",
	}, s.handleListFields)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_caption",
		Description: "Render a record's text field as sanitised Markdown",
	}, s.handleRenderCaption)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_text",
		Description: "Normalise vision-language model output into Markdown",
	}, s.handleFormatText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_caption",
		Description: "Replace the raw value of a record's string field",
	}, s.handleUpdateCaption)
}

func (s *Server) handleListFields(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFieldsInput,
) (*mcp.CallToolResult, ListFieldsOutput, error) {
	schema, err := s.ports.Caption.Fields(ctx)
	if err != nil {
		return nil, ListFieldsOutput{}, fmt.Errorf("listing fields: %w", err)
	}

	output := ListFieldsOutput{Fields: []FieldOutput{}}
	for _, f := range schema {
		if !input.All && f.Type != domain.FieldTypeString {
			continue
		}
		output.Fields = append(output.Fields, FieldOutput{Name: f.Name, Type: f.Type.String()})
	}
	return nil, output, nil
}

func (s *Server) handleRenderCaption(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderCaptionInput,
) (*mcp.CallToolResult, RenderCaptionOutput, error) {
	field, err := s.resolveField(input.Field)
	if err != nil {
		return nil, RenderCaptionOutput{}, err
	}

	view, err := s.ports.Caption.Render(ctx, input.RecordID, field)
	if err != nil {
		return nil, RenderCaptionOutput{}, err
	}

	return nil, RenderCaptionOutput{
		RecordID:  view.RecordID,
		Field:     view.Field,
		Present:   view.Present,
		Kind:      string(view.Output.Kind),
		Markdown:  view.Markdown,
		Raw:       view.Raw,
		CharCount: view.CharCount,
	}, nil
}

func (s *Server) handleFormatText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FormatTextInput,
) (*mcp.CallToolResult, FormatTextOutput, error) {
	out := s.ports.Caption.Format(input.Text)
	return nil, FormatTextOutput{
		Kind:     string(out.Kind),
		Content:  out.String(),
		Markdown: s.ports.Caption.Markdown(out),
	}, nil
}

func (s *Server) handleUpdateCaption(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateCaptionInput,
) (*mcp.CallToolResult, UpdateCaptionOutput, error) {
	if input.Field == "" {
		return nil, UpdateCaptionOutput{}, ErrMissingField
	}

	if err := s.ports.Caption.Update(ctx, input.RecordID, input.Field, input.Value); err != nil {
		return nil, UpdateCaptionOutput{}, err
	}

	return nil, UpdateCaptionOutput{
		RecordID:  input.RecordID,
		Field:     input.Field,
		CharCount: len([]rune(input.Value)),
	}, nil
}

// resolveField falls back to the configured default field.
func (s *Server) resolveField(field string) (string, error) {
	if field != "" {
		return field, nil
	}
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil && settings.DefaultField != "" {
			return settings.DefaultField, nil
		}
	}
	return "", ErrMissingField
}
