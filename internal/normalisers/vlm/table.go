package vlm

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// DefaultMaxTokenBytes bounds the size of a single markup token inside a
// table span. Larger tokens make the span fall back to a fenced html block.
const DefaultMaxTokenBytes = 64 << 10

var tableSpanRe = regexp.MustCompile(`(?i)<table[\s\S]*?</table>`)

// TableGrid is the rows and cells of one HTML table, in document order.
// Rows may have different lengths; the first row is the header.
type TableGrid [][]string

// Markdown renders the grid as a pipe table. An empty grid renders as "".
func (g TableGrid) Markdown() string {
	if len(g) == 0 {
		return ""
	}

	lines := make([]string, 0, len(g)+1)
	for i, row := range g {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.ReplaceAll(cell, "|", `\|`)
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")

		if i == 0 {
			sep := make([]string, len(row))
			for j := range sep {
				sep[j] = "---"
			}
			lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
		}
	}
	return strings.Join(lines, "\n")
}

// ConvertTables replaces every <table>...</table> span in text with a pipe
// table. Spans are matched lazily, so nested tables are not supported.
// A span without rows is left as it is; a span that cannot be tokenized is
// wrapped in a fenced html block. Each span is handled on its own.
func ConvertTables(text string) string {
	return convertTables(text, DefaultMaxTokenBytes)
}

// ParseTable parses one table span into a grid.
func ParseTable(span string) (TableGrid, error) {
	return parseTable(span, DefaultMaxTokenBytes)
}

func convertTables(text string, maxTokenBytes int) string {
	return tableSpanRe.ReplaceAllStringFunc(text, func(span string) string {
		grid, err := parseTable(span, maxTokenBytes)
		if err != nil {
			logger.Debug("table left as html: %v", err)
			return "\n" + domain.FenceMarker + "html\n" + span + "\n" + domain.FenceMarker + "\n"
		}

		md := grid.Markdown()
		if md == "" {
			return span
		}
		return "\n\n" + md + "\n\n"
	})
}

func parseTable(span string, maxTokenBytes int) (grid TableGrid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("tokenizer panic: %v", r)
		}
	}()

	z := html.NewTokenizer(strings.NewReader(span))
	if maxTokenBytes > 0 {
		z.SetMaxBuf(maxTokenBytes)
	}

	var p tableParser
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return p.rows, nil
			}
			return nil, fmt.Errorf("tokenizing table: %w", z.Err())
		case html.StartTagToken:
			name, _ := z.TagName()
			p.open(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			p.close(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			p.open(string(name))
			p.close(string(name))
		case html.TextToken:
			p.text(string(z.Text()))
		}
	}
}

// tableParser collects cells from a token stream.
// Tags other than table, tr, th and td are ignored, and only text inside a
// cell is kept. A cell's text survives its end tag, so a stray </td>
// repeats the previous cell.
type tableParser struct {
	rows   TableGrid
	row    []string
	cell   strings.Builder
	inCell bool
}

func (p *tableParser) open(tag string) {
	switch tag {
	case "table":
		p.rows = nil
	case "tr":
		p.row = nil
	case "th", "td":
		p.inCell = true
		p.cell.Reset()
	}
}

func (p *tableParser) close(tag string) {
	switch tag {
	case "tr":
		if len(p.row) > 0 {
			p.rows = append(p.rows, p.row)
		}
		p.row = nil
	case "th", "td":
		p.inCell = false
		p.row = append(p.row, strings.TrimSpace(p.cell.String()))
	}
}

func (p *tableParser) text(data string) {
	if p.inCell {
		p.cell.WriteString(data)
	}
}
