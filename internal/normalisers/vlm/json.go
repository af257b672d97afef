package vlm

import (
	"bytes"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

const jsonIndent = "  "

// FormatJSON pretty-prints text when the whole of it is one valid JSON
// value. The result is a fenced json block and true. Otherwise text is
// returned unchanged with false.
//
// Only whitespace changes. Member order, number spelling and non-ASCII
// text are kept as written: 2.50 stays 2.50, 1e3 stays 1e3 and "café" is
// not escaped to "caf\u00e9". Formatters that decode and re-encode would
// print 2.5 and 1000.0 instead.
func FormatJSON(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text, false
	}

	src := []byte(trimmed)
	if !json.Valid(src) {
		return text, false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", jsonIndent); err != nil {
		return text, false
	}

	return domain.FenceMarker + "json\n" + buf.String() + "\n" + domain.FenceMarker, true
}
