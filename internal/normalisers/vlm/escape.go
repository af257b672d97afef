package vlm

import (
	"strings"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r")

// ResolveEscapes replaces the two-character sequences \n, \t and \r with
// newline, tab and carriage return. Fenced text is returned unchanged.
func ResolveEscapes(text string) string {
	if text == "" || domain.IsFenced(text) {
		return text
	}
	return escapeReplacer.Replace(text)
}
