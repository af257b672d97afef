package vlm

import (
	"regexp"
	"unicode/utf8"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

var (
	scriptBlockRe    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	danglingScriptRe = regexp.MustCompile(`(?i)</?script[^>]*>?`)

	// A tag runs to its closing '>' or, when unterminated, to the end of
	// the text. Quoted values may contain '>'.
	tagRe = regexp.MustCompile(`<[A-Za-z/](?:"[^"]*"?|'[^']*'?|[^<>"'])*>?`)

	// Handler values may be quoted, unquoted, empty or missing their
	// closing quote.
	handlerAttrRe = regexp.MustCompile(`(?i)\s*[^\s<>"'=/]*on\w+\s*=\s*(?:"[^"]*"?|'[^']*'?|[^\s>"']*)`)
)

// Sanitize removes script blocks and inline event-handler attributes.
// Handler patterns are only removed inside tags, so caption prose such as
// "one=2" is left alone.
//
// When maxLength is positive and text is longer than maxLength runes, text
// is cut to maxLength runes before anything is removed, and the default
// truncation marker is appended to the cleaned result.
func Sanitize(text string, maxLength int) string {
	return sanitize(text, maxLength, domain.DefaultTruncationMarker)
}

func sanitize(text string, maxLength int, marker string) string {
	if text == "" {
		return ""
	}

	text, cut := truncate(text, maxLength)
	text = strip(text)
	if cut {
		text += marker
	}
	return text
}

// strip repeats until nothing changes, since removing one construct can
// join the halves of another. Every pass that changes text shortens it.
func strip(text string) string {
	for {
		next := scriptBlockRe.ReplaceAllString(text, "")
		next = tagRe.ReplaceAllStringFunc(next, func(tag string) string {
			return handlerAttrRe.ReplaceAllString(tag, "")
		})
		next = danglingScriptRe.ReplaceAllString(next, "")
		if next == text {
			return text
		}
		text = next
	}
}

func truncate(text string, maxLength int) (string, bool) {
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text, false
	}

	n := 0
	for i := range text {
		if n == maxLength {
			return text[:i], true
		}
		n++
	}
	return text, false
}
