package access

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// PreviewLength is how many characters of plain text a gated preview shows.
const PreviewLength = 200

var stripPolicy = bluemonday.StrictPolicy()

// Preview derives the teaser shown alongside a paywall prompt: markup is
// stripped from the stored body, the plain text is cut at PreviewLength
// characters regardless of word boundaries, and an ellipsis is appended when
// anything was cut.
func Preview(body string) string {
	plain := html.UnescapeString(stripPolicy.Sanitize(body))
	plain = strings.TrimSpace(plain)

	runes := []rune(plain)
	if len(runes) <= PreviewLength {
		return plain
	}
	return string(runes[:PreviewLength]) + "…"
}
