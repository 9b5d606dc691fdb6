package access

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewTruncatesAt200Characters(t *testing.T) {
	body := strings.Repeat("a", 500)
	got := Preview(body)

	assert.Equal(t, PreviewLength+1, len([]rune(got)))
	assert.Equal(t, strings.Repeat("a", 200)+"…", got)
}

func TestPreviewIgnoresWordBoundaries(t *testing.T) {
	word := strings.Repeat("x", 195) + " boundary"
	got := Preview(word)

	// Cut lands mid-word, no back-tracking to the last space.
	assert.Equal(t, word[:200]+"…", got)
}

func TestPreviewStripsMarkup(t *testing.T) {
	body := `<h1>Gold Outlook</h1><p>Prices <strong>rallied</strong> today.</p>`
	got := Preview(body)

	assert.NotContains(t, got, "<")
	assert.Contains(t, got, "Gold Outlook")
	assert.Contains(t, got, "rallied")
}

func TestPreviewShortBodyUnchanged(t *testing.T) {
	assert.Equal(t, "Short body.", Preview("Short body."))
	assert.Equal(t, "", Preview(""))
}

func TestPreviewUnescapesEntities(t *testing.T) {
	got := Preview("Fish &amp; chips")
	assert.Equal(t, "Fish & chips", got)
}
