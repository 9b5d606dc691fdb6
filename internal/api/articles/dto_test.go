package articles

import (
	"strings"
	"testing"

	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/articles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct{ n int }

func (f *fixedCounter) Count() int     { return f.n }
func (f *fixedCounter) Increment() int { f.n++; return f.n }

func TestDetailDTOFullMode(t *testing.T) {
	a := articles.Article{
		Slug:        "rate-cut-watch",
		Title:       "Rate Cut Watch",
		ArticleType: string(access.ArticleFree),
		Content:     "Full body text.",
	}

	d := access.Decide(a.Type(), access.Authenticated(nil), &fixedCounter{})
	dto := toDetailDTO(a, d)

	assert.Equal(t, access.RenderFull, dto.RenderMode)
	assert.Equal(t, "Full body text.", dto.Content)
	assert.Nil(t, dto.Paywall)
}

// The worked example: a paid article, an anonymous visitor with no prior
// views, expecting the premium prompt over a capped preview.
func TestDetailDTOPaidArticleAnonymous(t *testing.T) {
	a := articles.Article{
		Slug:        "gold-outlook",
		Title:       "Gold Outlook",
		ArticleType: string(access.ArticlePaid),
		Status:      articles.StatusPublished,
		Content:     strings.Repeat("Gold keeps climbing. ", 40),
	}

	d := access.Decide(a.Type(), access.Anonymous(), &fixedCounter{})
	dto := toDetailDTO(a, d)

	assert.Equal(t, access.RenderPreviewWithPaywall, dto.RenderMode)
	require.NotNil(t, dto.Paywall)
	assert.Equal(t, "Premium Article", dto.Paywall.Headline)
	assert.Equal(t, "Sign Up & Subscribe", dto.Paywall.CallToAction)

	// preview is capped at 200 characters plus the ellipsis
	assert.LessOrEqual(t, len([]rune(dto.Content)), access.PreviewLength+1)
	assert.True(t, strings.HasSuffix(dto.Content, "…"))
}

func TestDetailDTORegisteredReaderUpgradePrompt(t *testing.T) {
	a := articles.Article{
		Slug:        "oil-supply-shock",
		ArticleType: string(access.ArticlePaid),
		Content:     "Members only.",
	}

	d := access.Decide(a.Type(), access.Authenticated(access.RoleSet{access.RoleRegisteredReader}), &fixedCounter{})
	dto := toDetailDTO(a, d)

	assert.Equal(t, access.RenderPreviewWithPaywall, dto.RenderMode)
	require.NotNil(t, dto.Paywall)
	assert.Equal(t, "Upgrade to Premium", dto.Paywall.CallToAction)
	// short bodies survive the preview untruncated
	assert.Equal(t, "Members only.", dto.Content)
}
