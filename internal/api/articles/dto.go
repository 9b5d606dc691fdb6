package articles

import (
	"time"

	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/articles"
)

// CardDTO is the list-view shape: everything a card needs, never the body.
type CardDTO struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Excerpt          string     `json:"excerpt"`
	FeaturedImageURL *string    `json:"featured_image_url,omitempty"`
	Section          string     `json:"section"`
	ArticleType      string     `json:"article_type"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	ViewsCount       int        `json:"views_count"`
	LikesCount       int        `json:"likes_count"`
	IsSponsored      bool       `json:"is_sponsored"`
	AuthorName       *string    `json:"author_name,omitempty"`
}

func toCardDTO(a articles.Article) CardDTO {
	return CardDTO{
		ID:               a.ID,
		Slug:             a.Slug,
		Title:            a.Title,
		Excerpt:          a.Excerpt,
		FeaturedImageURL: a.FeaturedImageURL,
		Section:          a.Section,
		ArticleType:      a.ArticleType,
		PublishedAt:      a.PublishedAt,
		ViewsCount:       a.ViewsCount,
		LikesCount:       a.LikesCount,
		IsSponsored:      a.IsSponsored,
		AuthorName:       a.AuthorName,
	}
}

// PaywallDTO carries the call-to-action for a gated view.
type PaywallDTO struct {
	Prompt       access.PaywallPrompt `json:"prompt"`
	Headline     string               `json:"headline"`
	CallToAction string               `json:"call_to_action"`
}

// DetailDTO is the read-view shape. Content is the full body in full mode and
// the 200-character preview otherwise.
type DetailDTO struct {
	CardDTO
	RenderMode access.RenderMode `json:"render_mode"`
	Content    string            `json:"content"`
	Paywall    *PaywallDTO       `json:"paywall,omitempty"`
}

func toDetailDTO(a articles.Article, d access.Decision) DetailDTO {
	out := DetailDTO{
		CardDTO:    toCardDTO(a),
		RenderMode: d.Mode,
	}

	if d.Mode == access.RenderFull {
		out.Content = a.Content
		return out
	}

	out.Content = access.Preview(a.Content)
	if d.Prompt != access.PromptNone {
		out.Paywall = &PaywallDTO{
			Prompt:       d.Prompt,
			Headline:     d.Prompt.Headline(),
			CallToAction: d.Prompt.CallToAction(),
		}
	}
	return out
}
