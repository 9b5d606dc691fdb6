package articles

import (
	"time"

	"toadtoe-api/internal/domain/access"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusScheduled = "scheduled"
)

// Sections is the fixed category set, in display order.
var Sections = []string{
	"commodities",
	"cryptocurrencies",
	"indices",
	"equities",
	"others",
}

func ValidSection(s string) bool {
	for _, v := range Sections {
		if v == s {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusScheduled
}

func ValidType(s string) bool {
	return access.ArticleType(s) == access.ArticleFree || access.ArticleType(s) == access.ArticlePaid
}

type Article struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug    string `gorm:"not null;uniqueIndex" json:"slug"`
	Title   string `gorm:"not null" json:"title"`
	Excerpt string `gorm:"not null" json:"excerpt"`
	Content string `gorm:"not null" json:"content"`

	FeaturedImageURL *string `gorm:"column:featured_image_url" json:"featured_image_url,omitempty"`

	Section     string `gorm:"not null;index" json:"section"`
	ArticleType string `gorm:"not null;default:'free'" json:"article_type"`
	Status      string `gorm:"not null;default:'draft';index" json:"status"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	ViewsCount  int  `gorm:"not null;default:0" json:"views_count"`
	LikesCount  int  `gorm:"not null;default:0" json:"likes_count"`
	IsSponsored bool `gorm:"not null;default:false" json:"is_sponsored"`

	AuthorID   uint    `gorm:"not null;index" json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Article) Type() access.ArticleType {
	return access.ArticleType(a.ArticleType)
}

// ArticleLike records one authenticated like. likes_count on the article is
// maintained alongside inserts/deletes.
type ArticleLike struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArticleID string `gorm:"type:uuid;not null;uniqueIndex:idx_article_likes_user" json:"article_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_article_likes_user" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
