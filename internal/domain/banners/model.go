package banners

import "time"

const (
	TypeHero         = "hero"
	TypeTop          = "top"
	TypeInterstitial = "interstitial"
	TypeSidebar      = "sidebar"
)

// SectionAll marks a banner that shows on every page.
const SectionAll = "all"

func ValidType(s string) bool {
	switch s {
	case TypeHero, TypeTop, TypeInterstitial, TypeSidebar:
		return true
	}
	return false
}

type Banner struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title      string `gorm:"not null" json:"title"`
	BannerType string `gorm:"not null;index" json:"banner_type"`
	ImageURL   string `gorm:"not null" json:"image_url"`
	LinkURL    string `json:"link_url"`

	// Empty or "all" means every section.
	Section *string `gorm:"index" json:"section,omitempty"`

	Active       bool `gorm:"not null;default:true" json:"active"`
	DisplayOrder int  `gorm:"not null;default:0;index" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
