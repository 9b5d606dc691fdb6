package articles

import (
	"fmt"

	gosimpleslug "github.com/gosimple/slug"
	"gorm.io/gorm"
)

// MakeSlug turns a title into a URL-safe slug.
// Example: "Gold Outlook for Q3" -> "gold-outlook-for-q3"
func MakeSlug(title string) string {
	s := gosimpleslug.Make(title)
	if s == "" {
		s = "article"
	}
	return s
}

// EnsureUniqueSlug returns base if free, otherwise base-2, base-3, ...
// Collisions are resolved at save time; the unique index is the backstop.
func EnsureUniqueSlug(db *gorm.DB, base string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&Article{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
