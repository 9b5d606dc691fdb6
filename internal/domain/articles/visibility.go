package articles

import (
	"time"

	"gorm.io/gorm"
)

// VisibleQuery scopes reads to what the public may see: published articles,
// plus scheduled ones whose time has elapsed. Flipping scheduled rows to
// published is an operational concern outside this service; the scope makes
// them readable the moment scheduled_at passes either way.
func VisibleQuery(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&Article{}).
		Where("status = ? OR (status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?)",
			StatusPublished, StatusScheduled, now)
}

// Visible reports the same rule for a single row.
func (a Article) Visible(now time.Time) bool {
	if a.Status == StatusPublished {
		return true
	}
	return a.Status == StatusScheduled && a.ScheduledAt != nil && !a.ScheduledAt.After(now)
}
