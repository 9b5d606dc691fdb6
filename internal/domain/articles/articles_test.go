package articles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "gold-outlook-for-q3", MakeSlug("Gold Outlook for Q3"))
	assert.Equal(t, "bitcoin-hits-100k", MakeSlug("Bitcoin hits $100k!"))
	assert.Equal(t, "article", MakeSlug("!!!"))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidSection("commodities"))
	assert.False(t, ValidSection("politics"))

	assert.True(t, ValidStatus("scheduled"))
	assert.False(t, ValidStatus("archived"))

	assert.True(t, ValidType("paid"))
	assert.True(t, ValidType("free"))
	assert.False(t, ValidType("premium"))
}

func TestVisible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Article{Status: StatusPublished}.Visible(now))
	assert.False(t, Article{Status: StatusDraft}.Visible(now))
	assert.True(t, Article{Status: StatusScheduled, ScheduledAt: &past}.Visible(now))
	assert.False(t, Article{Status: StatusScheduled, ScheduledAt: &future}.Visible(now))
	assert.False(t, Article{Status: StatusScheduled}.Visible(now))
}
