package banners

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestShowsIn(t *testing.T) {
	global := Banner{Section: nil}
	allBanner := Banner{Section: strptr("all")}
	scoped := Banner{Section: strptr("commodities")}

	assert.True(t, global.ShowsIn("equities"))
	assert.True(t, global.ShowsIn(""))
	assert.True(t, allBanner.ShowsIn("indices"))
	assert.True(t, scoped.ShowsIn("commodities"))
	assert.False(t, scoped.ShowsIn("equities"))
	assert.False(t, scoped.ShowsIn(""))
}

func TestForPlacement(t *testing.T) {
	candidates := []Banner{
		{ID: "a", BannerType: TypeHero, Active: true, DisplayOrder: 2},
		{ID: "b", BannerType: TypeHero, Active: true, DisplayOrder: 1, Section: strptr("commodities")},
		{ID: "c", BannerType: TypeHero, Active: false, DisplayOrder: 0},
		{ID: "d", BannerType: TypeSidebar, Active: true, DisplayOrder: 0},
	}

	got := ForPlacement(candidates, TypeHero, "commodities")
	ids := []string{}
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	// scoped banner first by display_order, inactive and wrong-type excluded
	assert.Equal(t, []string{"b", "a"}, ids)

	// front page only gets global banners
	got = ForPlacement(candidates, TypeHero, "")
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType("interstitial"))
	assert.False(t, ValidType("footer"))
}
