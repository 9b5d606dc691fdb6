package banners

import "sort"

// ShowsIn reports whether the banner belongs on the given section page.
// A nil/empty/"all" section banner shows everywhere; when the page has no
// section (the front page), only such global banners match.
func (b Banner) ShowsIn(section string) bool {
	global := b.Section == nil || *b.Section == "" || *b.Section == SectionAll
	if section == "" {
		return global
	}
	return global || *b.Section == section
}

// ForPlacement filters candidates down to active banners of the requested
// type that belong on the section page, ordered by display_order.
func ForPlacement(candidates []Banner, bannerType, section string) []Banner {
	out := make([]Banner, 0, len(candidates))
	for _, b := range candidates {
		if !b.Active || b.BannerType != bannerType {
			continue
		}
		if b.ShowsIn(section) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
