package banners

import (
	"net/http"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/banners"

	"github.com/gin-gonic/gin"
)

// GET /banners?type=hero&section=commodities
//
// Returns the active banners for one placement slot, ordered by
// display_order. No section means the front page: only globally scoped
// banners match.
func GetBannersForPlacement(c *gin.Context) {
	bannerType := c.Query("type")
	if !banners.ValidType(bannerType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown banner type"})
		return
	}

	var rows []banners.Banner
	err := database.DB.
		Where("banner_type = ? AND active = ?", bannerType, true).
		Order("display_order ASC").
		Find(&rows).Error
	if err != nil {
		// failed loads yield an empty slot, never a broken page
		c.JSON(http.StatusOK, []banners.Banner{})
		return
	}

	c.JSON(http.StatusOK, banners.ForPlacement(rows, bannerType, c.Query("section")))
}
