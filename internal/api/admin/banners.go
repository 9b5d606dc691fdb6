package admin

import (
	"net/http"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/articles"
	"toadtoe-api/internal/domain/banners"

	"github.com/gin-gonic/gin"
)

type BannerRequest struct {
	Title        string  `json:"title" binding:"required"`
	BannerType   string  `json:"banner_type" binding:"required"`
	ImageURL     string  `json:"image_url" binding:"required"`
	LinkURL      string  `json:"link_url"`
	Section      *string `json:"section"`
	Active       *bool   `json:"active"`
	DisplayOrder int     `json:"display_order"`
}

func (r BannerRequest) validate() string {
	if !banners.ValidType(r.BannerType) {
		return "Unknown banner type"
	}
	if r.Section != nil && *r.Section != "" && *r.Section != banners.SectionAll &&
		!articles.ValidSection(*r.Section) {
		return "Unknown section"
	}
	return ""
}

// GET /admin/banners — all banners for the management tab, by display order.
func ListBanners(c *gin.Context) {
	var rows []banners.Banner
	err := database.DB.Order("display_order ASC").Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /admin/banners
func CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	b := banners.Banner{
		Title:        req.Title,
		BannerType:   req.BannerType,
		ImageURL:     req.ImageURL,
		LinkURL:      req.LinkURL,
		Section:      req.Section,
		Active:       active,
		DisplayOrder: req.DisplayOrder,
	}

	if err := database.DB.Create(&b).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /admin/banners/:id
func UpdateBanner(c *gin.Context) {
	var b banners.Banner
	if err := database.DB.First(&b, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	b.Title = req.Title
	b.BannerType = req.BannerType
	b.ImageURL = req.ImageURL
	b.LinkURL = req.LinkURL
	b.Section = req.Section
	b.DisplayOrder = req.DisplayOrder
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := database.DB.Save(&b).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /admin/banners/:id
func DeleteBanner(c *gin.Context) {
	res := database.DB.Delete(&banners.Banner{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
