package articles

import (
	"net/http"
	"time"

	"toadtoe-api/database"
	"toadtoe-api/internal/app/http/middleware"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/articles"
	"toadtoe-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleRequest struct {
	Title            string     `json:"title" binding:"required"`
	Slug             string     `json:"slug"`
	Excerpt          string     `json:"excerpt" binding:"required"`
	Content          string     `json:"content" binding:"required"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	Section          string     `json:"section" binding:"required"`
	ArticleType      string     `json:"article_type"`
	Status           string     `json:"status"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	IsSponsored      bool       `json:"is_sponsored"`
}

func (r *ArticleRequest) validate() string {
	if !articles.ValidSection(r.Section) {
		return "Unknown section"
	}
	if r.ArticleType == "" {
		r.ArticleType = string(access.ArticleFree)
	}
	if !articles.ValidType(r.ArticleType) {
		return "article_type must be free or paid"
	}
	if r.Status == "" {
		r.Status = articles.StatusDraft
	}
	if !articles.ValidStatus(r.Status) {
		return "status must be draft, published or scheduled"
	}
	if r.Status == articles.StatusScheduled && r.ScheduledAt == nil {
		return "scheduled articles need scheduled_at"
	}
	return ""
}

// canEdit: articles are mutated only by their author or an admin.
func canEdit(c *gin.Context, a articles.Article) bool {
	if c.GetUint("user_id") == a.AuthorID {
		return true
	}
	return middleware.ViewerRoles(c).Has(access.RoleAdmin)
}

// GET /dashboard/articles
func ListDashboardArticles(c *gin.Context) {
	var rows []articles.Article
	err := database.DB.Order("created_at DESC").Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /dashboard/articles
func CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	userID := c.GetUint("user_id")

	base := req.Slug
	if base == "" {
		base = articles.MakeSlug(req.Title)
	}
	slug, err := articles.EnsureUniqueSlug(database.DB, base)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
		return
	}

	a := articles.Article{
		Slug:             slug,
		Title:            req.Title,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Section:          req.Section,
		ArticleType:      req.ArticleType,
		Status:           req.Status,
		ScheduledAt:      req.ScheduledAt,
		IsSponsored:      req.IsSponsored,
		AuthorID:         userID,
	}

	var author users.User
	if err := database.DB.First(&author, userID).Error; err == nil {
		name := author.Name
		if name != "" {
			a.AuthorName = &name
		}
	}

	if a.Status == articles.StatusPublished {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := database.DB.Create(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, a)
}

// PUT /dashboard/articles/:id
func UpdateArticle(c *gin.Context) {
	id := c.Param("id")

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a articles.Article
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}
		if !canEdit(c, a) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the author or an admin may edit this article"})
			return nil
		}

		wasPublished := a.Status == articles.StatusPublished

		a.Title = req.Title
		a.Excerpt = req.Excerpt
		a.Content = req.Content
		a.FeaturedImageURL = req.FeaturedImageURL
		a.Section = req.Section
		a.ArticleType = req.ArticleType
		a.Status = req.Status
		a.ScheduledAt = req.ScheduledAt
		a.IsSponsored = req.IsSponsored

		if req.Slug != "" && req.Slug != a.Slug {
			slug, err := articles.EnsureUniqueSlug(tx, req.Slug)
			if err != nil {
				return err
			}
			a.Slug = slug
		}

		if a.Status == articles.StatusPublished && !wasPublished {
			now := time.Now()
			a.PublishedAt = &now
		}

		if err := tx.Save(&a).Error; err != nil {
			return err
		}

		c.JSON(http.StatusOK, a)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
	}
}

// DELETE /dashboard/articles/:id
func DeleteArticle(c *gin.Context) {
	id := c.Param("id")

	var a articles.Article
	if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if !canEdit(c, a) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author or an admin may delete this article"})
		return
	}

	if err := database.DB.Delete(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}
