package articles

import (
	"net/http"
	"time"

	"toadtoe-api/database"
	"toadtoe-api/internal/app/http/middleware"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/articles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func viewerFrom(c *gin.Context) access.Viewer {
	if c.GetUint("user_id") == 0 {
		return access.Anonymous()
	}
	// Role-fetch failures yield the empty set: the viewer is treated as
	// holding no elevated roles.
	return access.Authenticated(middleware.ViewerRoles(c))
}

// GET /articles?section=...&limit=...
func ListArticles(c *gin.Context) {
	q := articles.VisibleQuery(database.DB, time.Now())

	if section := c.Query("section"); section != "" {
		if !articles.ValidSection(section) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		q = q.Where("section = ?", section)
	}

	limit := 50
	var rows []articles.Article
	err := q.Order("published_at DESC NULLS LAST").Limit(limit).Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	out := make([]CardDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, toCardDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// GET /sections
func ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": articles.Sections})
}

// GET /articles/:slug
//
// Applies the paywall policy: the response always carries the card fields,
// plus either the full body or a preview with the matching prompt. A
// successful read bumps views_count (fire-and-forget).
func GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var a articles.Article
	err := articles.VisibleQuery(database.DB, time.Now()).
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	decision := access.Decide(a.Type(), viewerFrom(c), NewCookieCounter(c))

	database.DB.Model(&articles.Article{}).Where("id = ?", a.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	a.ViewsCount++

	c.JSON(http.StatusOK, toDetailDTO(a, decision))
}
