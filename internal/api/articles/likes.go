package articles

import (
	"net/http"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/articles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /articles/:slug/like — toggles the like for the signed-in reader.
func ToggleLike(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var a articles.Article
	if err := database.DB.First(&a, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	liked := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing articles.ArticleLike
		err := tx.Where("article_id = ? AND user_id = ?", a.ID, userID).First(&existing).Error

		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&articles.Article{}).Where("id = ?", a.ID).
				UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error
		}

		liked = true
		if err := tx.Create(&articles.ArticleLike{ArticleID: a.ID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&articles.Article{}).Where("id = ?", a.ID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
