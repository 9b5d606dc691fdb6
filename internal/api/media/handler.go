package media

import (
	"net/http"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/media"
	"toadtoe-api/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

// POST /uploads — multipart image upload for featured images and banner
// creatives. Responds with the public URL the client embeds.
func Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	path, publicURL, err := storage.SaveUpload(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img := media.Image{
		Path:       path,
		PublicURL:  publicURL,
		UploadedBy: c.GetUint("user_id"),
	}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": img.ID, "url": publicURL})
}
