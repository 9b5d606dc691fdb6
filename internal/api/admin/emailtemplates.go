package admin

import (
	"net/http"

	"toadtoe-api/config"
	"toadtoe-api/database"
	"toadtoe-api/internal/domain/emailtpl"
	"toadtoe-api/internal/infra/email"

	"github.com/gin-gonic/gin"
)

// GET /admin/email-templates
func ListEmailTemplates(c *gin.Context) {
	var rows []emailtpl.EmailTemplate
	if err := database.DB.Order("key").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /admin/email-templates/:key
func UpdateEmailTemplate(c *gin.Context) {
	var tpl emailtpl.EmailTemplate
	if err := database.DB.Where("key = ?", c.Param("key")).First(&tpl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var req struct {
		Subject string `json:"subject" binding:"required"`
		HTML    string `json:"html" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl.Subject = req.Subject
	tpl.HTML = req.HTML
	if err := database.DB.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// POST /admin/email-templates/:key/test {"email": "..."}
// Renders the template with sample values and sends it to the given address.
func SendTestEmail(c *gin.Context) {
	var tpl emailtpl.EmailTemplate
	if err := database.DB.Where("key = ?", c.Param("key")).First(&tpl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required"})
		return
	}

	subject, html := tpl.Render(map[string]string{
		"name":     "Test Reader",
		"greeting": "Hello Test Reader",
		"link":     config.APP_URL,
		"token":    "123456",
	})

	if err := email.Send(req.Email, "[TEST] "+subject, html); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test email sent"})
}

// POST /admin/send-introduction {"email": "...", "name": "..."}
// Manual trigger for the introduction mailing.
func SendIntroductionEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required"})
		return
	}

	var tpl emailtpl.EmailTemplate
	if err := database.DB.Where("key = ?", emailtpl.KeyIntroduction).First(&tpl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	greeting := "Hello"
	if req.Name != "" {
		greeting = "Hello " + req.Name
	}

	subject, html := tpl.Render(map[string]string{
		"name":     req.Name,
		"greeting": greeting,
		"link":     config.APP_URL,
	})

	if err := email.Send(req.Email, subject, html); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Introduction email sent"})
}
