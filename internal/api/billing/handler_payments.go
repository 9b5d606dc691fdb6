package billing

import (
	"net/http"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /payments — the signed-in reader's payment history.
func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var payments []billing.Payment
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
