package admin

import (
	"net/http"
	"strconv"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type UserWithRoles struct {
	ID    uint          `json:"id"`
	Email string        `json:"email"`
	Name  string        `json:"name"`
	Roles []access.Role `json:"roles"`
}

// GET /admin/users — every user that holds at least one role, with the full
// role set attached. Mirrors the user-management tab's view.
func ListUsersWithRoles(c *gin.Context) {
	var roleRows []users.UserRole
	if err := database.DB.Order("user_id").Find(&roleRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roles"})
		return
	}

	byUser := map[uint][]access.Role{}
	order := []uint{}
	for _, r := range roleRows {
		if _, seen := byUser[r.UserID]; !seen {
			order = append(order, r.UserID)
		}
		byUser[r.UserID] = append(byUser[r.UserID], r.Role)
	}

	out := make([]UserWithRoles, 0, len(order))
	for _, id := range order {
		var u users.User
		if err := database.DB.First(&u, id).Error; err != nil {
			// role row pointing at a vanished user; skip it
			continue
		}
		out = append(out, UserWithRoles{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Roles: byUser[id],
		})
	}

	c.JSON(http.StatusOK, out)
}

type UserDetailsBody struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
}

// POST /admin/user-details {"user_ids": [...]} — batch-resolves profile
// details for a list of user ids. Unknown ids are skipped, not errors.
func GetUserDetails(c *gin.Context) {
	var body struct {
		UserIDs []uint `json:"user_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_ids array required"})
		return
	}

	details := map[string]UserDetailsBody{}
	for _, id := range body.UserIDs {
		var u users.User
		if err := database.DB.First(&u, id).Error; err != nil {
			continue
		}
		details[strconv.FormatUint(uint64(u.ID), 10)] = UserDetailsBody{
			Email:     u.Email,
			FirstName: u.Name,
			LastName:  u.Lastname,
			Mobile:    u.Tel,
		}
	}

	c.JSON(http.StatusOK, gin.H{"userDetails": details})
}

// POST /admin/users/:id/roles {"role": "..."}
func GrantRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !access.ValidRole(body.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	var u users.User
	if err := database.DB.First(&u, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := users.GrantRole(database.DB, uint(userID), access.Role(body.Role)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role added successfully"})
}

// DELETE /admin/users/:id/roles/:role
func RevokeRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	role := c.Param("role")
	if !access.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	if err := users.RevokeRole(database.DB, uint(userID), access.Role(role)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role removed successfully"})
}
