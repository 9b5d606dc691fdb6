package middleware

import (
	"net/http"
	"strings"

	"toadtoe-api/config"
	"toadtoe-api/database"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// Unauthorized dashboard visits go back to the sign-in screen, never an error
// page; API clients get the status code instead.
func denyToSignIn(c *gin.Context, status int) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, config.SIGN_IN_URL)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": "Access denied"})
}

// RequireAnyRole gates a route group to viewers holding at least one of the
// given roles. Must run after OptionalAuth or AuthMiddleware. Roles come from
// the database on every request; a failed role fetch counts as holding no
// roles (fail closed). The resolved set is stored under "roles" for handlers.
func RequireAnyRole(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			denyToSignIn(c, http.StatusUnauthorized)
			return
		}

		set, err := users.ResolveRoles(database.DB, userID)
		if err != nil {
			denyToSignIn(c, http.StatusForbidden)
			return
		}

		if !set.HasAny(roles...) {
			denyToSignIn(c, http.StatusForbidden)
			return
		}

		c.Set("roles", set)
		c.Next()
	}
}

// ViewerRoles returns the role set stashed by RequireAnyRole, or resolves it
// for routes that allow any authenticated viewer. Errors yield the empty set.
func ViewerRoles(c *gin.Context) access.RoleSet {
	if v, ok := c.Get("roles"); ok {
		if set, ok := v.(access.RoleSet); ok {
			return set
		}
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		return nil
	}
	set, err := users.ResolveRoles(database.DB, userID)
	if err != nil {
		return nil
	}
	return set
}
