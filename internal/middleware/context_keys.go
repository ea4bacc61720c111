package middleware

import (
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and related keys carry the authenticated principal through the
// request context. Handlers read them and pass identity into services as
// explicit parameters; services never touch the context values themselves.
const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
	userRolesKey = contextKey("userRoles")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserEmailFromContext retrieves the authenticated user's email.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, ok := c.Request.Context().Value(userEmailKey).(string)
	return email, ok && email != ""
}

// GetUserRolesFromContext retrieves the authenticated user's role names.
func GetUserRolesFromContext(c *gin.Context) []domain.Role {
	roles, _ := c.Request.Context().Value(userRolesKey).([]domain.Role)
	return roles
}

// HasRole reports whether the authenticated caller holds the role.
func HasRole(c *gin.Context, role domain.Role) bool {
	for _, r := range GetUserRolesFromContext(c) {
		if r == role {
			return true
		}
	}
	return false
}
