package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/models"
	"ayursutra-server/internal/utils"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the session token into the current user.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, reason := bearerToken(c.GetHeader("Authorization"))
		if reason != "" {
			utils.Unauthorized(c, reason)
			return
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			return
		}

		c.Set(currentUserKey, claims.User())
		c.Next()
	}
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "Authorization header required"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.Contains(token, " ") {
		return "", "Invalid authorization header format"
	}
	return token, ""
}

// RoleAuthMiddleware lets through only the given roles.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			utils.InternalServerError(c, "Current user not found in context. AuthMiddleware might be missing.")
			return
		}

		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				c.Next()
				return
			}
		}
		utils.Forbidden(c, "You do not have permission to access this resource.")
	}
}

// GetCurrentUser returns the session identity set by AuthMiddleware.
func GetCurrentUser(c *gin.Context) (models.CurrentUser, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return models.CurrentUser{}, false
	}
	user, ok := v.(models.CurrentUser)
	return user, ok
}
