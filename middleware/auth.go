package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// auth cache (falling back to the database), and stores the user ID in the
// request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		hash := utils.HashToken(tokenString)

		// Fast path: the session cache.
		if userID, err := utils.GetAuthCacheClient().Get(c.Request.Context(), hash).Result(); err == nil && userID != "" {
			c.Set("userID", userID)
			c.Next()
			return
		}

		u, err := users.GetByTokenHash(c.Request.Context(), hash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}

		c.Set("userID", u.ID)
		c.Set("userRole", u.Role)
		c.Next()
	}
}

// AdminOnly allows the request through only for admin users. It must run
// after JWTAuthMiddleware.
func AdminOnly(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("userRole")
		if !ok {
			userID := c.GetString("userID")
			u, err := users.GetByID(c.Request.Context(), userID)
			if err != nil || u == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			role = u.Role
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
