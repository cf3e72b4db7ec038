package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/auth"
	"gigwork_backend/internal/logger"
)

// AuthMiddleware rejects requests without a valid credential token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		setIdentity(c, claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware tags the identity when a valid token is present
// but lets anonymous requests through. Used for read endpoints when
// open reads are enabled.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseAuthHeader(c); ok {
			setIdentity(c, claims.UserID)
		}
		c.Next()
	}
}

func parseAuthHeader(c *gin.Context) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Accept both "Bearer <token>" and a bare token, matching what the
	// CLI client sends.
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, userID string) {
	c.Set("userID", userID)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
}

// GetUserID reads the acting identity from the gin context.
// Empty string means anonymous.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
