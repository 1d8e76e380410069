package middleware

import (
	"net/http"
	"strings"

	"lacquer/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin API. A request passes only with a
// bearer token that carries a valid signature AND whose hash is still
// registered in the auth cache, so revoked tokens fail even before expiry.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		live, err := utils.IsAuthTokenLive(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("adminID", adminID)
		c.Set("authToken", tokenString)
		c.Next()
	}
}
