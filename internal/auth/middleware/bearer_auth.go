package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/birqadam/volunteer-backend/internal/auth"
	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/logutils"
)

// BearerAuthMiddleware validates bearer tokens and extracts user info
func BearerAuthMiddleware(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logutils.FromContext(c.Request.Context()).WithError(err).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		auth.SetIdentity(c, id)
		c.Next()
	}
}

// HeaderAuthMiddleware trusts X-User-Id / X-User-Email as the identity.
// Use this ONLY for development/testing.
func HeaderAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-Id header"})
			return
		}

		auth.SetIdentity(c, authdomain.Identity{
			UID:   uid,
			Email: strings.TrimSpace(c.GetHeader("X-User-Email")),
		})
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
