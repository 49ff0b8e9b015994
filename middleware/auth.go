package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	profileRepo "glowdesk/database/repository/profile"
	"glowdesk/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the profile ID in
// the request context.
func JWTAuthMiddleware(profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		profileID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || profileID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// The token subject must still resolve to a stored profile.
		if _, err := profiles.GetByID(c.Request.Context(), profileID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("profileID", profileID)
		c.Next()
	}
}

// ProfileID retrieves the authenticated profile ID from the context.
func ProfileID(c *gin.Context) string {
	v, _ := c.Get("profileID")
	id, _ := v.(string)
	return id
}
