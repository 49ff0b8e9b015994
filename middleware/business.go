package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	businessRepo "glowdesk/database/repository/business"
)

// BusinessMiddleware resolves the authenticated profile's business and stores
// its ID in the request context. Requests from profiles that have not
// finished the business step of onboarding are rejected.
func BusinessMiddleware(businesses businessRepo.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := ProfileID(c)
		if profileID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		biz, err := businesses.GetByOwner(c.Request.Context(), profileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve business"})
			return
		}
		if biz == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no business registered for this account"})
			return
		}

		c.Set("businessID", biz.ID)
		c.Next()
	}
}

// BusinessID retrieves the resolved business ID from the context.
func BusinessID(c *gin.Context) string {
	v, _ := c.Get("businessID")
	id, _ := v.(string)
	return id
}
