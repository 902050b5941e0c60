package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pragmr/vorko/internal/auth"
)

const identityKey = "identity"

// BearerAuth verifies the Authorization header and stores the caller
// identity in the request context. Missing or invalid tokens abort 401.
func BearerAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth_required"})
			return
		}
		id, err := v.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func callerIdentity(c *gin.Context) auth.Identity {
	id, _ := c.MustGet(identityKey).(auth.Identity)
	return id
}
