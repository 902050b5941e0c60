package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pragmr/vorko/internal/gateway"
)

type tokenRequest struct {
	Room     string `json:"room" binding:"required"`
	Identity string `json:"identity"`
	Name     string `json:"name"`
}

// GatewayToken issues a media gateway access token for a validated room.
func GatewayToken(issuer *gateway.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room is required"})
			return
		}

		grant, aerr := issuer.Issue(callerIdentity(c), req.Room, req.Identity, req.Name)
		if aerr != nil {
			c.JSON(aerr.Status, gin.H{"error": aerr.Message, "code": aerr.Code})
			return
		}
		c.JSON(http.StatusOK, grant)
	}
}
