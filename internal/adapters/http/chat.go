package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pragmr/vorko/internal/app"
	"github.com/pragmr/vorko/internal/domain"
)

const (
	defaultHistoryLimit = 200
	maxHistoryLimit     = 1000
)

func historyLimit(c *gin.Context) int {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit
}

// RoomHistory returns the newest messages of one room, oldest first.
func RoomHistory(chat app.ChatLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		room := domain.RoomName(c.Param("roomId"))
		if !room.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room"})
			return
		}
		msgs := chat.RoomHistory(room, historyLimit(c))
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	}
}

// DirectHistory returns the caller's conversation with one peer account.
func DirectHistory(chat app.ChatLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		peer := domain.AccountID(c.Param("peer"))
		if peer == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "peer is required"})
			return
		}
		caller := callerIdentity(c)
		msgs := chat.DirectHistory(caller.AccountID, peer, historyLimit(c))
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	}
}
