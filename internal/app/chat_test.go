package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragmr/vorko/internal/domain"
)

func TestChatRoomHistoryCapped(t *testing.T) {
	c := NewMemoryChatLog(3)
	for i := 0; i < 5; i++ {
		c.AppendRoom("lobby", domain.ChatMessage{
			Message:   fmt.Sprintf("m%d", i),
			Timestamp: time.Now(),
		})
	}

	got := c.RoomHistory("lobby", 0)
	require.Len(t, got, 3)
	assert.Equal(t, "m2", got[0].Message)
	assert.Equal(t, "m4", got[2].Message)
}

func TestChatRoomHistoryLimit(t *testing.T) {
	c := NewMemoryChatLog(10)
	for i := 0; i < 4; i++ {
		c.AppendRoom("lobby", domain.ChatMessage{Message: fmt.Sprintf("m%d", i)})
	}

	got := c.RoomHistory("lobby", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "m3", got[1].Message)

	assert.Empty(t, c.RoomHistory("empty", 10))
}

func TestChatDirectHistorySymmetric(t *testing.T) {
	c := NewMemoryChatLog(10)
	c.AppendDirect(domain.DirectMessage{FromAccountID: "a", ToAccountID: "b", Message: "hi"})
	c.AppendDirect(domain.DirectMessage{FromAccountID: "b", ToAccountID: "a", Message: "yo"})

	forward := c.DirectHistory("a", "b", 0)
	backward := c.DirectHistory("b", "a", 0)
	require.Len(t, forward, 2)
	assert.Equal(t, forward, backward)
}
