package app

import (
	"sort"
	"strings"
	"sync"

	"github.com/pragmr/vorko/internal/domain"
)

// ChatLog is the boundary to chat-history persistence. The durable
// store is an external collaborator; the in-process implementation
// keeps a capped append-only window per conversation.
type ChatLog interface {
	AppendRoom(room domain.RoomName, m domain.ChatMessage)
	RoomHistory(room domain.RoomName, limit int) []domain.ChatMessage
	AppendDirect(m domain.DirectMessage)
	DirectHistory(a, b domain.AccountID, limit int) []domain.DirectMessage
}

type memoryChatLog struct {
	cap  int
	mu   sync.RWMutex
	room map[domain.RoomName][]domain.ChatMessage
	dm   map[string][]domain.DirectMessage
}

func NewMemoryChatLog(cap int) ChatLog {
	if cap <= 0 {
		cap = 500
	}
	return &memoryChatLog{
		cap:  cap,
		room: make(map[domain.RoomName][]domain.ChatMessage),
		dm:   make(map[string][]domain.DirectMessage),
	}
}

// conversationKey is order-independent so both directions share history.
func conversationKey(a, b domain.AccountID) string {
	pair := []string{string(a), string(b)}
	sort.Strings(pair)
	return strings.Join(pair, "__")
}

func (c *memoryChatLog) AppendRoom(room domain.RoomName, m domain.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := append(c.room[room], m)
	if len(list) > c.cap {
		list = list[len(list)-c.cap:]
	}
	c.room[room] = list
}

func (c *memoryChatLog) RoomHistory(room domain.RoomName, limit int) []domain.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return tail(c.room[room], limit)
}

func (c *memoryChatLog) AppendDirect(m domain.DirectMessage) {
	key := conversationKey(m.FromAccountID, m.ToAccountID)
	c.mu.Lock()
	defer c.mu.Unlock()
	list := append(c.dm[key], m)
	if len(list) > c.cap {
		list = list[len(list)-c.cap:]
	}
	c.dm[key] = list
}

func (c *memoryChatLog) DirectHistory(a, b domain.AccountID, limit int) []domain.DirectMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return tail(c.dm[conversationKey(a, b)], limit)
}

func tail[T any](list []T, limit int) []T {
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	out := make([]T, limit)
	copy(out, list[len(list)-limit:])
	return out
}
