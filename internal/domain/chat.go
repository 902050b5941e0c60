package domain

import "time"

// ChatMessage is one room-scoped chat entry.
type ChatMessage struct {
	ID        SessionID `json:"id"`
	AccountID AccountID `json:"userId"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Room      RoomName  `json:"room"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DirectMessage is one account-to-account chat entry.
type DirectMessage struct {
	FromSessionID SessionID `json:"fromSocketId"`
	FromAccountID AccountID `json:"fromUserId"`
	FromName      string    `json:"fromName"`
	FromAvatar    string    `json:"fromAvatar"`
	ToAccountID   AccountID `json:"toUserId"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}
