// Package domain contains entities without logic, just meta-data.
package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	MaxNameLen     = 64
	DefaultAvatar  = "👤"
	MaxRoomNameLen = 64
)

var (
	ErrNameEmpty   = errors.New("name empty")
	ErrNameTooLong = errors.New("name too long")
)

// SessionID identifies one live connection. AccountID is the stable
// identity behind it; one account may hold several sessions (multi-tab).
type (
	SessionID string
	AccountID string
)

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

type PresenceState string

const (
	PresenceAvailable    PresenceState = "available"
	PresenceBusy         PresenceState = "busy"
	PresenceDoNotDisturb PresenceState = "dnd"
)

func (p PresenceState) Valid() bool {
	switch p {
	case PresenceAvailable, PresenceBusy, PresenceDoNotDisturb:
		return true
	}
	return false
}

// Position is a grid tile coordinate inside a room.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Session is one live connection's presence state. Position, Room and
// Presence are mutated only on behalf of the owning connection.
type Session struct {
	ID        SessionID     `json:"id"`
	AccountID AccountID     `json:"userId"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Position  Position      `json:"position"`
	Room      RoomName      `json:"room"`
	Presence  PresenceState `json:"presence"`
}

// NewSession avoids raw struct literals in adapters and fills defaults.
func NewSession(id SessionID, account AccountID, name, avatar string, pos Position, room RoomName, presence PresenceState) (*Session, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return nil, ErrNameTooLong
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}
	if !presence.Valid() {
		presence = PresenceAvailable
	}
	return &Session{
		ID:        id,
		AccountID: account,
		Name:      name,
		Avatar:    avatar,
		Position:  pos,
		Room:      room,
		Presence:  presence,
	}, nil
}
