package protocol

import (
	"encoding/json"

	"github.com/pragmr/vorko/internal/domain"
)

// Outbound events. Room-scoped unless stated otherwise.

// UserJoined mirrors the full session snapshot.
type UserJoined struct {
	Type string `json:"type"`
	domain.Session
}

type UserLeft struct {
	Type string           `json:"type"`
	ID   domain.SessionID `json:"id"`
}

type UserMoved struct {
	Type     string               `json:"type"`
	ID       domain.SessionID     `json:"id"`
	Position domain.Position      `json:"position"`
	Room     domain.RoomName      `json:"room"`
	Presence domain.PresenceState `json:"presence"`
}

type PresenceChanged struct {
	Type     string               `json:"type"`
	ID       domain.SessionID     `json:"id"`
	Presence domain.PresenceState `json:"presence"`
}

// RoomUsers is sent only to a session entering a room.
type RoomUsers struct {
	Type  string           `json:"type"`
	Users []domain.Session `json:"users"`
}

type MediaStarted struct {
	Type        string           `json:"type"`
	PublisherID domain.SessionID `json:"publisherId"`
	Name        string           `json:"name"`
	Avatar      string           `json:"avatar"`
}

type MediaStopped struct {
	Type        string           `json:"type"`
	PublisherID domain.SessionID `json:"publisherId"`
}

// MediaActive is the publisher roster snapshot sent only to a session
// entering a room.
type MediaActive struct {
	Type         string             `json:"type"`
	PublisherIDs []domain.SessionID `json:"publisherIds"`
}

type Participant struct {
	ID     domain.SessionID `json:"id"`
	Name   string           `json:"name"`
	Avatar string           `json:"avatar"`
}

type WatchersUpdated struct {
	Type        string           `json:"type"`
	PublisherID domain.SessionID `json:"publisherId"`
	Watchers    []Participant    `json:"watchers"`
}

// Point-to-point events.

type SubscribeNotice struct {
	Type string           `json:"type"`
	From domain.SessionID `json:"from"`
}

type SignalNotice struct {
	Type    string           `json:"type"`
	From    domain.SessionID `json:"from"`
	Payload json.RawMessage  `json:"payload"`
}

type WaveReceived struct {
	Type string      `json:"type"`
	From Participant `json:"from"`
}

type NewMessage struct {
	Type string `json:"type"`
	domain.ChatMessage
}

type NewDirectMessage struct {
	Type string `json:"type"`
	domain.DirectMessage
}

type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func Errorf(msg string) ErrorEvent {
	return ErrorEvent{Type: TypeError, Error: msg}
}
