// Package protocol defines the typed envelopes exchanged over the signal
// websocket. Every inbound event and outbound broadcast is a tagged JSON
// message; signaling payloads (SDP, ICE candidates) stay opaque.
package protocol

import (
	"encoding/json"

	"github.com/pragmr/vorko/internal/domain"
)

// Inbound event types. Media-scoped types are built per kind, e.g.
// "start-screen", "subscribe-audio", "video-offer".
const (
	TypeJoin                  = "join"
	TypeMove                  = "move"
	TypePing                  = "ping"
	TypeWave                  = "wave"
	TypeSendMessage           = "send-message"
	TypeSendDirectMessage     = "send-direct-message"
	TypeViewerStartedWatching = "viewer-started-watching"
	TypeViewerStoppedWatching = "viewer-stopped-watching"
)

// Outbound event types.
const (
	TypeUserJoined      = "user-joined"
	TypeUserLeft        = "user-left"
	TypeUserMoved       = "user-moved"
	TypePresenceChanged = "presence-changed"
	TypeRoomUsers       = "room-users"
	TypeWatchersUpdated = "watchers-updated"
	TypeWaveReceived    = "wave-received"
	TypeNewMessage      = "new-message"
	TypeNewDirect       = "new-direct-message"
	TypePong            = "pong"
	TypeError           = "error"
)

// SignalPhase is one step of the offer/answer/ICE handshake.
type SignalPhase string

const (
	PhaseOffer  SignalPhase = "offer"
	PhaseAnswer SignalPhase = "answer"
	PhaseICE    SignalPhase = "ice"
)

// Per-kind type names.

func StartType(k domain.MediaKind) string       { return "start-" + string(k) }
func StopType(k domain.MediaKind) string        { return "stop-" + string(k) }
func SubscribeType(k domain.MediaKind) string   { return "subscribe-" + string(k) }
func UnsubscribeType(k domain.MediaKind) string { return "unsubscribe-" + string(k) }

func StartedType(k domain.MediaKind) string { return string(k) + "-started" }
func StoppedType(k domain.MediaKind) string { return string(k) + "-stopped" }
func ActiveType(k domain.MediaKind) string  { return string(k) + "-active" }

// SubscribeNoticeType names the point-to-point "<kind>-subscribe" and
// "<kind>-unsubscribe" notifications to a publisher.
func SubscribeNoticeType(k domain.MediaKind) string   { return string(k) + "-subscribe" }
func UnsubscribeNoticeType(k domain.MediaKind) string { return string(k) + "-unsubscribe" }

// SignalType names both directions of a handshake phase, e.g. "screen-offer".
func SignalType(k domain.MediaKind, p SignalPhase) string {
	return string(k) + "-" + string(p)
}

// Envelope carries the discriminator only; handlers re-unmarshal the
// full payload once the type is known.
type Envelope struct {
	Type string `json:"type"`
}

// Inbound payloads.

type JoinPayload struct {
	Room     domain.RoomName      `json:"room"`
	Position domain.Position      `json:"position"`
	Presence domain.PresenceState `json:"presence,omitempty"`
	Avatar   string               `json:"avatar,omitempty"`
}

type MovePayload struct {
	Position domain.Position      `json:"position"`
	Room     domain.RoomName      `json:"room,omitempty"`
	Presence domain.PresenceState `json:"presence,omitempty"`
}

type SubscribePayload struct {
	PublisherID domain.SessionID `json:"publisherId"`
}

type SignalPayload struct {
	To      domain.SessionID `json:"to"`
	Payload json.RawMessage  `json:"payload"`
}

type WavePayload struct {
	To domain.SessionID `json:"to"`
}

type SendMessagePayload struct {
	Message string `json:"message"`
}

type SendDirectPayload struct {
	ToAccountID domain.AccountID `json:"toUserId"`
	Message     string           `json:"message"`
}
