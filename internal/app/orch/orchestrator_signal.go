package orch

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// Relay forwards an offer/answer/ICE payload verbatim to the target
// session. Unknown or disconnected targets are dropped silently; the
// sender gets no error (fire-and-forget).
func (o *Orchestrator) Relay(from, to domain.SessionID, kind domain.MediaKind, phase protocol.SignalPhase, payload json.RawMessage) {
	if _, ok := o.Registry.Conn(to); !ok {
		log.Debug().Str("module", "orch").Str("to", string(to)).Str("kind", string(kind)).Str("phase", string(phase)).Msg("signal target gone, dropped")
		return
	}
	o.send(to, protocol.SignalNotice{
		Type:    protocol.SignalType(kind, phase),
		From:    from,
		Payload: payload,
	})
}

// Wave delivers a point-to-point wave unless the recipient is on dnd.
func (o *Orchestrator) Wave(from, to domain.SessionID) {
	sender, ok := o.Registry.Snapshot(from)
	if !ok {
		return
	}
	recipient, ok := o.Registry.Snapshot(to)
	if !ok {
		return
	}
	if recipient.Presence == domain.PresenceDoNotDisturb {
		return
	}
	o.send(to, protocol.WaveReceived{
		Type: protocol.TypeWaveReceived,
		From: protocol.Participant{ID: sender.ID, Name: sender.Name, Avatar: sender.Avatar},
	})
}

// SendRoomMessage appends to the room history and broadcasts.
func (o *Orchestrator) SendRoomMessage(sid domain.SessionID, text string) {
	sess, ok := o.Registry.Snapshot(sid)
	if !ok || text == "" {
		return
	}
	msg := domain.ChatMessage{
		ID:        sess.ID,
		AccountID: sess.AccountID,
		Name:      sess.Name,
		Avatar:    sess.Avatar,
		Room:      sess.Room,
		Message:   text,
		Timestamp: time.Now(),
	}
	if o.Chat != nil {
		o.Chat.AppendRoom(sess.Room, msg)
	}
	o.broadcastRoom(sess.Room, protocol.NewMessage{Type: protocol.TypeNewMessage, ChatMessage: msg})
}

// SendDirectMessage appends to the conversation history and delivers to
// every session of the recipient account, echoing to the sender's other
// sessions for multi-tab consistency.
func (o *Orchestrator) SendDirectMessage(sid domain.SessionID, to domain.AccountID, text string) {
	sender, ok := o.Registry.Snapshot(sid)
	if !ok || to == "" || text == "" {
		return
	}
	msg := domain.DirectMessage{
		FromSessionID: sender.ID,
		FromAccountID: sender.AccountID,
		FromName:      sender.Name,
		FromAvatar:    sender.Avatar,
		ToAccountID:   to,
		Message:       text,
		Timestamp:     time.Now(),
	}
	if o.Chat != nil {
		o.Chat.AppendDirect(msg)
	}
	event := protocol.NewDirectMessage{Type: protocol.TypeNewDirect, DirectMessage: msg}
	for _, target := range o.Registry.SessionsByAccount(to) {
		o.send(target, event)
	}
	if to != sender.AccountID {
		for _, target := range o.Registry.SessionsByAccount(sender.AccountID) {
			o.send(target, event)
		}
	}
}
