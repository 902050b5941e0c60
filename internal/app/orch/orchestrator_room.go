package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/core"
	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// Join registers the session, announces it to the room and sends the
// joiner the current roster plus the active-publisher snapshots.
func (o *Orchestrator) Join(sess *domain.Session, conn core.SignalConnection) {
	o.Registry.Put(sess, conn)
	log.Info().Str("module", "orch").Str("sid", string(sess.ID)).Str("room", string(sess.Room)).Msg("join")

	o.broadcastRoom(sess.Room, protocol.UserJoined{Type: protocol.TypeUserJoined, Session: *sess})
	o.sendRoomSync(sess.ID, sess.Room)
}

// sendRoomSync sends the roster (excluding the receiver) and the three
// per-kind publisher snapshots to one session entering a room.
func (o *Orchestrator) sendRoomSync(sid domain.SessionID, room domain.RoomName) {
	all := o.Registry.ListByRoom(room)
	users := make([]domain.Session, 0, len(all))
	for _, s := range all {
		if s.ID != sid {
			users = append(users, s)
		}
	}
	o.send(sid, protocol.RoomUsers{Type: protocol.TypeRoomUsers, Users: users})

	for _, tr := range o.trackers() {
		o.send(sid, protocol.MediaActive{
			Type:         protocol.ActiveType(tr.Kind()),
			PublisherIDs: tr.ActiveInRoom(room),
		})
	}
}

// Move updates position and, optionally, room and presence. A move to
// the same room always re-broadcasts "user-moved" (receivers are
// idempotent); a room change runs the transition with media replay.
func (o *Orchestrator) Move(sid domain.SessionID, pos domain.Position, newRoom domain.RoomName, newPresence domain.PresenceState) {
	old, ok := o.Registry.Snapshot(sid)
	if !ok {
		return
	}
	if newRoom == "" {
		newRoom = old.Room
	}

	cur, ok := o.Registry.Update(sid, func(s *domain.Session) {
		s.Position = pos
		s.Room = newRoom
		if newPresence.Valid() {
			s.Presence = newPresence
		}
	})
	if !ok {
		return
	}

	if newRoom != old.Room {
		o.transition(cur, old.Room)
		return
	}

	o.broadcastRoom(cur.Room, protocol.UserMoved{
		Type:     protocol.TypeUserMoved,
		ID:       cur.ID,
		Position: cur.Position,
		Room:     cur.Room,
		Presence: cur.Presence,
	})
	if cur.Presence != old.Presence {
		o.broadcastRoom(cur.Room, protocol.PresenceChanged{
			Type:     protocol.TypePresenceChanged,
			ID:       cur.ID,
			Presence: cur.Presence,
		})
	}
}

// transition announces the room change to both rooms and replays the
// session's active publications into the new room, resetting watchers.
func (o *Orchestrator) transition(cur domain.Session, oldRoom domain.RoomName) {
	log.Info().Str("module", "orch").Str("sid", string(cur.ID)).Str("from", string(oldRoom)).Str("to", string(cur.Room)).Msg("room transition")

	o.broadcastRoom(oldRoom, protocol.UserLeft{Type: protocol.TypeUserLeft, ID: cur.ID})
	o.broadcastRoom(cur.Room, protocol.UserJoined{Type: protocol.TypeUserJoined, Session: cur})
	o.sendRoomSync(cur.ID, cur.Room)

	for _, tr := range o.trackers() {
		if !tr.SetRoom(cur.ID, cur.Room) {
			continue
		}
		o.broadcastRoom(oldRoom, protocol.MediaStopped{
			Type:        protocol.StoppedType(tr.Kind()),
			PublisherID: cur.ID,
		})
		o.broadcastRoom(cur.Room, protocol.MediaStarted{
			Type:        protocol.StartedType(tr.Kind()),
			PublisherID: cur.ID,
			Name:        cur.Name,
			Avatar:      cur.Avatar,
		})
	}

	if o.Watchers.Has(cur.ID) {
		o.Watchers.Reset(cur.ID)
		o.emitWatchers(cur.ID)
	}
}
