// Package orch coordinates the registries: room routing, media
// presence, proximity-gated subscriptions, signaling relay and the
// disconnect cascade. Every method is a synchronous in-memory step;
// only the gateway token path (outside this package) does I/O.
package orch

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/app"
	"github.com/pragmr/vorko/internal/core"
	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

type Orchestrator struct {
	Registry *app.Registry
	Screen   *app.Tracker
	Audio    *app.Tracker
	Video    *app.Tracker
	Watchers *app.WatcherRegistry
	Chat     app.ChatLog
	Radius   float64
}

func New(reg *app.Registry, watchers *app.WatcherRegistry, chat app.ChatLog, radius float64) *Orchestrator {
	if radius <= 0 {
		radius = core.DefaultProximityRadius
	}
	return &Orchestrator{
		Registry: reg,
		Screen:   app.NewTracker(domain.MediaScreen),
		Audio:    app.NewTracker(domain.MediaAudio),
		Video:    app.NewTracker(domain.MediaVideo),
		Watchers: watchers,
		Chat:     chat,
		Radius:   radius,
	}
}

func (o *Orchestrator) Tracker(kind domain.MediaKind) *app.Tracker {
	switch kind {
	case domain.MediaScreen:
		return o.Screen
	case domain.MediaAudio:
		return o.Audio
	case domain.MediaVideo:
		return o.Video
	}
	return nil
}

func (o *Orchestrator) trackers() []*app.Tracker {
	return []*app.Tracker{o.Screen, o.Audio, o.Video}
}

// eligible applies the proximity gate; same-room membership is checked
// here because the gate itself is room-agnostic.
func (o *Orchestrator) eligible(a, b domain.Session) bool {
	return a.Room == b.Room && core.Eligible(a.Position, b.Position, o.Radius)
}

// send marshals v and hands it to the session's transport. Sends are
// best-effort: a full or closed connection drops the frame.
func (o *Orchestrator) send(sid domain.SessionID, v any) {
	conn, ok := o.Registry.Conn(sid)
	if !ok || conn == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("marshal outbound")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sid)).Msg("frame dropped")
	}
}

// broadcastRoom fans v out to every session currently in the room.
func (o *Orchestrator) broadcastRoom(room domain.RoomName, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("marshal broadcast")
		return
	}
	for _, sess := range o.Registry.ListByRoom(room) {
		conn, ok := o.Registry.Conn(sess.ID)
		if !ok || conn == nil {
			continue
		}
		if err := conn.TrySend(core.Frame(b)); err != nil {
			log.Debug().Err(err).Str("module", "orch").Str("sid", string(sess.ID)).Msg("broadcast frame dropped")
		}
	}
}

// emitWatchers broadcasts the resolved watcher list for a publisher to
// its room. No-op when the publisher has no live screen publication.
func (o *Orchestrator) emitWatchers(publisher domain.SessionID) {
	pub, ok := o.Screen.Get(publisher)
	if !ok {
		return
	}
	ids := o.Watchers.Watchers(publisher)
	watchers := make([]protocol.Participant, 0, len(ids))
	for _, id := range ids {
		sess, ok := o.Registry.Snapshot(id)
		if !ok {
			continue
		}
		watchers = append(watchers, protocol.Participant{ID: sess.ID, Name: sess.Name, Avatar: sess.Avatar})
	}
	o.broadcastRoom(pub.Room, protocol.WatchersUpdated{
		Type:        protocol.TypeWatchersUpdated,
		PublisherID: publisher,
		Watchers:    watchers,
	})
}
