package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// StartMedia upserts the publication for (sid, kind) and announces it
// to the session's room. Restart without a stop overwrites in place.
func (o *Orchestrator) StartMedia(sid domain.SessionID, kind domain.MediaKind) {
	sess, ok := o.Registry.Snapshot(sid)
	if !ok {
		return
	}
	tr := o.Tracker(kind)
	if tr == nil {
		return
	}
	tr.Start(sid, sess.Room)
	o.broadcastRoom(sess.Room, protocol.MediaStarted{
		Type:        protocol.StartedType(kind),
		PublisherID: sid,
		Name:        sess.Name,
		Avatar:      sess.Avatar,
	})

	// Screen publications carry a watcher list from the start.
	if kind == domain.MediaScreen {
		o.Watchers.Ensure(sid)
		o.emitWatchers(sid)
	}
}

// StopMedia removes the publication if present; silent no-op otherwise.
func (o *Orchestrator) StopMedia(sid domain.SessionID, kind domain.MediaKind) {
	tr := o.Tracker(kind)
	if tr == nil {
		return
	}
	pub, ok := tr.Stop(sid)
	if !ok {
		return
	}
	if kind == domain.MediaScreen {
		// The stopped broadcast already tells the room; no watcher event.
		o.Watchers.Clear(sid)
	}
	o.broadcastRoom(pub.Room, protocol.MediaStopped{
		Type:        protocol.StoppedType(kind),
		PublisherID: sid,
	})
}

// Subscribe is the gated step of a negotiation attempt: both sessions
// must exist, share a room, be within radius, and the publisher must
// hold a live publication of the kind. On success the publisher is
// notified and expected to begin the offer phase. Eligibility is not
// re-checked on later relayed messages; see Relay.
func (o *Orchestrator) Subscribe(viewer, publisher domain.SessionID, kind domain.MediaKind) bool {
	v, ok := o.Registry.Snapshot(viewer)
	if !ok {
		return false
	}
	p, ok := o.Registry.Snapshot(publisher)
	if !ok {
		return false
	}
	if !o.eligible(v, p) {
		log.Debug().Str("module", "orch").Str("viewer", string(viewer)).Str("publisher", string(publisher)).Msg("subscribe rejected by proximity gate")
		return false
	}
	tr := o.Tracker(kind)
	if tr == nil {
		return false
	}
	if _, live := tr.Get(publisher); !live {
		return false
	}
	o.send(publisher, protocol.SubscribeNotice{
		Type: protocol.SubscribeNoticeType(kind),
		From: viewer,
	})
	return true
}

// Unsubscribe is forwarded unconditionally so an out-of-range viewer
// can always tear down.
func (o *Orchestrator) Unsubscribe(viewer, publisher domain.SessionID, kind domain.MediaKind) {
	o.send(publisher, protocol.SubscribeNotice{
		Type: protocol.UnsubscribeNoticeType(kind),
		From: viewer,
	})
	if kind == domain.MediaScreen {
		if o.Watchers.Unsubscribe(publisher, viewer) {
			o.emitWatchers(publisher)
		}
	}
}

// ViewerStartedWatching records the viewer in the publisher's watcher
// set, under the same gate as Subscribe.
func (o *Orchestrator) ViewerStartedWatching(viewer, publisher domain.SessionID) {
	if _, live := o.Screen.Get(publisher); !live {
		return
	}
	v, ok := o.Registry.Snapshot(viewer)
	if !ok {
		return
	}
	p, ok := o.Registry.Snapshot(publisher)
	if !ok {
		return
	}
	if !o.eligible(v, p) {
		return
	}
	if o.Watchers.Subscribe(publisher, viewer) {
		o.emitWatchers(publisher)
	}
}

func (o *Orchestrator) ViewerStoppedWatching(viewer, publisher domain.SessionID) {
	if o.Watchers.Unsubscribe(publisher, viewer) {
		o.emitWatchers(publisher)
	}
}
