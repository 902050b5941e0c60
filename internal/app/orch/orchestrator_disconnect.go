package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// Disconnect runs the full teardown cascade for a terminated session:
// room leave, stop of every publication, watcher-set removal for owned
// publications, and removal as a viewer from all other watcher sets.
// Runs entirely within the disconnect event so no other session can
// observe a publisher or watcher mid-teardown.
func (o *Orchestrator) Disconnect(sid domain.SessionID) {
	sess, known := o.Registry.Snapshot(sid)
	if known {
		o.Registry.Remove(sid)
		o.broadcastRoom(sess.Room, protocol.UserLeft{Type: protocol.TypeUserLeft, ID: sid})
	}

	for _, tr := range o.trackers() {
		pub, ok := tr.Stop(sid)
		if !ok {
			continue
		}
		if tr.Kind() == domain.MediaScreen {
			o.Watchers.Clear(sid)
		}
		o.broadcastRoom(pub.Room, protocol.MediaStopped{
			Type:        protocol.StoppedType(tr.Kind()),
			PublisherID: sid,
		})
	}

	for _, publisher := range o.Watchers.RemoveViewerEverywhere(sid) {
		o.emitWatchers(publisher)
	}

	log.Info().Str("module", "orch").Str("sid", string(sid)).Bool("had_session", known).Msg("disconnected")
}
