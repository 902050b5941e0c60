package signal

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// handleMedia resolves the per-kind event families: "start-screen",
// "subscribe-audio", "video-offer" and so on. Returns false when the
// type does not belong to any family.
func (ctl *Controller) handleMedia(sid domain.SessionID, conn *wsConn, typ string, data []byte) bool {
	for _, kind := range domain.Kinds() {
		switch typ {
		case protocol.StartType(kind):
			ctl.Orch.StartMedia(sid, kind)
			return true
		case protocol.StopType(kind):
			ctl.Orch.StopMedia(sid, kind)
			return true
		case protocol.SubscribeType(kind):
			ctl.handleSubscribe(sid, conn, kind, data)
			return true
		case protocol.UnsubscribeType(kind):
			ctl.handleUnsubscribe(sid, conn, kind, data)
			return true
		}
		if rest, ok := strings.CutPrefix(typ, string(kind)+"-"); ok {
			switch protocol.SignalPhase(rest) {
			case protocol.PhaseOffer, protocol.PhaseAnswer, protocol.PhaseICE:
				ctl.handleRelay(sid, conn, kind, protocol.SignalPhase(rest), data)
				return true
			}
		}
	}
	return false
}

func (ctl *Controller) handleSubscribe(sid domain.SessionID, conn *wsConn, kind domain.MediaKind, data []byte) {
	var p protocol.SubscribePayload
	if err := json.Unmarshal(data, &p); err != nil || p.PublisherID == "" {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if !ctl.Orch.Subscribe(sid, p.PublisherID, kind) {
		// Out of range, wrong room or publisher already gone. The
		// client retries on the next proximity tick, so no error frame.
		log.Debug().Str("module", "signal").
			Str("viewer", string(sid)).
			Str("publisher", string(p.PublisherID)).
			Str("kind", string(kind)).
			Msg("subscribe refused")
	}
}

func (ctl *Controller) handleUnsubscribe(sid domain.SessionID, conn *wsConn, kind domain.MediaKind, data []byte) {
	var p protocol.SubscribePayload
	if err := json.Unmarshal(data, &p); err != nil || p.PublisherID == "" {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	ctl.Orch.Unsubscribe(sid, p.PublisherID, kind)
}

func (ctl *Controller) handleWatching(sid domain.SessionID, conn *wsConn, data []byte, started bool) {
	var p protocol.SubscribePayload
	if err := json.Unmarshal(data, &p); err != nil || p.PublisherID == "" {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if started {
		ctl.Orch.ViewerStartedWatching(sid, p.PublisherID)
	} else {
		ctl.Orch.ViewerStoppedWatching(sid, p.PublisherID)
	}
}
