package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

// handleRelay forwards one offer/answer/ICE frame to its addressee.
// The SDP or candidate body is never inspected here.
func (ctl *Controller) handleRelay(
	sid domain.SessionID,
	conn *wsConn,
	kind domain.MediaKind,
	phase protocol.SignalPhase,
	data []byte,
) {
	var p protocol.SignalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if p.To == "" || len(p.Payload) == 0 {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	ctl.Orch.Relay(sid, p.To, kind, phase, p.Payload)
}
