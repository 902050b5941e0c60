package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

func (ctl *Controller) handleWave(sid domain.SessionID, conn *wsConn, data []byte) {
	var p protocol.WavePayload
	if err := json.Unmarshal(data, &p); err != nil || p.To == "" {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	ctl.Orch.Wave(sid, p.To)
}

func (ctl *Controller) handleSendMessage(sid domain.SessionID, conn *wsConn, data []byte) {
	var p protocol.SendMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if p.Message == "" {
		ctl.sendJSON(conn, protocol.Errorf("empty message"))
		return
	}
	ctl.Orch.SendRoomMessage(sid, p.Message)
}

func (ctl *Controller) handleSendDirect(sid domain.SessionID, conn *wsConn, data []byte) {
	var p protocol.SendDirectPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad direct payload")
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if p.ToAccountID == "" || p.Message == "" {
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	ctl.Orch.SendDirectMessage(sid, p.ToAccountID, p.Message)
}
