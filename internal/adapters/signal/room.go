package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

func (ctl *Controller) handleJoin(
	sid domain.SessionID,
	id auth.Identity,
	conn *wsConn,
	data []byte,
) {
	if ctl.Limiter != nil && !ctl.Limiter.Allow(id.AccountID) {
		ctl.sendJSON(conn, protocol.Errorf("too many join attempts"))
		return
	}

	var p protocol.JoinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if !p.Room.Valid() {
		ctl.sendJSON(conn, protocol.Errorf("invalid room"))
		return
	}

	name := id.Name
	if name == "" {
		name = "Guest"
	}

	sess, err := domain.NewSession(sid, id.AccountID, name, p.Avatar, p.Position, p.Room, p.Presence)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("join rejected")
		ctl.sendJSON(conn, protocol.Errorf(err.Error()))
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(p.Room)).Msg("join")
	ctl.Orch.Join(sess, conn)
}

func (ctl *Controller) handleMove(
	sid domain.SessionID,
	conn *wsConn,
	data []byte,
) {
	var p protocol.MovePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad move payload")
		ctl.sendJSON(conn, protocol.Errorf("bad_payload"))
		return
	}
	if p.Presence != "" && !p.Presence.Valid() {
		ctl.sendJSON(conn, protocol.Errorf("invalid presence"))
		return
	}
	ctl.Orch.Move(sid, p.Position, p.Room, p.Presence)
}
