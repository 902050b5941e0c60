package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/protocol"
)

const writeWait = 5 * time.Second

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, sid domain.SessionID, id auth.Identity, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		ctl.Orch.Disconnect(sid)
		c.Close()
	}()

	pongWait := 2 * ctl.PingPeriod
	c.conn.SetReadLimit(ctl.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				}
				return
			}
			ctl.handleMessage(sid, id, c, data)
		}
	}
}

func (ctl *Controller) handleMessage(sid domain.SessionID, id auth.Identity, c *wsConn, data []byte) {
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendJSON(c, protocol.Errorf("bad_payload"))
		return
	}

	switch env.Type {
	case protocol.TypeJoin:
		ctl.handleJoin(sid, id, c, data)
	case protocol.TypeMove:
		ctl.handleMove(sid, c, data)
	case protocol.TypePing:
		ctl.handlePing(c)
	case protocol.TypeWave:
		ctl.handleWave(sid, c, data)
	case protocol.TypeSendMessage:
		ctl.handleSendMessage(sid, c, data)
	case protocol.TypeSendDirectMessage:
		ctl.handleSendDirect(sid, c, data)
	case protocol.TypeViewerStartedWatching:
		ctl.handleWatching(sid, c, data, true)
	case protocol.TypeViewerStoppedWatching:
		ctl.handleWatching(sid, c, data, false)
	default:
		if !ctl.handleMedia(sid, c, env.Type, data) {
			log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
		}
	}
}

func (ctl *Controller) sendJSON(c *wsConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}
