package signal

import "github.com/pragmr/vorko/internal/protocol"

func (ctl *Controller) handlePing(conn *wsConn) {
	resp := protocol.Envelope{Type: protocol.TypePong}
	ctl.sendJSON(conn, resp)
}
