// Package signal is the websocket adapter: it authenticates the
// handshake, owns the connection pumps and translates wire envelopes
// into orchestrator calls.
package signal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/app/orch"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/core"
	"github.com/pragmr/vorko/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

type Controller struct {
	Orch       *orch.Orchestrator
	Verifier   *auth.Verifier
	ReadLimit  int64
	PingPeriod time.Duration
	Limiter    *JoinRateLimiter
}

func NewController(o *orch.Orchestrator, v *auth.Verifier, readLimit int64, pingPeriod time.Duration, limiter *JoinRateLimiter) *Controller {
	return &Controller{
		Orch:       o,
		Verifier:   v,
		ReadLimit:  readLimit,
		PingPeriod: pingPeriod,
		Limiter:    limiter,
	}
}

// wsConn implements core.SignalConnection over a gorilla websocket.
type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// bearerToken pulls the session token from the query string or the
// Authorization header (browser websocket clients cannot set headers).
func bearerToken(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// HandleWS authenticates and upgrades one connection, then serves it
// until the peer goes away. Authentication failure rejects before any
// event handler runs.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth_required"})
		return
	}
	identity, err := ctl.Verifier.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	sid := domain.NewSessionID()
	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("account", string(identity.AccountID)).Msg("new WS connection")

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	ctl.readPump(ctx, cancel, sid, identity, conn)
}
