package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragmr/vorko/internal/adapters/signal"
	"github.com/pragmr/vorko/internal/app"
	"github.com/pragmr/vorko/internal/app/orch"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/config"
	"github.com/pragmr/vorko/internal/domain"
	"github.com/pragmr/vorko/internal/gateway"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T, chat app.ChatLog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Mode: "release", Radius: 3}
	reg := app.NewRegistry()
	o := orch.New(reg, app.NewWatcherRegistry(), chat, cfg.Radius)
	verifier := auth.NewVerifier(testSecret)
	ctl := signal.NewController(o, verifier, 32768, time.Minute, nil)
	issuer := gateway.NewIssuer(gateway.Config{
		URL:       "wss://gw.example.com",
		APIKey:    "key",
		APISecret: "secret-at-least-long-enough",
		TokenTTL:  time.Minute,
	}, reg, cfg.Radius)

	return SetupRouter(context.Background(), cfg, ctl, issuer, verifier, chat)
}

func bearer(t *testing.T, account, name string) string {
	t.Helper()
	tok, err := auth.Sign(testSecret, auth.Identity{AccountID: domain.AccountID(account), Name: name}, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestGatewayTokenRequiresAuth(t *testing.T) {
	r := newTestRouter(t, app.NewMemoryChatLog(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gateway/token", strings.NewReader(`{"room":"lobby"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGatewayTokenIssued(t *testing.T) {
	r := newTestRouter(t, app.NewMemoryChatLog(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gateway/token", strings.NewReader(`{"room":"lobby"}`))
	req.Header.Set("Authorization", bearer(t, "acc1", "Ann"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
		URL   string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "wss://gw.example.com", resp.URL)
}

func TestGatewayTokenMissingRoom(t *testing.T) {
	r := newTestRouter(t, app.NewMemoryChatLog(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gateway/token", strings.NewReader(`{}`))
	req.Header.Set("Authorization", bearer(t, "acc1", "Ann"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomHistoryEndpoint(t *testing.T) {
	chat := app.NewMemoryChatLog(10)
	chat.AppendRoom("lobby", domain.ChatMessage{
		ID:        "s1",
		AccountID: "acc1",
		Name:      "Ann",
		Room:      "lobby",
		Message:   "hello",
		Timestamp: time.Now(),
	})
	r := newTestRouter(t, chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/room/lobby", nil)
	req.Header.Set("Authorization", bearer(t, "acc2", "Bob"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "hello", resp.Messages[0].Message)
}

func TestDirectHistoryScopedToCaller(t *testing.T) {
	chat := app.NewMemoryChatLog(10)
	chat.AppendDirect(domain.DirectMessage{
		FromSessionID: "s1",
		FromAccountID: "acc1",
		ToAccountID:   "acc2",
		Message:       "psst",
		Timestamp:     time.Now(),
	})
	chat.AppendDirect(domain.DirectMessage{
		FromSessionID: "s3",
		FromAccountID: "acc3",
		ToAccountID:   "acc4",
		Message:       "other thread",
		Timestamp:     time.Now(),
	})
	r := newTestRouter(t, chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/dm/acc1", nil)
	req.Header.Set("Authorization", bearer(t, "acc2", "Bob"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Messages []domain.DirectMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "psst", resp.Messages[0].Message)
}
