package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/adapters/signal"
	"github.com/pragmr/vorko/internal/app"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/config"
	"github.com/pragmr/vorko/internal/gateway"
)

func SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	ctl *signal.Controller,
	issuer *gateway.Issuer,
	verifier *auth.Verifier,
	chat app.ChatLog,
) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	log.Info().Str("module", "adapters.http").Msg("router setup")

	api := r.Group("/api")

	api.GET("/ws", func(c *gin.Context) {
		ctl.HandleWS(ctx, c)
	})

	authed := api.Group("", BearerAuth(verifier))
	authed.POST("/gateway/token", GatewayToken(issuer))
	authed.GET("/chat/room/:roomId", RoomHistory(chat))
	authed.GET("/chat/dm/:peer", DirectHistory(chat))

	return r
}
