package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/pragmr/vorko/internal/adapters/http"
	wsignal "github.com/pragmr/vorko/internal/adapters/signal"
	"github.com/pragmr/vorko/internal/app"
	"github.com/pragmr/vorko/internal/app/orch"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/config"
	"github.com/pragmr/vorko/internal/gateway"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Secret == "" {
		log.Fatal().Msg("VORKO_SECRET is not set")
	}

	reg := app.NewRegistry()
	watchers := app.NewWatcherRegistry()
	chat := app.NewMemoryChatLog(cfg.ChatHistoryCap)
	orchestrator := orch.New(reg, watchers, chat, cfg.Radius)

	verifier := auth.NewVerifier(cfg.Secret)
	issuer := gateway.NewIssuer(gateway.Config{
		URL:       cfg.Gateway.URL,
		APIKey:    cfg.Gateway.APIKey,
		APISecret: cfg.Gateway.APISecret,
		TokenTTL:  cfg.Gateway.TokenTTL,
	}, reg, cfg.Radius)

	limiter := wsignal.NewJoinRateLimiter(cfg.JoinLimit, cfg.JoinInterval)
	ctl := wsignal.NewController(orchestrator, verifier, cfg.ReadLimit, cfg.PingPeriod, limiter)

	r := router.SetupRouter(ctx, cfg, ctl, issuer, verifier, chat)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("vorko server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
