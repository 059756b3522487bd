// Package app wires the party server together: registry, event loop,
// services, websocket gateway and HTTP surface.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	"github.com/friendships-game/partyserver/internal/common/gamecode"
	commonuuid "github.com/friendships-game/partyserver/internal/common/uuid"
	"github.com/friendships-game/partyserver/internal/config"
	"github.com/friendships-game/partyserver/internal/handlers/httpapi"
	"github.com/friendships-game/partyserver/internal/handlers/ws"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"github.com/friendships-game/partyserver/internal/router"
	"github.com/friendships-game/partyserver/internal/services/janitor"
	"github.com/friendships-game/partyserver/internal/services/party"
	"github.com/friendships-game/partyserver/internal/services/presence"
	"github.com/friendships-game/partyserver/internal/services/turns"
	"go.uber.org/zap"
)

// Server is the assembled party server.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	srv     *http.Server
	loop    *eventloop.Loop
	janitor *janitor.Janitor
	repo    sessionRepo.Repository
}

// New builds the server from config.
func New(cfg *config.Config) (*Server, error) {
	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	clk := &clock.DefaultClock{}
	repo := sessionRepo.NewMemory()
	loop := eventloop.New(cfg.EventQueueSize)
	hub := ws.NewHub(repo, logger)

	presenceSvc, err := presence.New(&presence.Config{
		SessionRepo: repo,
		Publisher:   hub,
		Clock:       clk,
		Loop:        loop,
		GracePeriod: cfg.GracePeriod,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("presence service: %w", err)
	}

	partySvc, err := party.New(&party.Config{
		SessionRepo:   repo,
		Publisher:     hub,
		CodeGenerator: gamecode.New(),
		Clock:         clk,
		Presence:      presenceSvc,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("party service: %w", err)
	}
	presenceSvc.SetRemover(partySvc)

	turnsSvc, err := turns.New(&turns.Config{
		SessionRepo: repo,
		Publisher:   hub,
		Clock:       clk,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("turns service: %w", err)
	}

	jan, err := janitor.New(&janitor.Config{
		SessionRepo: repo,
		Clock:       clk,
		Loop:        loop,
		Presence:    presenceSvc,
		Interval:    cfg.JanitorInterval,
		StartedTTL:  cfg.StartedTTL,
		LobbyTTL:    cfg.LobbyTTL,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("janitor: %w", err)
	}

	gateway := ws.NewHandler(&ws.Config{
		Hub:             hub,
		Party:           partySvc,
		Turns:           turnsSvc,
		Presence:        presenceSvc,
		Loop:            loop,
		Clock:           clk,
		UUID:            commonuuid.New(),
		Logger:          logger,
		ReadBufferSize:  cfg.WSReadBufferSize,
		WriteBufferSize: cfg.WSWriteBufferSize,
	})

	api := httpapi.New(repo, clk, loop)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(api, gateway),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		srv:     srv,
		loop:    loop,
		janitor: jan,
		repo:    repo,
	}, nil
}

// Run starts the event loop, janitor and HTTP server, blocking until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go s.loop.Run(ctx)
	go s.janitor.Run(ctx)

	s.logger.Info("party server listening",
		zap.String("addr", s.srv.Addr),
		zap.String("env", s.cfg.AppEnv))

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	out, err := s.repo.ListGames(context.Background(), &sessionRepo.ListGamesInput{})
	if err == nil {
		s.logger.Info("shutting down", zap.Int("live_games", len(out.Games)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.AppEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
