// Package janitor reclaims stale games. Sessions whose participants are
// long gone keep no connections, so the sweep deletes silently with no
// outbound notifications.
package janitor

import (
	"context"
	"errors"
	"time"

	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"github.com/friendships-game/partyserver/internal/services/presence"
	"go.uber.org/zap"
)

// Default sweep cadence and staleness thresholds.
const (
	DefaultInterval   = time.Hour
	DefaultStartedTTL = 6 * time.Hour
	DefaultLobbyTTL   = 2 * time.Hour
)

// Config holds configuration for the janitor
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Loop serializes sweeps with inbound event handling
	Loop eventloop.Submitter

	// Presence releases eviction-timer bookkeeping for swept games
	Presence presence.Tracker

	// Interval between sweeps; DefaultInterval when zero
	Interval time.Duration

	// StartedTTL is the idle threshold for started games
	StartedTTL time.Duration

	// LobbyTTL is the age threshold for never-started lobbies
	LobbyTTL time.Duration

	Logger *zap.Logger
}

// Janitor periodically evicts stale games from the registry.
type Janitor struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	loop        eventloop.Submitter
	presence    presence.Tracker
	interval    time.Duration
	startedTTL  time.Duration
	lobbyTTL    time.Duration
	logger      *zap.Logger
}

// New creates a new janitor
func New(cfg *Config) (*Janitor, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	startedTTL := cfg.StartedTTL
	if startedTTL <= 0 {
		startedTTL = DefaultStartedTTL
	}
	lobbyTTL := cfg.LobbyTTL
	if lobbyTTL <= 0 {
		lobbyTTL = DefaultLobbyTTL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Janitor{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		loop:        cfg.Loop,
		presence:    cfg.Presence,
		interval:    interval,
		startedTTL:  startedTTL,
		lobbyTTL:    lobbyTTL,
		logger:      logger,
	}, nil
}

// Run sweeps on a fixed interval until ctx is cancelled. Each sweep runs on
// the event loop so it never interleaves with event handling.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if j.loop != nil {
				j.loop.Submit(func() { j.Sweep(ctx) })
			} else {
				j.Sweep(ctx)
			}
		}
	}
}

// Sweep deletes started games idle past StartedTTL and lobbies that never
// started within LobbyTTL of creation.
func (j *Janitor) Sweep(ctx context.Context) {
	out, err := j.sessionRepo.ListGames(ctx, &sessionRepo.ListGamesInput{})
	if err != nil {
		j.logger.Error("janitor list failed", zap.Error(err))
		return
	}

	now := j.clock.Now()
	removed := 0

	for _, game := range out.Games {
		stale := false
		switch {
		case game.Started && now.Sub(game.LastActivity) > j.startedTTL:
			stale = true
		case !game.Started && now.Sub(game.CreatedAt) > j.lobbyTTL:
			stale = true
		}
		if !stale {
			continue
		}

		err = j.sessionRepo.DeleteGame(ctx, &sessionRepo.DeleteGameInput{GameID: game.ID})
		if err != nil {
			j.logger.Error("janitor delete failed",
				zap.String("game_id", game.ID),
				zap.Error(err))
			continue
		}
		if j.presence != nil {
			j.presence.ForgetGame(game.ID)
		}
		removed++
		j.logger.Info("removed stale game",
			zap.String("game_id", game.ID),
			zap.Bool("started", game.Started))
	}

	if removed > 0 {
		j.logger.Info("janitor sweep complete", zap.Int("removed", removed))
	}
}
