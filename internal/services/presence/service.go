package presence

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// service implements the Service interface.
//
// Eviction timers are keyed by (game, player, generation). Arming a timer
// captures the player's current generation; MarkConnected bumps it, so a
// superseded timer is provably a no-op at fire time. The callback also
// re-reads the live connected flag, never the state captured when the
// timer was armed.
type service struct {
	sessionRepo sessionRepo.Repository
	publisher   broadcast.Publisher
	clock       clock.Clock
	loop        eventloop.Submitter
	gracePeriod time.Duration
	logger      *zap.Logger

	remover Remover

	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a new presence service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.Publisher == nil {
		return nil, errors.New("publisher cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.Loop == nil {
		return nil, errors.New("event loop cannot be nil")
	}

	grace := cfg.GracePeriod
	if grace <= 0 {
		grace = DefaultGracePeriod
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		publisher:   cfg.Publisher,
		clock:       cfg.Clock,
		loop:        cfg.Loop,
		gracePeriod: grace,
		logger:      logger,
		generations: make(map[string]uint64),
	}, nil
}

// SetRemover wires the removal path. The lifecycle service depends on this
// service, so the remover is attached after both are constructed.
func (s *service) SetRemover(r Remover) {
	s.remover = r
}

// HandleDisconnect marks the player disconnected in whichever game holds
// them, notifies the others, and arms the grace-period timer.
func (s *service) HandleDisconnect(ctx context.Context, connID string) error {
	out, err := s.sessionRepo.ListGames(ctx, &sessionRepo.ListGamesInput{})
	if err != nil {
		return err
	}

	for _, game := range out.Games {
		player := game.FindPlayer(connID)
		if player == nil {
			continue
		}

		player.Connected = false
		game.LastActivity = s.clock.Now()

		err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
		if err != nil {
			return err
		}

		s.publisher.Broadcast(game.ID, broadcast.Event{
			Name: broadcast.EventPlayerDisconnected,
			Payload: playerDisconnectedPayload{
				PlayerName: player.Name,
				Players:    game.Players,
				Timestamp:  s.clock.Now().UnixMilli(),
			},
		}, connID)

		s.logger.Info("player disconnected",
			zap.String("game_id", game.ID),
			zap.String("player_name", player.Name),
			zap.Duration("grace_period", s.gracePeriod))

		s.armEvictionTimer(game.ID, connID)

		// A connection belongs to at most one game.
		break
	}

	return nil
}

// MarkConnected supersedes any armed eviction timer for the player.
func (s *service) MarkConnected(gameID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key(gameID, playerID)]++
}

// Forget releases the player's timer bookkeeping. Any still-armed timer
// sees a generation mismatch and is a no-op.
func (s *service) Forget(gameID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.generations, key(gameID, playerID))
}

// ForgetGame releases all timer bookkeeping for a deleted game.
func (s *service) ForgetGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := gameID + "/"
	for k := range s.generations {
		if strings.HasPrefix(k, prefix) {
			delete(s.generations, k)
		}
	}
}

// armEvictionTimer schedules a single-shot eviction check. The check runs
// on the event loop so it never interleaves with inbound event handling.
func (s *service) armEvictionTimer(gameID, playerID string) {
	s.mu.Lock()
	s.generations[key(gameID, playerID)]++
	armed := s.generations[key(gameID, playerID)]
	s.mu.Unlock()

	time.AfterFunc(s.gracePeriod, func() {
		s.loop.Submit(func() {
			s.evictIfStillGone(gameID, playerID, armed)
		})
	})
}

// evictIfStillGone removes the player unless they reconnected after the
// timer was armed. Stale timers are no-ops.
func (s *service) evictIfStillGone(gameID, playerID string, armed uint64) {
	s.mu.Lock()
	current := s.generations[key(gameID, playerID)]
	s.mu.Unlock()

	if current != armed {
		return
	}

	ctx := context.Background()

	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: gameID})
	if err != nil {
		return
	}

	player := game.FindPlayer(playerID)
	if player == nil || player.Connected {
		return
	}

	s.mu.Lock()
	delete(s.generations, key(gameID, playerID))
	s.mu.Unlock()

	if s.remover == nil {
		s.logger.Warn("no remover wired, skipping eviction",
			zap.String("game_id", gameID),
			zap.String("player_id", playerID))
		return
	}

	s.logger.Info("evicting player after grace period",
		zap.String("game_id", gameID),
		zap.String("player_name", player.Name))

	if err := s.remover.RemovePlayer(ctx, gameID, playerID, "timeout"); err != nil {
		s.logger.Error("eviction failed",
			zap.String("game_id", gameID),
			zap.String("player_id", playerID),
			zap.Error(err))
	}
}

func key(gameID, playerID string) string {
	return gameID + "/" + playerID
}
