package turns

import (
	"context"
	"errors"

	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	publisher   broadcast.Publisher
	clock       clock.Clock
	logger      *zap.Logger
}

// New creates a new turns service
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

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		publisher:   cfg.Publisher,
		clock:       cfg.Clock,
		logger:      logger,
	}, nil
}

// EndTurn advances the turn to the next player in rotation order. The day
// counter increments only when the rotation wraps back to the first player
// and the outgoing holder was still in the roster: a turn-end arriving
// after the holder already left does not advance the day.
func (s *service) EndTurn(ctx context.Context, input *EndTurnInput) error {
	game := s.startedGame(ctx, input.GameID)
	if game == nil {
		return nil
	}

	if player := game.FindPlayer(input.PlayerID); player != nil {
		player.Time = input.Time
		player.Energy = models.ClampResource(input.Energy)
		player.SuperEnergy = models.ClampResource(input.SuperEnergy)
	}

	currentIndex := game.PlayerIndex(game.CurrentTurn)
	nextIndex := 0
	if currentIndex != -1 {
		nextIndex = (currentIndex + 1) % len(game.Players)
	}

	game.CurrentTurn = game.Players[nextIndex].ID

	if nextIndex == 0 && currentIndex != -1 {
		game.Day++
	}

	game.LastActivity = s.clock.Now()

	err := s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	currentPlayerName := "Unknown"
	if next := game.FindPlayer(game.CurrentTurn); next != nil {
		currentPlayerName = next.Name
	}

	snapshot := make([]turnPlayerState, 0, len(game.Players))
	for _, p := range game.Players {
		snapshot = append(snapshot, turnPlayerState{
			ID:          p.ID,
			Name:        p.Name,
			Avatar:      p.Avatar,
			Environment: p.Environment,
			IsHost:      p.IsHost,
			Time:        p.Time,
			Energy:      p.Energy,
			SuperEnergy: p.SuperEnergy,
		})
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventTurnEnded,
		Payload: turnEndedPayload{
			Players:           snapshot,
			CurrentTurn:       game.CurrentTurn,
			CurrentPlayerName: currentPlayerName,
			Day:               game.Day,
			Timestamp:         s.clock.Now().UnixMilli(),
		},
	}, "")

	s.logger.Info("turn ended",
		zap.String("game_id", game.ID),
		zap.String("next_player", currentPlayerName),
		zap.Int("day", game.Day))

	return nil
}

// PlayerAction stores the acting player's reported state and relays the
// action to everyone except the originating connection.
func (s *service) PlayerAction(ctx context.Context, input *PlayerActionInput) error {
	game := s.startedGame(ctx, input.GameID)
	if game == nil {
		return nil
	}

	player := game.FindPlayer(input.PlayerID)
	if player == nil {
		return nil
	}

	player.Time = input.Time
	player.Energy = models.ClampResource(input.Energy)
	player.SuperEnergy = models.ClampResource(input.SuperEnergy)
	game.LastActivity = s.clock.Now()

	err := s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventPlayerAction,
		Payload: playerActionPayload{
			PlayerID:    input.PlayerID,
			PlayerName:  player.Name,
			ActionID:    input.ActionID,
			FriendName:  input.FriendName,
			Time:        player.Time,
			Energy:      player.Energy,
			SuperEnergy: player.SuperEnergy,
			Timestamp:   s.clock.Now().UnixMilli(),
		},
	}, input.PlayerID)

	return nil
}

// HelpPlayer grants bonus energy to the target, clamped to [0,100].
func (s *service) HelpPlayer(ctx context.Context, input *HelpPlayerInput) error {
	game := s.startedGame(ctx, input.GameID)
	if game == nil {
		return nil
	}

	helper := game.FindPlayer(input.PlayerID)
	target := game.FindPlayer(input.TargetID)
	if helper == nil || target == nil {
		return nil
	}

	target.Energy = models.ClampResource(target.Energy + input.EnergyBonus)
	game.LastActivity = s.clock.Now()

	err := s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventPlayerHelped,
		Payload: playerHelpedPayload{
			HelperID:   input.PlayerID,
			HelperName: helper.Name,
			TargetID:   input.TargetID,
			TargetName: target.Name,
			NewEnergy:  target.Energy,
			Timestamp:  s.clock.Now().UnixMilli(),
		},
	}, "")

	return nil
}

// ShareSuper grants bonus super energy to the target, clamped to [0,100].
func (s *service) ShareSuper(ctx context.Context, input *ShareSuperInput) error {
	game := s.startedGame(ctx, input.GameID)
	if game == nil {
		return nil
	}

	sharer := game.FindPlayer(input.PlayerID)
	target := game.FindPlayer(input.TargetID)
	if sharer == nil || target == nil {
		return nil
	}

	target.SuperEnergy = models.ClampResource(target.SuperEnergy + input.SuperBonus)
	game.LastActivity = s.clock.Now()

	err := s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventSuperShared,
		Payload: superSharedPayload{
			SharerID:       input.PlayerID,
			SharerName:     sharer.Name,
			TargetID:       input.TargetID,
			TargetName:     target.Name,
			NewSuperEnergy: target.SuperEnergy,
			Timestamp:      s.clock.Now().UnixMilli(),
		},
	}, "")

	return nil
}

// ChangeEnvironment moves a player to a new environment; the reported time
// is stored verbatim.
func (s *service) ChangeEnvironment(ctx context.Context, input *ChangeEnvironmentInput) error {
	game := s.startedGame(ctx, input.GameID)
	if game == nil {
		return nil
	}

	player := game.FindPlayer(input.PlayerID)
	if player == nil {
		return nil
	}

	player.Environment = input.NewEnvironment
	player.Time = input.NewTime
	game.LastActivity = s.clock.Now()

	err := s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventEnvironmentChanged,
		Payload: environmentChangedPayload{
			PlayerID:       input.PlayerID,
			PlayerName:     player.Name,
			NewEnvironment: input.NewEnvironment,
			NewTime:        input.NewTime,
			Timestamp:      s.clock.Now().UnixMilli(),
		},
	}, "")

	return nil
}

// startedGame fetches a game that exists and has started, or nil.
func (s *service) startedGame(ctx context.Context, gameID string) *models.Game {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: gameID})
	if err != nil || !game.Started {
		return nil
	}
	return game
}
