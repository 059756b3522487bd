package party

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/gamecode"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"github.com/friendships-game/partyserver/internal/services/presence"
	"go.uber.org/zap"
)

// maxCodeAttempts bounds the collision-retry loop when allocating a code.
const maxCodeAttempts = 10

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	publisher   broadcast.Publisher
	codeGen     gamecode.Generator
	clock       clock.Clock
	presence    presence.Tracker
	logger      *zap.Logger
}

// New creates a new party service
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
	if cfg.CodeGenerator == nil {
		return nil, errors.New("code generator cannot be nil")
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
		codeGen:     cfg.CodeGenerator,
		clock:       cfg.Clock,
		presence:    cfg.Presence,
		logger:      logger,
	}, nil
}

// CreateGame allocates a fresh game with the caller seeded as host
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input.PlayerName == "" || input.Avatar == "" || input.Environment == "" {
		return nil, ErrMissingFields
	}

	gameID, err := s.allocateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	host := models.NewPlayer(input.ConnID, input.PlayerName, input.Avatar, input.Environment, true)

	game := &models.Game{
		ID:           gameID,
		HostID:       input.ConnID,
		Players:      []*models.Player{host},
		CurrentTurn:  "",
		Day:          1,
		Started:      false,
		CreatedAt:    now,
		LastActivity: now,
	}

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return nil, err
	}

	s.publisher.Send(input.ConnID, broadcast.Event{
		Name: broadcast.EventGameCreated,
		Payload: gameCreatedPayload{
			GameID:     gameID,
			PlayerName: host.Name,
			Players:    game.Players,
			Message:    "Game created! Share the code with friends.",
		},
	})

	s.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.String("player_name", host.Name),
		zap.String("conn_id", input.ConnID))

	return &CreateGameOutput{Game: game}, nil
}

// JoinGame adds a player to an existing lobby
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input.GameID == "" || input.PlayerName == "" || input.Avatar == "" || input.Environment == "" {
		return nil, ErrMissingFields
	}

	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, ErrGameNotFound
	}

	if game.Started {
		return nil, ErrGameStarted
	}

	if len(game.Players) >= models.MaxPlayers {
		return nil, ErrGameFull
	}

	for _, p := range game.Players {
		if strings.EqualFold(p.Name, input.PlayerName) {
			return nil, ErrNameTaken
		}
	}

	player := models.NewPlayer(input.ConnID, input.PlayerName, input.Avatar, input.Environment, false)
	game.Players = append(game.Players, player)
	game.LastActivity = s.clock.Now()

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return nil, err
	}

	s.publisher.Send(input.ConnID, broadcast.Event{
		Name: broadcast.EventGameJoined,
		Payload: gameJoinedPayload{
			GameID:     game.ID,
			PlayerName: player.Name,
			Players:    game.Players,
			IsHost:     false,
			Message:    fmt.Sprintf("Welcome to %s! Waiting for the host to start.", game.ID),
		},
	})

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventPlayerJoined,
		Payload: playerJoinedPayload{
			PlayerName:   player.Name,
			Players:      game.Players,
			TotalPlayers: len(game.Players),
		},
	}, "")

	s.logger.Info("player joined",
		zap.String("game_id", game.ID),
		zap.String("player_name", player.Name),
		zap.Int("total_players", len(game.Players)))

	return &JoinGameOutput{Game: game}, nil
}

// StartGame begins play. Only the host may start, and at least two players
// must be present. A repeat call re-validates and re-broadcasts.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, ErrGameNotFound
	}

	if input.ConnID != game.HostID {
		return nil, ErrNotHost
	}

	if len(game.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	game.Started = true
	game.CurrentTurn = game.Players[0].ID
	game.Day = 1
	game.LastActivity = s.clock.Now()

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return nil, err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventGameStarted,
		Payload: gameStartedPayload{
			GameID:      game.ID,
			Players:     game.Players,
			CurrentTurn: game.CurrentTurn,
			Day:         game.Day,
			Message:     "The game has started!",
		},
	}, "")

	s.logger.Info("game started",
		zap.String("game_id", game.ID),
		zap.Int("players", len(game.Players)))

	return &StartGameOutput{Game: game}, nil
}

// LeaveGame removes the calling player. Unknown games and players are
// ignored; late leave events are harmless.
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) error {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil
	}

	if game.FindPlayer(input.ConnID) == nil {
		return nil
	}

	return s.RemovePlayer(ctx, game.ID, input.ConnID, "")
}

// RemovePlayer drops a player from the roster, reassigning host and turn
// as needed and deleting the game once empty. It is the shared removal path
// for explicit leaves and grace-period evictions; reason is carried into
// the player_left broadcast ("timeout" for evictions, empty otherwise).
func (s *service) RemovePlayer(ctx context.Context, gameID, playerID, reason string) error {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: gameID})
	if err != nil {
		return nil
	}

	idx := game.PlayerIndex(playerID)
	if idx == -1 {
		return nil
	}

	playerName := game.Players[idx].Name
	wasHost := playerID == game.HostID
	heldTurn := playerID == game.CurrentTurn

	game.Players = append(game.Players[:idx], game.Players[idx+1:]...)
	game.LastActivity = s.clock.Now()

	if len(game.Players) == 0 {
		err = s.sessionRepo.DeleteGame(ctx, &sessionRepo.DeleteGameInput{GameID: game.ID})
		if err != nil {
			return err
		}
		if s.presence != nil {
			s.presence.ForgetGame(game.ID)
		}
		s.logger.Info("game removed, no players left", zap.String("game_id", game.ID))
		return nil
	}

	if s.presence != nil {
		s.presence.Forget(game.ID, playerID)
	}

	if wasHost {
		game.HostID = game.Players[0].ID
		game.Players[0].IsHost = true
	}

	if heldTurn {
		game.CurrentTurn = game.Players[0].ID
	}

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventPlayerLeft,
		Payload: playerLeftPayload{
			PlayerName: playerName,
			Players:    game.Players,
			NewHostID:  game.HostID,
			Timestamp:  s.clock.Now().UnixMilli(),
			Reason:     reason,
		},
	}, "")

	s.logger.Info("player left",
		zap.String("game_id", game.ID),
		zap.String("player_name", playerName),
		zap.String("reason", reason),
		zap.Int("players_left", len(game.Players)))

	return nil
}

// RejoinGame reconnects a player who is still a member of the game. A
// reconnect arrives on a fresh connection, so the roster entry is rewritten
// to the new connection ID; host and turn references follow it. It does not
// re-add a player the grace timer already evicted.
func (s *service) RejoinGame(ctx context.Context, input *RejoinGameInput) (*RejoinGameOutput, error) {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, ErrGameNotFound
	}

	player := game.FindPlayer(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if input.ConnID != "" && input.ConnID != player.ID {
		if game.HostID == player.ID {
			game.HostID = input.ConnID
		}
		if game.CurrentTurn == player.ID {
			game.CurrentTurn = input.ConnID
		}
		player.ID = input.ConnID
	}

	player.Connected = true
	game.LastActivity = s.clock.Now()

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return nil, err
	}

	if s.presence != nil {
		s.presence.MarkConnected(game.ID, player.ID)
	}

	s.publisher.Send(player.ID, broadcast.Event{
		Name: broadcast.EventGameRejoined,
		Payload: gameRejoinedPayload{
			GameID:      game.ID,
			Players:     game.Players,
			CurrentTurn: game.CurrentTurn,
			Day:         game.Day,
			PlayerName:  player.Name,
			IsHost:      player.IsHost,
			Message:     "Reconnected to the game!",
		},
	})

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventPlayerReconnected,
		Payload: playerReconnectedPayload{
			PlayerName: player.Name,
			Players:    game.Players,
		},
	}, player.ID)

	s.logger.Info("player rejoined",
		zap.String("game_id", game.ID),
		zap.String("player_name", player.Name))

	return &RejoinGameOutput{Game: game}, nil
}

// SendChat broadcasts a chat message to the whole game. Messages are capped
// at MaxChatLength and dropped if empty after trimming. Unknown games and
// players are ignored.
func (s *service) SendChat(ctx context.Context, input *SendChatInput) error {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil
	}

	player := game.FindPlayer(input.PlayerID)
	if player == nil {
		return nil
	}

	game.LastActivity = s.clock.Now()

	message := input.Message
	if runes := []rune(message); len(runes) > MaxChatLength {
		message = string(runes[:MaxChatLength])
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	s.publisher.Broadcast(game.ID, broadcast.Event{
		Name: broadcast.EventChatMessage,
		Payload: chatMessagePayload{
			PlayerID:   input.PlayerID,
			PlayerName: player.Name,
			Message:    message,
			Timestamp:  s.clock.Now().UnixMilli(),
		},
	}, "")

	return nil
}

// UpdateStatus marks the caller connected and refreshes the game's
// activity timestamp. Unknown games and players are ignored.
func (s *service) UpdateStatus(ctx context.Context, input *UpdateStatusInput) error {
	game, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil
	}

	player := game.FindPlayer(input.ConnID)
	if player == nil {
		return nil
	}

	player.Connected = true
	game.LastActivity = s.clock.Now()

	err = s.sessionRepo.SaveGame(ctx, &sessionRepo.SaveGameInput{Game: game})
	if err != nil {
		return err
	}

	if s.presence != nil {
		s.presence.MarkConnected(game.ID, input.ConnID)
	}

	return nil
}

// allocateCode draws codes until one does not collide with a live game.
func (s *service) allocateCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := s.codeGen.Generate()

		_, err := s.sessionRepo.GetGame(ctx, &sessionRepo.GetGameInput{GameID: code})
		if errors.Is(err, sessionRepo.ErrGameNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not allocate a unique game code after %d attempts", maxCodeAttempts)
}
