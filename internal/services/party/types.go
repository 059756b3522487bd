package party

import (
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/gamecode"
	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/models"
	"github.com/friendships-game/partyserver/internal/services/presence"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// MaxChatLength is the chat message cap; longer messages are truncated.
const MaxChatLength = 200

// Config holds configuration for the party service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Publisher     broadcast.Publisher
	CodeGenerator gamecode.Generator
	Clock         clock.Clock

	// Presence invalidates pending eviction timers when a player comes back
	Presence presence.Tracker

	Logger *zap.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ConnID is the connection ID of the creating player
	ConnID string

	// PlayerName is the host's display name
	PlayerName string

	// Avatar is the host's chosen avatar tag
	Avatar string

	// Environment is the host's chosen environment tag
	Environment string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the freshly stored game
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	// GameID is the shareable code, matched case-insensitively
	GameID string

	// ConnID is the connection ID of the joining player
	ConnID string

	// PlayerName is the joining player's display name
	PlayerName string

	// Avatar is the joining player's avatar tag
	Avatar string

	// Environment is the joining player's environment tag
	Environment string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game *models.Game
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string

	// ConnID must match the game's host
	ConnID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// LeaveGameInput contains parameters for an explicit leave
type LeaveGameInput struct {
	GameID string
	ConnID string
}

// RejoinGameInput contains parameters for reconnecting to a game
type RejoinGameInput struct {
	GameID string

	// PlayerID is the connection ID the player held when they joined
	PlayerID string

	// ConnID is the player's new connection; the roster entry is rewritten
	// to it so the snapshot and all later broadcasts reach the live socket
	ConnID string
}

// RejoinGameOutput contains the result of rejoining
type RejoinGameOutput struct {
	Game *models.Game
}

// SendChatInput contains parameters for a chat message
type SendChatInput struct {
	GameID   string
	PlayerID string
	Message  string
}

// UpdateStatusInput contains parameters for a status refresh
type UpdateStatusInput struct {
	GameID string
	ConnID string
}

// Outbound payloads. Field names match the wire protocol the clients speak.

type gameCreatedPayload struct {
	GameID     string           `json:"gameId"`
	PlayerName string           `json:"playerName"`
	Players    []*models.Player `json:"players"`
	Message    string           `json:"message"`
}

type gameJoinedPayload struct {
	GameID     string           `json:"gameId"`
	PlayerName string           `json:"playerName"`
	Players    []*models.Player `json:"players"`
	IsHost     bool             `json:"isHost"`
	Message    string           `json:"message"`
}

type playerJoinedPayload struct {
	PlayerName   string           `json:"playerName"`
	Players      []*models.Player `json:"players"`
	TotalPlayers int              `json:"totalPlayers"`
}

type gameStartedPayload struct {
	GameID      string           `json:"gameId"`
	Players     []*models.Player `json:"players"`
	CurrentTurn string           `json:"currentTurn"`
	Day         int              `json:"day"`
	Message     string           `json:"message"`
}

type gameRejoinedPayload struct {
	GameID      string           `json:"gameId"`
	Players     []*models.Player `json:"players"`
	CurrentTurn string           `json:"currentTurn"`
	Day         int              `json:"day"`
	PlayerName  string           `json:"playerName"`
	IsHost      bool             `json:"isHost"`
	Message     string           `json:"message"`
}

type playerReconnectedPayload struct {
	PlayerName string           `json:"playerName"`
	Players    []*models.Player `json:"players"`
}

type playerLeftPayload struct {
	PlayerName string           `json:"playerName"`
	Players    []*models.Player `json:"players"`
	NewHostID  string           `json:"newHostId"`
	Timestamp  int64            `json:"timestamp"`
	Reason     string           `json:"reason,omitempty"`
}

type chatMessagePayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	Timestamp  int64  `json:"timestamp"`
}
