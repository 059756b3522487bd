package turns

import (
	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// Config holds configuration for the turns service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Publisher broadcast.Publisher
	Clock     clock.Clock

	Logger *zap.Logger
}

// EndTurnInput contains the ending player's reported state
type EndTurnInput struct {
	GameID   string
	PlayerID string

	// Time is stored verbatim; it is client-reported and not clamped
	Time int

	// Energy is clamped to [0,100]
	Energy int

	// SuperEnergy is clamped to [0,100]
	SuperEnergy int
}

// PlayerActionInput contains a player's state after performing an action
type PlayerActionInput struct {
	GameID      string
	PlayerID    string
	ActionID    string
	FriendName  string
	Time        int
	Energy      int
	SuperEnergy int
}

// HelpPlayerInput contains parameters for granting energy to another player
type HelpPlayerInput struct {
	GameID      string
	PlayerID    string
	TargetID    string
	EnergyBonus int
}

// ShareSuperInput contains parameters for granting super energy
type ShareSuperInput struct {
	GameID     string
	PlayerID   string
	TargetID   string
	SuperBonus int
}

// ChangeEnvironmentInput contains a player's new environment and time
type ChangeEnvironmentInput struct {
	GameID         string
	PlayerID       string
	NewEnvironment string
	NewTime        int
}

// turnPlayerState is the roster snapshot sent in turn_ended; the presence
// flag is deliberately omitted.
type turnPlayerState struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Environment string `json:"environment"`
	IsHost      bool   `json:"isHost"`
	Time        int    `json:"time"`
	Energy      int    `json:"energy"`
	SuperEnergy int    `json:"superEnergy"`
}

type turnEndedPayload struct {
	Players           []turnPlayerState `json:"players"`
	CurrentTurn       string            `json:"currentTurn"`
	CurrentPlayerName string            `json:"currentPlayerName"`
	Day               int               `json:"day"`
	Timestamp         int64             `json:"timestamp"`
}

type playerActionPayload struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	ActionID    string `json:"actionId"`
	FriendName  string `json:"friendName"`
	Time        int    `json:"time"`
	Energy      int    `json:"energy"`
	SuperEnergy int    `json:"superEnergy"`
	Timestamp   int64  `json:"timestamp"`
}

type playerHelpedPayload struct {
	HelperID   string `json:"helperId"`
	HelperName string `json:"helperName"`
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	NewEnergy  int    `json:"newEnergy"`
	Timestamp  int64  `json:"timestamp"`
}

type superSharedPayload struct {
	SharerID       string `json:"sharerId"`
	SharerName     string `json:"sharerName"`
	TargetID       string `json:"targetId"`
	TargetName     string `json:"targetName"`
	NewSuperEnergy int    `json:"newSuperEnergy"`
	Timestamp      int64  `json:"timestamp"`
}

type environmentChangedPayload struct {
	PlayerID       string `json:"playerId"`
	PlayerName     string `json:"playerName"`
	NewEnvironment string `json:"newEnvironment"`
	NewTime        int    `json:"newTime"`
	Timestamp      int64  `json:"timestamp"`
}
