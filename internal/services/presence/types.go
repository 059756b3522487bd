package presence

import (
	"time"

	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// DefaultGracePeriod is how long a disconnected player's slot is preserved.
const DefaultGracePeriod = 30 * time.Second

// Config holds configuration for the presence service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Publisher broadcast.Publisher
	Clock     clock.Clock

	// Loop serializes timer callbacks with inbound event handling
	Loop eventloop.Submitter

	// GracePeriod overrides DefaultGracePeriod when positive
	GracePeriod time.Duration

	Logger *zap.Logger
}

type playerDisconnectedPayload struct {
	PlayerName string           `json:"playerName"`
	Players    []*models.Player `json:"players"`
	Timestamp  int64            `json:"timestamp"`
}
