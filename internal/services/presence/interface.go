package presence

//go:generate mockgen -package=mocks -destination=mocks/mock_presence.go github.com/friendships-game/partyserver/internal/services/presence Service,Tracker,Remover

import "context"

// Service tracks per-player connectivity and runs the grace-period
// eviction timers.
type Service interface {
	Tracker

	// HandleDisconnect reacts to a transport-level disconnect: it marks the
	// player disconnected, notifies the rest of the game, and arms a
	// single-shot eviction timer
	HandleDisconnect(ctx context.Context, connID string) error
}

// Tracker is the slice of the presence manager the lifecycle service and
// janitor need: invalidating pending eviction timers when a player comes
// back, and releasing bookkeeping when players or whole games go away.
type Tracker interface {
	// MarkConnected supersedes any armed eviction timer for the player
	MarkConnected(gameID, playerID string)

	// Forget drops the player's timer bookkeeping after a roster removal
	Forget(gameID, playerID string)

	// ForgetGame drops all timer bookkeeping for a deleted game
	ForgetGame(gameID string)
}

// Remover performs the roster removal when a grace period lapses. It is the
// same code path as an explicit leave; reason is carried into the outbound
// player_left notice.
type Remover interface {
	RemovePlayer(ctx context.Context, gameID, playerID, reason string) error
}
