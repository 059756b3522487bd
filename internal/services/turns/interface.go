package turns

import "context"

// Service defines the interface for in-game turn and action coordination.
// Every operation is a silent no-op when the game is missing, not started,
// or the referenced players are gone: these are passive state-sync events
// and a late or duplicate message is not a client mistake.
type Service interface {
	// EndTurn records the ending player's reported state and advances the
	// turn, bumping the day when the rotation wraps
	EndTurn(ctx context.Context, input *EndTurnInput) error

	// PlayerAction records a player's state after an action and relays it
	// to everyone except the originator
	PlayerAction(ctx context.Context, input *PlayerActionInput) error

	// HelpPlayer grants bonus energy to another player
	HelpPlayer(ctx context.Context, input *HelpPlayerInput) error

	// ShareSuper grants bonus super energy to another player
	ShareSuper(ctx context.Context, input *ShareSuperInput) error

	// ChangeEnvironment moves a player to a new environment and time
	ChangeEnvironment(ctx context.Context, input *ChangeEnvironmentInput) error
}
