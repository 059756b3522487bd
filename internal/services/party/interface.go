package party

import "context"

// Service defines the interface for game lifecycle operations
type Service interface {
	// CreateGame allocates a fresh game with the caller as host
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to an existing lobby
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// StartGame begins play; host only, needs at least 2 players
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// LeaveGame removes a player; silently ignores unknown games or players
	LeaveGame(ctx context.Context, input *LeaveGameInput) error

	// RejoinGame reconnects a known player within the grace window
	RejoinGame(ctx context.Context, input *RejoinGameInput) (*RejoinGameOutput, error)

	// SendChat broadcasts a trimmed chat message to the whole game
	SendChat(ctx context.Context, input *SendChatInput) error

	// UpdateStatus marks the caller connected and refreshes activity
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) error
}
