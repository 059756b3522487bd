package session

import (
	"context"

	"github.com/friendships-game/partyserver/internal/models"
)

// Repository is the registry of live games. It is the single source of
// truth for session state; entries are purely transient, in-process data.
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by code (case-insensitive)
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// ListGames retrieves all live games
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// CountPlayers returns the total number of players across all games
	CountPlayers(ctx context.Context) (int, error)
}
