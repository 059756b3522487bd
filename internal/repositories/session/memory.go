package session

import (
	"context"
	"errors"
	"sync"

	"github.com/friendships-game/partyserver/internal/common/gamecode"
	"github.com/friendships-game/partyserver/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository implements the Repository interface with an in-process
// map. The registry is transient: nothing survives a restart.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string]*models.Game
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string]*models.Game),
	}
}

// SaveGame stores a game under its canonical code
func (r *memoryRepository) SaveGame(_ context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[gamecode.Canonical(input.Game.ID)] = input.Game
	return nil
}

// GetGame retrieves a game by code, matching case-insensitively
func (r *memoryRepository) GetGame(_ context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	game, ok := r.games[gamecode.Canonical(input.GameID)]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// DeleteGame removes a game; deleting an absent game is not an error
func (r *memoryRepository) DeleteGame(_ context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, gamecode.Canonical(input.GameID))
	return nil
}

// ListGames returns all live games
func (r *memoryRepository) ListGames(_ context.Context, _ *ListGamesInput) (*ListGamesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*models.Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	return &ListGamesOutput{Games: games}, nil
}

// CountPlayers returns the total player count across all live games
func (r *memoryRepository) CountPlayers(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, g := range r.games {
		total += len(g.Players)
	}
	return total, nil
}
