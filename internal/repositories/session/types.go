package session

import "github.com/friendships-game/partyserver/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}

type ListGamesInput struct {
}

type ListGamesOutput struct {
	Games []*models.Game
}
