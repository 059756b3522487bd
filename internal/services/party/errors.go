package party

import "errors"

// Define errors
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrGameNotFound     = errors.New("game not found")
	ErrGameStarted      = errors.New("game has already started")
	ErrGameFull         = errors.New("game is at maximum capacity")
	ErrNameTaken        = errors.New("name is already taken in this game")
	ErrNotHost          = errors.New("only the host can start the game")
	ErrNotEnoughPlayers = errors.New("need at least 2 players to start")
	ErrPlayerNotFound   = errors.New("player not found in this game")
)
