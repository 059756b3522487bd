package models

import (
	"time"
)

// MaxPlayers is the hard cap on participants per game.
const MaxPlayers = 6

// Game represents one in-progress or lobby-phase party session,
// identified by a short shareable code.
type Game struct {
	// ID is the shareable game code (canonical upper case)
	ID string `json:"id"`

	// HostID is the connection ID of the current host player
	HostID string `json:"hostId"`

	// Players holds all members in turn-rotation order (insertion order)
	Players []*Player `json:"players"`

	// CurrentTurn is the connection ID of the turn holder, empty before start
	CurrentTurn string `json:"currentTurn"`

	// Day counts full rotations through the roster, starting at 1
	Day int `json:"day"`

	// Started is set once the host starts the game; never reset
	Started bool `json:"started"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// LastActivity is bumped on every state-mutating event
	LastActivity time.Time `json:"lastActivity"`
}

// FindPlayer returns the player with the given connection ID, or nil.
func (g *Game) FindPlayer(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the roster index of the given connection ID, or -1.
func (g *Game) PlayerIndex(playerID string) int {
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// HostName returns the host player's display name, or "Unknown" if the
// host is somehow absent from the roster.
func (g *Game) HostName() string {
	for _, p := range g.Players {
		if p.IsHost {
			return p.Name
		}
	}
	return "Unknown"
}
