package models

// Resource defaults seeded on every new player.
const (
	DefaultTime        = 100
	DefaultEnergy      = 80
	DefaultSuperEnergy = 50
)

// MaxNameLength is the display-name cap; longer names are truncated at join.
const MaxNameLength = 20

// Player represents a member of a game. The ID is scoped to the transport
// connection; a player who reconnects on the same logical identity keeps it
// for the remainder of the session.
type Player struct {
	// ID is the transport connection ID
	ID string `json:"id"`

	// Name is the display name, unique within a game (case-insensitive)
	Name string `json:"name"`

	// Avatar is an opaque client-chosen cosmetic tag
	Avatar string `json:"avatar"`

	// Environment is an opaque client-chosen context tag
	Environment string `json:"environment"`

	// IsHost is true for exactly one player while the game is non-empty
	IsHost bool `json:"isHost"`

	// Time is client-reported and stored verbatim
	Time int `json:"time"`

	// Energy is clamped to [0,100]
	Energy int `json:"energy"`

	// SuperEnergy is clamped to [0,100]
	SuperEnergy int `json:"superEnergy"`

	// Connected is the presence flag; a disconnected player stays a full
	// member until the grace period expires
	Connected bool `json:"connected"`
}

// NewPlayer builds a player with the standard resource defaults. Names are
// truncated to MaxNameLength characters, never mid-rune.
func NewPlayer(id, name, avatar, environment string, isHost bool) *Player {
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}
	return &Player{
		ID:          id,
		Name:        name,
		Avatar:      avatar,
		Environment: environment,
		IsHost:      isHost,
		Time:        DefaultTime,
		Energy:      DefaultEnergy,
		SuperEnergy: DefaultSuperEnergy,
		Connected:   true,
	}
}

// ClampResource bounds an energy-style value to [0,100].
func ClampResource(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
