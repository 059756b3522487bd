package broadcast

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/friendships-game/partyserver/internal/broadcast Publisher

// Outbound event names.
const (
	EventWelcome            = "welcome"
	EventGameCreated        = "game_created"
	EventGameJoined         = "game_joined"
	EventPlayerJoined       = "player_joined"
	EventGameStarted        = "game_started"
	EventPlayerAction       = "player_action"
	EventPlayerHelped       = "player_helped"
	EventSuperShared        = "super_shared"
	EventEnvironmentChanged = "environment_changed"
	EventTurnEnded          = "turn_ended"
	EventChatMessage        = "chat_message"
	EventPong               = "pong"
	EventGameRejoined       = "game_rejoined"
	EventPlayerReconnected  = "player_reconnected"
	EventPlayerLeft         = "player_left"
	EventPlayerDisconnected = "player_disconnected"
	EventError              = "error"
)

// Event is a named payload published to one or more connections.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"data"`
}

// Publisher delivers events to connections. Delivery is fire-and-forget:
// implementations must not block and report no acknowledgement.
type Publisher interface {
	// Send delivers an event to a single connection
	Send(connID string, event Event)

	// Broadcast delivers an event to every connected player of a game,
	// optionally excluding one connection (empty excludeID excludes nobody)
	Broadcast(gameID string, event Event, excludeID string)
}

// ErrorPayload is the body of an outbound error event.
type ErrorPayload struct {
	Message string `json:"message"`
}

// SendError reports a failure to the originating connection only.
func SendError(p Publisher, connID, message string) {
	p.Send(connID, Event{Name: EventError, Payload: ErrorPayload{Message: message}})
}
