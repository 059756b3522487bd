package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	commonuuid "github.com/friendships-game/partyserver/internal/common/uuid"
	"github.com/friendships-game/partyserver/internal/services/party"
	"github.com/friendships-game/partyserver/internal/services/presence"
	"github.com/friendships-game/partyserver/internal/services/turns"
	"go.uber.org/zap"
)

// Config holds configuration for the websocket gateway
type Config struct {
	Hub      *Hub
	Party    party.Service
	Turns    turns.Service
	Presence presence.Service
	Loop     eventloop.Submitter
	Clock    clock.Clock
	UUID     commonuuid.UUID
	Logger   *zap.Logger

	ReadBufferSize  int
	WriteBufferSize int
}

// Handler upgrades HTTP requests to websocket connections and feeds every
// inbound event through the event loop.
type Handler struct {
	hub      *Hub
	party    party.Service
	turns    turns.Service
	presence presence.Service
	loop     eventloop.Submitter
	clock    clock.Clock
	uuid     commonuuid.UUID
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// envelope is the wire frame: a named event and its payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type welcomePayload struct {
	Message    string `json:"message"`
	ServerTime int64  `json:"serverTime"`
	PlayerID   string `json:"playerId"`
}

// NewHandler creates the websocket gateway handler.
func NewHandler(cfg *Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	readBuf := cfg.ReadBufferSize
	if readBuf <= 0 {
		readBuf = 4096
	}
	writeBuf := cfg.WriteBufferSize
	if writeBuf <= 0 {
		writeBuf = 4096
	}

	return &Handler{
		hub:      cfg.Hub,
		party:    cfg.Party,
		turns:    cfg.Turns,
		presence: cfg.Presence,
		loop:     cfg.Loop,
		clock:    cfg.Clock,
		uuid:     cfg.UUID,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBuf,
			WriteBufferSize: writeBuf,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and runs the connection until it drops.
// Path: /ws
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	connID := h.uuid.NewUUID()
	client := newClient(connID, conn)
	cleanup := h.hub.Register(client)

	go client.writePump()

	h.hub.Send(connID, broadcast.Event{
		Name: broadcast.EventWelcome,
		Payload: welcomePayload{
			Message:    "Welcome to Friendships Multiplayer!",
			ServerTime: h.clock.Now().UnixMilli(),
			PlayerID:   connID,
		},
	})

	h.readPump(client)

	cleanup()
	h.loop.Submit(func() {
		if err := h.presence.HandleDisconnect(context.Background(), connID); err != nil {
			h.logger.Error("disconnect handling failed",
				zap.String("conn_id", connID),
				zap.Error(err))
		}
	})
}

// readPump decodes inbound frames and submits each one to the event loop.
func (h *Handler) readPump(client *Client) {
	defer func() {
		_ = client.conn.Close()
	}()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("read error", zap.String("conn_id", client.ID), zap.Error(err))
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Event == "" {
			broadcast.SendError(h.hub, client.ID, "Malformed event")
			continue
		}

		connID := client.ID
		h.loop.Submit(func() {
			h.dispatch(connID, env)
		})
	}
}
