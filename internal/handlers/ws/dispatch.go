package ws

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/friendships-game/partyserver/internal/broadcast"
	"github.com/friendships-game/partyserver/internal/services/party"
	"github.com/friendships-game/partyserver/internal/services/turns"
	"go.uber.org/zap"
)

// Inbound event names.
const (
	eventCreateGame        = "create_game"
	eventJoinGame          = "join_game"
	eventStartGame         = "start_game"
	eventPlayerAction      = "player_action"
	eventHelpPlayer        = "help_player"
	eventShareSuper        = "share_super"
	eventChangeEnvironment = "change_environment"
	eventTurnEnded         = "turn_ended"
	eventChatMessage       = "chat_message"
	eventUpdateStatus      = "update_status"
	eventRejoinGame        = "rejoin_game"
	eventLeaveGame         = "leave_game"
	eventPing              = "ping"
)

// Inbound payloads, field names per the wire protocol.

type createGameRequest struct {
	PlayerName  string `json:"playerName"`
	Avatar      string `json:"avatar"`
	Environment string `json:"environment"`
}

type joinGameRequest struct {
	GameID      string `json:"gameId"`
	PlayerName  string `json:"playerName"`
	Avatar      string `json:"avatar"`
	Environment string `json:"environment"`
}

type startGameRequest struct {
	GameID string `json:"gameId"`
}

type playerActionRequest struct {
	GameID      string `json:"gameId"`
	PlayerID    string `json:"playerId"`
	ActionID    string `json:"actionId"`
	FriendName  string `json:"friendName"`
	Time        int    `json:"time"`
	Energy      int    `json:"energy"`
	SuperEnergy int    `json:"superEnergy"`
}

type helpPlayerRequest struct {
	GameID      string `json:"gameId"`
	PlayerID    string `json:"playerId"`
	TargetID    string `json:"targetId"`
	EnergyBonus int    `json:"energyBonus"`
}

type shareSuperRequest struct {
	GameID     string `json:"gameId"`
	PlayerID   string `json:"playerId"`
	TargetID   string `json:"targetId"`
	SuperBonus int    `json:"superBonus"`
}

type changeEnvironmentRequest struct {
	GameID         string `json:"gameId"`
	PlayerID       string `json:"playerId"`
	NewEnvironment string `json:"newEnvironment"`
	NewTime        int    `json:"newTime"`
}

type turnEndedRequest struct {
	GameID      string `json:"gameId"`
	PlayerID    string `json:"playerId"`
	Time        int    `json:"time"`
	Energy      int    `json:"energy"`
	SuperEnergy int    `json:"superEnergy"`
}

type chatMessageRequest struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Message  string `json:"message"`
}

type updateStatusRequest struct {
	GameID string `json:"gameId"`
}

type rejoinGameRequest struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

type leaveGameRequest struct {
	GameID string `json:"gameId"`
}

// dispatch routes one inbound event. It runs on the event loop; handlers
// execute to completion before the next event is picked up. A panic in one
// handler is contained to that event.
func (h *Handler) dispatch(connID string, env envelope) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("handler panic",
				zap.String("event", env.Event),
				zap.String("conn_id", connID),
				zap.Any("panic", r))
			broadcast.SendError(h.hub, connID, "Internal server error")
		}
	}()

	ctx := context.Background()

	switch env.Event {
	case eventCreateGame:
		var req createGameRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_, err := h.party.CreateGame(ctx, &party.CreateGameInput{
			ConnID:      connID,
			PlayerName:  req.PlayerName,
			Avatar:      req.Avatar,
			Environment: req.Environment,
		})
		h.reportError(connID, err, "Invalid data for creating a game")

	case eventJoinGame:
		var req joinGameRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_, err := h.party.JoinGame(ctx, &party.JoinGameInput{
			GameID:      req.GameID,
			ConnID:      connID,
			PlayerName:  req.PlayerName,
			Avatar:      req.Avatar,
			Environment: req.Environment,
		})
		h.reportError(connID, err, "Invalid data for joining a game")

	case eventStartGame:
		var req startGameRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_, err := h.party.StartGame(ctx, &party.StartGameInput{
			GameID: req.GameID,
			ConnID: connID,
		})
		h.reportError(connID, err, "")

	case eventPlayerAction:
		var req playerActionRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.turns.PlayerAction(ctx, &turns.PlayerActionInput{
			GameID:      req.GameID,
			PlayerID:    req.PlayerID,
			ActionID:    req.ActionID,
			FriendName:  req.FriendName,
			Time:        req.Time,
			Energy:      req.Energy,
			SuperEnergy: req.SuperEnergy,
		})

	case eventHelpPlayer:
		var req helpPlayerRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.turns.HelpPlayer(ctx, &turns.HelpPlayerInput{
			GameID:      req.GameID,
			PlayerID:    req.PlayerID,
			TargetID:    req.TargetID,
			EnergyBonus: req.EnergyBonus,
		})

	case eventShareSuper:
		var req shareSuperRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.turns.ShareSuper(ctx, &turns.ShareSuperInput{
			GameID:     req.GameID,
			PlayerID:   req.PlayerID,
			TargetID:   req.TargetID,
			SuperBonus: req.SuperBonus,
		})

	case eventChangeEnvironment:
		var req changeEnvironmentRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.turns.ChangeEnvironment(ctx, &turns.ChangeEnvironmentInput{
			GameID:         req.GameID,
			PlayerID:       req.PlayerID,
			NewEnvironment: req.NewEnvironment,
			NewTime:        req.NewTime,
		})

	case eventTurnEnded:
		var req turnEndedRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.turns.EndTurn(ctx, &turns.EndTurnInput{
			GameID:      req.GameID,
			PlayerID:    req.PlayerID,
			Time:        req.Time,
			Energy:      req.Energy,
			SuperEnergy: req.SuperEnergy,
		})

	case eventChatMessage:
		var req chatMessageRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.party.SendChat(ctx, &party.SendChatInput{
			GameID:   req.GameID,
			PlayerID: req.PlayerID,
			Message:  req.Message,
		})

	case eventUpdateStatus:
		var req updateStatusRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.party.UpdateStatus(ctx, &party.UpdateStatusInput{
			GameID: req.GameID,
			ConnID: connID,
		})

	case eventRejoinGame:
		var req rejoinGameRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_, err := h.party.RejoinGame(ctx, &party.RejoinGameInput{
			GameID:   req.GameID,
			PlayerID: req.PlayerID,
			ConnID:   connID,
		})
		h.reportError(connID, err, "")

	case eventLeaveGame:
		var req leaveGameRequest
		if !h.decode(connID, env.Data, &req) {
			return
		}
		_ = h.party.LeaveGame(ctx, &party.LeaveGameInput{
			GameID: req.GameID,
			ConnID: connID,
		})

	case eventPing:
		h.handlePing(connID, env.Data)

	default:
		h.logger.Debug("unknown event",
			zap.String("event", env.Event),
			zap.String("conn_id", connID))
	}
}

// handlePing echoes the payload back with a server timestamp merged in.
func (h *Handler) handlePing(connID string, data json.RawMessage) {
	payload := map[string]any{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &payload)
	}
	payload["timestamp"] = h.clock.Now().UnixMilli()

	h.hub.Send(connID, broadcast.Event{
		Name:    broadcast.EventPong,
		Payload: payload,
	})
}

func (h *Handler) decode(connID string, data json.RawMessage, v any) bool {
	if len(data) == 0 {
		broadcast.SendError(h.hub, connID, "Malformed event")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		broadcast.SendError(h.hub, connID, "Malformed event")
		return false
	}
	return true
}

// reportError maps a lifecycle error to an error event on the originating
// connection. missingMsg customizes the missing-fields message per event.
func (h *Handler) reportError(connID string, err error, missingMsg string) {
	if err == nil {
		return
	}

	var message string
	switch {
	case errors.Is(err, party.ErrMissingFields):
		message = missingMsg
		if message == "" {
			message = "Missing required fields"
		}
	case errors.Is(err, party.ErrGameNotFound):
		message = "Game not found. Check the code."
	case errors.Is(err, party.ErrGameStarted):
		message = "The game has already started"
	case errors.Is(err, party.ErrGameFull):
		message = "The game is full (max 6 players)"
	case errors.Is(err, party.ErrNameTaken):
		message = "That name is already taken in this game"
	case errors.Is(err, party.ErrNotHost):
		message = "Only the host can start the game"
	case errors.Is(err, party.ErrNotEnoughPlayers):
		message = "Need at least 2 players to start"
	case errors.Is(err, party.ErrPlayerNotFound):
		message = "Player not found in this game"
	default:
		h.logger.Error("handler error", zap.Error(err))
		message = "Internal server error"
	}

	broadcast.SendError(h.hub, connID, message)
}
