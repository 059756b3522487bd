package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/friendships-game/partyserver/internal/common/clock"
	"github.com/friendships-game/partyserver/internal/common/eventloop"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
)

// Version reported by the status endpoint.
const Version = "1.0.0"

// Handler serves the read-only status and listing endpoints. Responses are
// built on the event loop so the reads never interleave with game mutation;
// the request goroutine only waits for the finished snapshot.
type Handler struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	loop        eventloop.Submitter
	startedAt   time.Time
}

// New creates the HTTP API handler.
func New(repo sessionRepo.Repository, clk clock.Clock, loop eventloop.Submitter) *Handler {
	return &Handler{
		sessionRepo: repo,
		clock:       clk,
		loop:        loop,
		startedAt:   clk.Now(),
	}
}

type statusResponse struct {
	Status  string  `json:"status"`
	Games   int     `json:"games"`
	Players int     `json:"players"`
	Uptime  float64 `json:"uptime"`
	Version string  `json:"version"`
}

type gameSummary struct {
	ID         string `json:"id"`
	Host       string `json:"host"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Started    bool   `json:"started"`
	Day        int    `json:"day"`
}

type gamesResponse struct {
	Games []gameSummary `json:"games"`
}

// Status reports aggregate counts and process uptime.
// GET /api/status
func (h *Handler) Status(c *gin.Context) {
	type result struct {
		resp statusResponse
		err  error
	}
	ch := make(chan result, 1)

	ctx := c.Request.Context()
	h.loop.Submit(func() {
		out, err := h.sessionRepo.ListGames(ctx, &sessionRepo.ListGamesInput{})
		if err != nil {
			ch <- result{err: err}
			return
		}
		players, err := h.sessionRepo.CountPlayers(ctx)
		if err != nil {
			ch <- result{err: err}
			return
		}
		ch <- result{resp: statusResponse{
			Status:  "online",
			Games:   len(out.Games),
			Players: players,
			Uptime:  h.clock.Now().Sub(h.startedAt).Seconds(),
			Version: Version,
		}}
	})

	r := <-ch
	if r.err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, r.resp)
}

// Games enumerates live games.
// GET /api/games
func (h *Handler) Games(c *gin.Context) {
	type result struct {
		resp gamesResponse
		err  error
	}
	ch := make(chan result, 1)

	ctx := c.Request.Context()
	h.loop.Submit(func() {
		out, err := h.sessionRepo.ListGames(ctx, &sessionRepo.ListGamesInput{})
		if err != nil {
			ch <- result{err: err}
			return
		}
		games := make([]gameSummary, 0, len(out.Games))
		for _, g := range out.Games {
			games = append(games, gameSummary{
				ID:         g.ID,
				Host:       g.HostName(),
				Players:    len(g.Players),
				MaxPlayers: models.MaxPlayers,
				Started:    g.Started,
				Day:        g.Day,
			})
		}
		ch <- result{resp: gamesResponse{Games: games}}
	})

	r := <-ch
	if r.err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, r.resp)
}
