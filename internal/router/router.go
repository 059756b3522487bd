package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/friendships-game/partyserver/internal/handlers/httpapi"
	"github.com/friendships-game/partyserver/internal/handlers/ws"
)

// New builds the HTTP router.
func New(api *httpapi.Handler, gateway *ws.Handler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/status", api.Status)
	r.GET("/api/games", api.Games)

	r.GET("/ws", gateway.ServeWS)

	return r
}
