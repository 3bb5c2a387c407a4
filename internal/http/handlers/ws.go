package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// BoardingFeed upgrades the connection and streams boarding status changes
// to the dispatch board until the client disconnects.
func BoardingFeed(c *gin.Context) {
	hub := getHub()
	if hub == nil {
		respondError(c, http.StatusServiceUnavailable, "ws_unavailable", "feed de embarque indisponível", nil)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	id := hub.Add(conn)

	// drain client frames; a read error means the peer is gone
	go func() {
		defer hub.Remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
