package stream

import (
	"net/http"
	"time"

	"campus/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS handles GET /ws/events?userId=. It is the WebSocket counterpart of
// the SSE stream and shares the same hub, so a browser tab may use either.
func ServeWS(cfg *config.StreamConfig, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.String(http.StatusBadRequest, "userId is required")
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		client := hub.Register(userID)
		defer client.Close()

		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"connected"}`))
		go writePump(cfg, client, conn)
		readPump(conn)
	}
}

// writePump copies frames from the client channel to the connection and
// pings on the heartbeat interval.
func writePump(cfg *config.StreamConfig, c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case frame, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection until the peer goes away.
func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
