package stream

import (
	"net/http"
	"time"

	"campus/config"

	"github.com/gin-gonic/gin"
)

// ServeSSE handles GET /api/events/:userId. EventSource cannot set request
// headers, so this endpoint is unauthenticated; the path carries the user id.
func ServeSSE(cfg *config.StreamConfig, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.String(http.StatusBadRequest, "userId is required")
			return
		}

		w := c.Writer
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			c.String(http.StatusInternalServerError, "streaming unsupported")
			return
		}

		client := hub.Register(userID)
		defer client.Close()

		// Connect marker so the client knows the stream is live.
		if _, err := w.Write([]byte("data: {\"type\":\"connected\"}\n\n")); err != nil {
			return
		}
		flusher.Flush()

		// Heartbeat comments keep intermediaries from idling the connection
		// out; the ticker dies with this handler.
		heartbeat := time.NewTicker(cfg.HeartbeatInterval)
		defer heartbeat.Stop()

		done := c.Request.Context().Done()
		for {
			select {
			case <-done:
				return
			case <-heartbeat.C:
				if _, err := w.Write([]byte(": ping\n\n")); err != nil {
					return
				}
				flusher.Flush()
			case frame, ok := <-client.Send:
				if !ok {
					return
				}
				if _, err := w.Write([]byte("data: ")); err != nil {
					return
				}
				if _, err := w.Write(frame); err != nil {
					return
				}
				if _, err := w.Write([]byte("\n\n")); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
