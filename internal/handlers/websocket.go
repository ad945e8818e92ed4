package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/thereayou/devconnector/internal/logger"
	"github.com/thereayou/devconnector/internal/middleware"
	ws "github.com/thereayou/devconnector/internal/websocket"
)

// WebSocketHandler отдаёт ленту событий постов
type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler пустой allowedOrigins разрешает любой origin
func NewWebSocketHandler(hub *ws.Hub, allowedOrigins []string) *WebSocketHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// HandleWebSocket обрабатывает WebSocket соединения
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	me := middleware.CurrentUser(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.LogEf("websocket upgrade: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, me.ID)
	if err := h.hub.Register(client); err != nil {
		logger.LogEf("websocket register: %v", err)
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
