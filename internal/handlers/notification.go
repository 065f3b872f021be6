package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/averyld/teamtalk/internal/middleware"
	"github.com/averyld/teamtalk/internal/services"
	ws "github.com/averyld/teamtalk/internal/websocket"
)

type NotificationHandler struct {
	notifications *services.NotificationService
	hub           *ws.Hub
	upgrader      websocket.Upgrader
}

func NewNotificationHandler(notifications *services.NotificationService, hub *ws.Hub) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		hub:           hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origins once a frontend origin is fixed
				return true
			},
		},
	}
}

// Get returns the caller's 20 most recent notifications.
func (h *NotificationHandler) Get(c *gin.Context) {
	notifications, err := h.notifications.Get(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// Stream upgrades the request to a websocket carrying the caller's
// notifications as they are created.
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, err := h.notifications.Whoami(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
