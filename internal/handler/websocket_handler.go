// internal/handler/websocket_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

// NotificationHandler pushes print-job notices to the retail ledger UI
// over WebSocket. It implements service.Notifier.
type NotificationHandler struct {
	upgrader    websocket.Upgrader
	connections *ConnectionManager
	bus         *NotificationBus
	logger      *utils.ServiceLogger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(logger *zap.Logger) *NotificationHandler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// CORS middleware already gates the HTTP surface
			return true
		},
	}

	handler := &NotificationHandler{
		upgrader:    upgrader,
		connections: NewConnectionManager(),
		bus:         NewNotificationBus(logger),
		logger:      utils.NewServiceLogger(logger, "notification-handler"),
	}

	// Start notification delivery
	go handler.bus.Start(handler.broadcast)

	return handler
}

// RegisterRoutes registers WebSocket routes
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications", h.HandleConnection)
}

// Notify publishes an operator notice to every connected client.
func (h *NotificationHandler) Notify(title, description, severity string) {
	h.bus.Publish(Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		Timestamp:   time.Now(),
	})
}

// HandleConnection upgrades the request and keeps the client registered
// until it disconnects.
func (h *NotificationHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	client := &Client{
		ID:          uuid.New().String(),
		Connection:  conn,
		Send:        make(chan []byte, 256),
		UserAgent:   c.Request.UserAgent(),
		RemoteAddr:  c.Request.RemoteAddr,
		ConnectedAt: time.Now(),
	}

	h.connections.Register(client)
	h.logger.Info("Notification client connected",
		zap.String("client_id", client.ID),
		zap.String("remote_addr", client.RemoteAddr),
	)

	go h.handleClientRead(client)
	go h.handleClientWrite(client)
}

// handleClientRead drains the client. Notifications are one-way; inbound
// frames only keep the connection alive.
func (h *NotificationHandler) handleClientRead(client *Client) {
	defer func() {
		h.connections.Unregister(client)
		client.Connection.Close()
	}()

	client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Connection.SetPongHandler(func(string) error {
		client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Connection.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
			}
			break
		}
	}
}

// handleClientWrite handles writing messages to WebSocket client
func (h *NotificationHandler) handleClientWrite(client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		client.Connection.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Connection.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Connection.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Error("WebSocket write error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
				return
			}

		case <-ticker.C:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// broadcast delivers one notification to all connected clients.
func (h *NotificationHandler) broadcast(notification Notification) {
	messageBytes, err := json.Marshal(notification)
	if err != nil {
		h.logger.Error("Failed to marshal notification", zap.Error(err))
		return
	}

	for _, client := range h.connections.GetClients() {
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("Client send channel full, dropping notification",
				zap.String("client_id", client.ID),
			)
		}
	}
}

// GetConnectionStats returns connection statistics
func (h *NotificationHandler) GetConnectionStats() *ConnectionStats {
	return h.connections.GetStats()
}
