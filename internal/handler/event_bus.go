// internal/handler/event_bus.go
package handler

import (
	"time"

	"go.uber.org/zap"
)

// Notification is an operator-facing notice about a finished print job.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"` // info, warning, error
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationBus decouples print jobs from connected clients. Publishing
// never blocks the print path; when the buffer is full the notice is
// dropped and logged.
type NotificationBus struct {
	events chan Notification
	logger *zap.Logger
}

// NewNotificationBus creates a new notification bus
func NewNotificationBus(logger *zap.Logger) *NotificationBus {
	return &NotificationBus{
		events: make(chan Notification, 1000),
		logger: logger,
	}
}

// Start drains the bus, delivering each notice through deliver. It blocks
// until the bus is closed and is meant to run on its own goroutine.
func (nb *NotificationBus) Start(deliver func(Notification)) {
	for event := range nb.events {
		deliver(event)
	}
}

// Publish publishes a notification
func (nb *NotificationBus) Publish(notification Notification) {
	select {
	case nb.events <- notification:
	default:
		if nb.logger != nil {
			nb.logger.Warn("Notification bus full, dropping notice",
				zap.String("title", notification.Title),
			)
		}
	}
}

// Close stops the bus; Start returns once the buffer drains.
func (nb *NotificationBus) Close() {
	close(nb.events)
}
