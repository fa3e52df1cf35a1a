package handlers

import (
	"net/http"
	"time"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/events"
	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pongWait         = 60 * time.Second
	pingPeriod       = 30 * time.Second
	maxMessageSize   = 1024 * 10
	storeEventBuffer = 64
)

// StoreSubscriber is the part of the store the event stream listens to.
type StoreSubscriber interface {
	Subscribe(fn events.Handler) func()
}

// EventsHandler streams notifications and store changes over a websocket
// so open clients can refresh without polling.
type EventsHandler struct {
	notifications notification.Service
	store         StoreSubscriber
	logger        *logger.Logger
	upgrader      websocket.Upgrader
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(notifications notification.Service, store StoreSubscriber, log *logger.Logger) *EventsHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &EventsHandler{
		notifications: notifications,
		store:         store,
		logger:        log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Stream godoc
// @Summary Live notifications and store change events
// @Tags events
// @Router /api/events/ws [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	var notifChan <-chan *notification.Notification
	if h.notifications != nil {
		ch, cancel, err := h.notifications.Subscribe()
		if err != nil {
			h.logger.Error("Failed to subscribe to notifications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe to notifications"})
			return
		}
		defer cancel()
		notifChan = ch
	}

	storeChan := make(chan events.StoreEvent, storeEventBuffer)
	if h.store != nil {
		unsubscribe := h.store.Subscribe(func(e events.StoreEvent) {
			select {
			case storeChan <- e:
			default:
				h.logger.Warn("Dropping store event for slow websocket client", zap.String("key", e.Key))
			}
		})
		defer unsubscribe()
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade to WebSocket",
			zap.Error(err),
			zap.String("remote_addr", c.Request.RemoteAddr))
		return
	}
	defer func() {
		ws.Close()
		h.logger.Info("WebSocket connection closed", zap.String("remote_addr", c.Request.RemoteAddr))
	}()
	h.logger.Info("WebSocket connection opened", zap.String("remote_addr", c.Request.RemoteAddr))

	ws.SetReadLimit(maxMessageSize)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	done := make(chan struct{})

	// The stream is server to client only; reads just drive the pong handler
	// and detect disconnects.
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure) {
					h.logger.Warn("WebSocket read error", zap.Error(err))
				}
				return
			}
		}
	}()

	for {
		select {
		case n, ok := <-notifChan:
			if !ok {
				return
			}
			if err := ws.WriteJSON(dto.NotificationMessage(n)); err != nil {
				h.logger.Warn("WebSocket write error", zap.Error(err))
				return
			}

		case e := <-storeChan:
			if err := ws.WriteJSON(dto.StoreMessage(e)); err != nil {
				h.logger.Warn("WebSocket write error", zap.Error(err))
				return
			}

		case <-pingTicker.C:
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Warn("WebSocket ping error", zap.Error(err))
				return
			}

		case <-done:
			return
		}
	}
}
