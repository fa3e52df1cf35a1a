package routes

import (
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type EventsRoutes struct {
	handler *handlers.EventsHandler
}

func NewEventsRoutes(handler *handlers.EventsHandler) *EventsRoutes {
	return &EventsRoutes{handler: handler}
}

func (r *EventsRoutes) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/events/ws", r.handler.Stream)
}
