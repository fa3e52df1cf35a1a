package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type AssistantRoutes struct {
	handler    *handlers.AssistantHandler
	validation *middleware.ValidationMiddleware
	limit      gin.HandlerFunc
}

// NewAssistantRoutes mounts the assistant endpoints; limit guards the ones that generate replies.
func NewAssistantRoutes(handler *handlers.AssistantHandler, validation *middleware.ValidationMiddleware, limit gin.HandlerFunc) *AssistantRoutes {
	return &AssistantRoutes{
		handler:    handler,
		validation: validation,
		limit:      limit,
	}
}

func (r *AssistantRoutes) RegisterRoutes(api *gin.RouterGroup) {
	assistant := api.Group("/assistant")

	assistant.GET("/messages", gzip.Gzip(gzip.DefaultCompression), r.handler.ListMessages)
	assistant.POST("/messages", r.limit, r.validation.ValidateRequest(&dto.SendMessageRequest{}), r.handler.SendMessage)
	assistant.DELETE("/messages", r.handler.ClearMessages)
	assistant.POST("/voice", r.limit, r.validation.ValidateRequest(&dto.VoiceCommandRequest{}), r.handler.VoiceCommand)
}
