package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type FocusRoutes struct {
	handler    *handlers.FocusHandler
	validation *middleware.ValidationMiddleware
}

func NewFocusRoutes(handler *handlers.FocusHandler, validation *middleware.ValidationMiddleware) *FocusRoutes {
	return &FocusRoutes{
		handler:    handler,
		validation: validation,
	}
}

// RegisterRoutes registers session history, pomodoro timer and note routes
func (r *FocusRoutes) RegisterRoutes(api *gin.RouterGroup) {
	focus := api.Group("/focus")

	focus.GET("/sessions", r.handler.ListSessions)
	focus.POST("/sessions", r.validation.ValidateRequest(&dto.RecordSessionRequest{}), r.handler.RecordSession)

	timer := focus.Group("/timer")
	timer.GET("", r.handler.GetTimer)
	timer.POST("/start", r.handler.StartTimer)
	timer.POST("/pause", r.handler.PauseTimer)
	timer.POST("/reset", r.handler.ResetTimer)
	timer.POST("/preset", r.validation.ValidateRequest(&dto.SelectPresetRequest{}), r.handler.SelectPreset)
	timer.PUT("/settings", r.validation.ValidateRequest(&dto.UpdateTimerSettingsRequest{}), r.handler.UpdateTimerSettings)

	focus.GET("/notes", r.handler.GetNote)
	focus.PUT("/notes", r.validation.ValidateRequest(&dto.SaveNoteRequest{}), r.handler.SaveNote)
}
