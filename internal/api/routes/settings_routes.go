package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsRoutes struct {
	handler    *handlers.SettingsHandler
	validation *middleware.ValidationMiddleware
}

func NewSettingsRoutes(handler *handlers.SettingsHandler, validation *middleware.ValidationMiddleware) *SettingsRoutes {
	return &SettingsRoutes{
		handler:    handler,
		validation: validation,
	}
}

func (r *SettingsRoutes) RegisterRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")

	settings.GET("/theme", r.handler.GetTheme)
	settings.PUT("/theme", r.validation.ValidateRequest(&dto.ThemeRequest{}), r.handler.SetTheme)
	settings.POST("/theme/toggle", r.handler.ToggleTheme)
}
