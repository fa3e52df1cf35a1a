package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type HabitsRoutes struct {
	handler    *handlers.HabitsHandler
	validation *middleware.ValidationMiddleware
}

func NewHabitsRoutes(handler *handlers.HabitsHandler, validation *middleware.ValidationMiddleware) *HabitsRoutes {
	return &HabitsRoutes{
		handler:    handler,
		validation: validation,
	}
}

// RegisterRoutes registers all habit-related routes
func (h *HabitsRoutes) RegisterRoutes(api *gin.RouterGroup) {
	habits := api.Group("/habits")

	// Static paths before :id. The heatmap covers up to a year of days, so compress it.
	habits.GET("", h.handler.ListHabits)
	habits.POST("", h.validation.ValidateRequest(&dto.CreateHabitRequest{}), h.handler.CreateHabit)
	habits.GET("/heatmap", h.validation.ValidateQuery(&dto.HeatmapQuery{}), gzip.Gzip(gzip.DefaultCompression), h.handler.GetHabitHeatmap)

	habits.GET("/:id", h.handler.GetHabit)
	habits.DELETE("/:id", h.handler.DeleteHabit)
	habits.POST("/:id/toggle", h.handler.ToggleHabit)
}
