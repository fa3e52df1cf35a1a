package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type GoalsRoutes struct {
	handler    *handlers.GoalsHandler
	validation *middleware.ValidationMiddleware
}

func NewGoalsRoutes(handler *handlers.GoalsHandler, validation *middleware.ValidationMiddleware) *GoalsRoutes {
	return &GoalsRoutes{
		handler:    handler,
		validation: validation,
	}
}

// RegisterRoutes registers goal and subtask routes
func (r *GoalsRoutes) RegisterRoutes(api *gin.RouterGroup) {
	goals := api.Group("/goals")

	goals.GET("", r.handler.ListGoals)
	goals.POST("", r.validation.ValidateRequest(&dto.CreateGoalRequest{}), r.handler.CreateGoal)
	goals.GET("/:id", r.handler.GetGoal)
	goals.DELETE("/:id", r.handler.DeleteGoal)
	goals.PUT("/:id/status", r.validation.ValidateRequest(&dto.UpdateGoalStatusRequest{}), r.handler.UpdateGoalStatus)

	subtasks := goals.Group("/:id/subtasks")
	subtasks.POST("", r.validation.ValidateRequest(&dto.CreateSubtaskRequest{}), r.handler.AddSubtask)
	subtasks.DELETE("/:subtaskId", r.handler.DeleteSubtask)
	subtasks.POST("/:subtaskId/toggle", r.handler.ToggleSubtask)
}
