package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// TaskRoutes handles the setup of planner task routes
type TaskRoutes struct {
	handler    *handlers.TaskHandler
	validation *middleware.ValidationMiddleware
}

// NewTaskRoutes creates a new TaskRoutes instance
func NewTaskRoutes(handler *handlers.TaskHandler, validation *middleware.ValidationMiddleware) *TaskRoutes {
	return &TaskRoutes{
		handler:    handler,
		validation: validation,
	}
}

// RegisterRoutes registers all task-related routes
func (r *TaskRoutes) RegisterRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")

	tasks.GET("", r.handler.ListTasks)
	tasks.POST("", r.validation.ValidateRequest(&dto.CreateTaskRequest{}), r.handler.CreateTask)
	tasks.PUT("/:id", r.validation.ValidateRequest(&dto.UpdateTaskRequest{}), r.handler.UpdateTask)
	tasks.DELETE("/:id", r.handler.DeleteTask)
	tasks.POST("/:id/toggle", r.handler.ToggleTask)
}
