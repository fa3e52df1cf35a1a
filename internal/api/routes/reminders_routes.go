package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type RemindersRoutes struct {
	handler    *handlers.RemindersHandler
	validation *middleware.ValidationMiddleware
}

func NewRemindersRoutes(handler *handlers.RemindersHandler, validation *middleware.ValidationMiddleware) *RemindersRoutes {
	return &RemindersRoutes{
		handler:    handler,
		validation: validation,
	}
}

func (r *RemindersRoutes) RegisterRoutes(api *gin.RouterGroup) {
	reminders := api.Group("/reminders")

	reminders.GET("", r.handler.ListReminders)
	reminders.POST("", r.validation.ValidateRequest(&dto.CreateReminderRequest{}), r.handler.AddReminder)
	reminders.DELETE("/:id", r.handler.DeleteReminder)
	reminders.POST("/:id/toggle", r.handler.ToggleReminder)
}
