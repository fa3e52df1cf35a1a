package routes

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type JournalRoutes struct {
	handler    *handlers.JournalHandler
	validation *middleware.ValidationMiddleware
}

func NewJournalRoutes(handler *handlers.JournalHandler, validation *middleware.ValidationMiddleware) *JournalRoutes {
	return &JournalRoutes{
		handler:    handler,
		validation: validation,
	}
}

func (r *JournalRoutes) RegisterRoutes(api *gin.RouterGroup) {
	journal := api.Group("/journal")

	journal.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.ListEntries)
	journal.PUT("", r.validation.ValidateRequest(&dto.SaveJournalRequest{}), r.handler.SaveEntry)
	journal.GET("/:date", r.handler.GetEntry)
	journal.DELETE("/:date", r.handler.DeleteEntry)
}
