package routes

import (
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type AnalyticsRoutes struct {
	handler *handlers.AnalyticsHandler
}

func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler) *AnalyticsRoutes {
	return &AnalyticsRoutes{handler: handler}
}

func (r *AnalyticsRoutes) RegisterRoutes(api *gin.RouterGroup) {
	analytics := api.Group("/analytics")

	analytics.GET("", r.handler.GetSummary)
	analytics.GET("/insights", r.handler.GetInsights)
}
