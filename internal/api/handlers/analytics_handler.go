package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the productivity summary and insights
type AnalyticsHandler struct {
	service analytics.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetSummary godoc
// @Summary Productivity summary across tasks, habits, goals and focus
// @Tags analytics
// @Success 200 {object} analytics.Summary
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.Summary(c.Request.Context())})
}

func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": dto.InsightsResponse{
		Insights: h.service.Insights(c.Request.Context()),
	}})
}
