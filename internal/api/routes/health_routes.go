package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2025-04-17T02:00:00Z"`
	Checks    map[string]string      `json:"checks,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// HealthDetail reports counters for a dependency alongside its check.
type HealthDetail func() map[string]interface{}

// SetupHealthRoutes registers liveness and readiness endpoints. Readiness
// runs every check and answers 503 if any fails.
func SetupHealthRoutes(router *gin.Engine, checks map[string]HealthCheck, details map[string]HealthDetail) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	router.GET("/health/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		resp := HealthResponse{
			Status:    "ready",
			Timestamp: time.Now().UTC(),
			Checks:    make(map[string]string, len(checks)),
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		if len(details) > 0 {
			resp.Details = make(map[string]interface{}, len(details))
			for name, detail := range details {
				resp.Details[name] = detail()
			}
		}
		c.JSON(status, resp)
	})
}
