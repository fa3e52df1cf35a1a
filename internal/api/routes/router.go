package routes

import (
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Tasks     *handlers.TaskHandler
	Habits    *handlers.HabitsHandler
	Goals     *handlers.GoalsHandler
	Journal   *handlers.JournalHandler
	Focus     *handlers.FocusHandler
	Reminders *handlers.RemindersHandler
	Assistant *handlers.AssistantHandler
	Analytics *handlers.AnalyticsHandler
	Settings  *handlers.SettingsHandler
	Events    *handlers.EventsHandler
}

// RouterConfig carries the cross-cutting settings for NewRouter.
type RouterConfig struct {
	CORS           config.CORSConfig
	Logger         *logger.Logger
	CircuitBreaker middleware.CircuitBreakerConfig
	Readiness      map[string]HealthCheck
	ReadinessInfo  map[string]HealthDetail
	RateLimiter    middleware.RateLimiter
}

// NewRouter builds the gin engine with middleware, health, metrics and the /api routes.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	SetupHealthRoutes(router, cfg.Readiness, cfg.ReadinessInfo)

	validation := middleware.NewValidationMiddleware(log)
	metrics := middleware.NewMetricsMiddleware()
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg == (middleware.CircuitBreakerConfig{}) {
		breakerCfg = middleware.DefaultCircuitBreakerConfig()
	}
	breaker := middleware.NewCircuitBreaker(breakerCfg, log)

	api := router.Group("/api")
	api.Use(metrics.CollectMetrics())
	api.Use(breaker.CircuitBreakerMiddleware())

	NewTaskRoutes(h.Tasks, validation).RegisterRoutes(api)
	NewHabitsRoutes(h.Habits, validation).RegisterRoutes(api)
	NewGoalsRoutes(h.Goals, validation).RegisterRoutes(api)
	NewJournalRoutes(h.Journal, validation).RegisterRoutes(api)
	NewFocusRoutes(h.Focus, validation).RegisterRoutes(api)
	NewRemindersRoutes(h.Reminders, validation).RegisterRoutes(api)
	NewAssistantRoutes(h.Assistant, validation, middleware.RateLimitMiddleware(cfg.RateLimiter, log)).RegisterRoutes(api)
	NewAnalyticsRoutes(h.Analytics).RegisterRoutes(api)
	NewSettingsRoutes(h.Settings, validation).RegisterRoutes(api)
	if h.Events != nil {
		NewEventsRoutes(h.Events).RegisterRoutes(api)
	}

	for _, route := range router.Routes() {
		log.Debug("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path))
	}

	return router
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.Config{
		AllowMethods:     c.AllowedMethods,
		AllowHeaders:     append([]string{"Accept-Encoding", "Content-Encoding", "Content-Type"}, c.AllowedHeaders...),
		ExposeHeaders:    []string{"Content-Length", "Content-Encoding"},
		AllowCredentials: c.AllowCredentials,
		AllowWebSockets:  true,
	}
	if len(c.AllowedOrigins) == 0 || contains(c.AllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = c.AllowedOrigins
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	return cfg
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
