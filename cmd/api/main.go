package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/focusflow/focusflow/internal/api/routes"
	"github.com/focusflow/focusflow/internal/app"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Empty path searches the default locations
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.NewLogger(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully",
		zap.String("mode", cfg.Server.Mode),
		zap.String("store", cfg.Store.Driver),
		zap.String("timezone", cfg.Location().String()))

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	backing, err := app.OpenStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer backing.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	backing.StartRelay(ctx)

	notifications := app.SetupNotificationSystem(cfg)
	application := app.New(cfg, backing.Store, log, app.Options{Notifier: notifications.Service})

	readiness := make(map[string]routes.HealthCheck, len(backing.Checks))
	for name, check := range backing.Checks {
		readiness[name] = check
	}
	readinessInfo := make(map[string]routes.HealthDetail, len(backing.Details))
	for name, detail := range backing.Details {
		readinessInfo[name] = detail
	}
	router := routes.NewRouter(routes.RouterConfig{
		CORS:           cfg.CORS,
		Logger:         log,
		CircuitBreaker: middleware.DefaultCircuitBreakerConfig(),
		Readiness:      readiness,
		ReadinessInfo:  readinessInfo,
		RateLimiter:    backing.Limiter,
	}, application.Handlers())

	application.Scheduler.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	stop()
	application.Close()
	notifications.Shutdown()

	log.Info("Server exited properly")
}
