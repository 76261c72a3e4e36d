// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ginmongo/app"
	"ginmongo/config"
	"ginmongo/handlers"
	"ginmongo/middleware"
	"ginmongo/routes"
	"ginmongo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	application := app.New(router, app.WithLogger(logger))

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	if err := application.Connect(connectCtx, config.AppConfig); err != nil {
		cancelConnect()
		logger.Sugar().Fatalf("main: failed to connect backing services: %v", err)
	}
	cancelConnect()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	monitor := application.HealthMonitor()
	monitor.Start(monitorCtx, config.AppConfig.HealthCheckInterval)

	if err := routes.RegisterRoutes(application, handlers.NewHandlerBundle(monitor), config.AppConfig.CORSAllowOrigins); err != nil {
		logger.Sugar().Fatalf("main: failed to register routes: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           application,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := application.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to close clients: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
