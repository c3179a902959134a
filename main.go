package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"student-form/pkg/api"
	"student-form/pkg/config"
	"student-form/pkg/logging"
	"student-form/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize services
	sessions := services.NewSessionManager(cfg.SessionTTL, cfg.MaxRecords, cfg.MaxSessions)
	go sessions.Run(ctx, cfg.SessionSweepInterval, func(removed int) {
		logger.Debug("Expired idle sessions", zap.Int("removed", removed))
	})
	studentService := services.NewStudentService(sessions, logger)

	gin.SetMode(cfg.GinMode)

	router := api.NewRouter(studentService, logger, api.RouterOptions{
		SessionCookie:      cfg.SessionCookie,
		SessionTTL:         cfg.SessionTTL,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
	}()

	// Start the server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
