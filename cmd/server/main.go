// Package main initializes and starts the task tracker HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/andreluizn/tasktrack/internal/config"
	"github.com/andreluizn/tasktrack/internal/db"
	"github.com/andreluizn/tasktrack/internal/logger"
	"github.com/andreluizn/tasktrack/internal/repository"
	"github.com/andreluizn/tasktrack/internal/server/handler/http"
	"github.com/andreluizn/tasktrack/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing key is never hard-coded; refuse to start without one.
	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT signing secret is required: set JWT_SECRET or the JWTSecret config field")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and tasks.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)

	// Initialize business-logic services.
	tokenService := service.NewTokenService([]byte(options.JWTSecret), options.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	taskService := service.NewTaskService(taskRepo)

	// Create HTTP handlers for the auth and task endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	taskHandler := &http.TaskHandler{TaskService: taskService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, taskHandler, tokenService, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
