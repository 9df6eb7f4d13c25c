// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrew-chang-dewitt/hoops/config"
	"github.com/andrew-chang-dewitt/hoops/db"
	"github.com/andrew-chang-dewitt/hoops/handler"
	"github.com/andrew-chang-dewitt/hoops/logger"
	"github.com/andrew-chang-dewitt/hoops/repository"
	"github.com/andrew-chang-dewitt/hoops/router"
	"github.com/andrew-chang-dewitt/hoops/service"
)

// buildRouter wires repositories, services, and handlers onto a database
// connection. Everything is constructed explicitly here; there is no
// module-level application state.
func buildRouter(database *sql.DB) http.Handler {
	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	envelopeRepo := repository.NewEnvelopeRepository(database)
	envelopeService := service.NewEnvelopeService(envelopeRepo)
	envelopeHandler := handler.NewEnvelopeHandler(envelopeService)

	transactionRepo := repository.NewTransactionRepository(database)
	transactionService := service.NewTransactionService(transactionRepo)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	return router.NewRouter(userHandler, envelopeHandler, transactionHandler)
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate("db/migrations"); err != nil {
		logger.Log.Fatalf("Error migrating the database: %v", err)
	}

	r := buildRouter(database)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles a fully wired router with its backing database handle so
// tests can drive the whole stack in-process.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp wires every layer onto the given database. Tests hand it a
// real connection or a sqlmock one.
func NewTestApp(database *sql.DB) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database),
	}
}
