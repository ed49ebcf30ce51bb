package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parallel-pi/internal/config"
	"parallel-pi/internal/db"
	"parallel-pi/internal/logger"
	"parallel-pi/internal/orchestrator"
)

func main() {
	config.InitConfig(".env")
	logger.InitClientLogger()
	defer logger.CloseLogger()

	if config.AppConfig.JWTSecret == "" {
		logger.ERROR.Fatal("JWT_SECRET not set")
	}

	if err := db.InitDB(); err != nil {
		logger.ERROR.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	closeEvaluator, err := orchestrator.InitEvaluator()
	if err != nil {
		logger.ERROR.Fatalf("Failed to initialize evaluator: %v", err)
	}
	defer closeEvaluator()

	httpServer := &http.Server{
		Addr:    ":" + config.AppConfig.ServerPort,
		Handler: orchestrator.NewRouter(),
	}

	go func() {
		logger.INFO.Println("HTTP server listening on port " + config.AppConfig.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ERROR.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.INFO.Println("Shutdown signal received, stopping HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ERROR.Printf("HTTP server shutdown: %v", err)
	}
	logger.INFO.Println("Orchestrator stopped")
}
