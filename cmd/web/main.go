package main

import (
	"context"
	"employabilityWeb/cmd/app"
	"employabilityWeb/internal/config"
	handlers "employabilityWeb/internal/handler"
	"employabilityWeb/internal/middleware"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.Session.Secret == "" {
		log.Fatal("SESSION_SECRET is not set in the .env file")
	}

	services, guard := app.App(cfg)
	handler := handlers.NewHandlers(services, guard, cfg)

	handlerChain := middleware.Chain(
		handler.Router(),
		middleware.SecurityHeadersMiddleware,
		middleware.RecoveryMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server started on %s", addr)
		log.Printf("Backend API: %s", cfg.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
