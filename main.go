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

	"github.com/joho/godotenv"
	"github.com/jsoler/finplan-be/internal/ai"
	"github.com/jsoler/finplan-be/internal/api"
	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/config"
	"github.com/jsoler/finplan-be/internal/database"
	"github.com/jsoler/finplan-be/internal/logger"
	"github.com/jsoler/finplan-be/internal/services"
)

func main() {
	// Load .env if present (ok if missing in prod)
	_ = godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	userService := services.NewUserService(db)
	financeService := services.NewFinanceService(db)
	settingsService := services.NewSettingsService(db)
	planService := services.NewPlanService(settingsService, ai.NewClient(cfg.AI))

	// Set up router
	router := api.NewRouter(cfg.CORSOrigin, tokens, userService, financeService, settingsService, planService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
