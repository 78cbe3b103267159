package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-tracker-api/config"
	"job-tracker-api/internal/app"
	"job-tracker-api/internal/auth"
	"job-tracker-api/internal/calendar"
	"job-tracker-api/internal/database"
	"job-tracker-api/internal/server"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationMinutes)*time.Minute)

	var exporter calendar.Exporter = calendar.Disabled{}
	if cfg.Calendar.WebhookURL != "" {
		exporter = calendar.NewWebhookExporter(cfg.Calendar.WebhookURL)
		log.Printf("Calendar export enabled via webhook")
	} else {
		log.Println("Calendar export disabled (no webhook URL configured)")
	}

	validate := validator.New()

	application := &app.Application{
		Config:    cfg,
		DBPool:    dbPool,
		Validator: validate,
		Tokens:    tokens,
		Exporter:  exporter,
	}

	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
