package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpx "github.com/stastashpulatov/clinic-bot/internal/http"

	"github.com/stastashpulatov/clinic-bot/internal/config"
	"github.com/stastashpulatov/clinic-bot/internal/db"
	"github.com/stastashpulatov/clinic-bot/internal/messaging"
	"github.com/stastashpulatov/clinic-bot/internal/schedule"
	"github.com/stastashpulatov/clinic-bot/internal/telemetry"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("clinic-bot-api starting")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := telemetry.LoadConfig()
	telemetryProvider, err := telemetry.InitProvider(ctx, telemetryCfg)
	if err != nil {
		log.Printf("Warning: failed to initialize telemetry: %v", err)
	}
	if telemetryProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := telemetryProvider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: failed to initialize metrics: %v", err)
		metrics = nil
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// The API keeps serving without RabbitMQ; events are simply dropped
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: failed to connect to RabbitMQ: %v", err)
		log.Println("Service will continue without event publishing")
		publisher = nil
	}
	if publisher != nil {
		defer publisher.Close()
	}

	grid, err := schedule.Load(cfg.ScheduleFile)
	if err != nil {
		log.Fatalf("Failed to load schedule configuration: %v", err)
	}
	log.Printf("✓ Schedule loaded: %s-%s, lunch %s-%s, %d minute slots",
		grid.WorkStart, grid.WorkEnd, grid.LunchStart, grid.LunchEnd, grid.SlotMinutes)

	router := httpx.SetupRouter(database, cfg, grid, publisher, metrics)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpx.CORSMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✓ clinic-bot-api listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}
