package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/stastashpulatov/clinic-bot/internal/appointments"
	"github.com/stastashpulatov/clinic-bot/internal/config"
	"github.com/stastashpulatov/clinic-bot/internal/db"
	"github.com/stastashpulatov/clinic-bot/internal/messaging"
)

func main() {
	log.Println("Appointment Reminder Job - Starting")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Reminders go nowhere without RabbitMQ, so unlike the API this job
	// treats a missing broker as fatal
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	reminderService := appointments.NewReminderService(database, cfg.TablePrefix, publisher)

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	count, err := reminderService.DueTomorrowCount(ctx)
	if err != nil {
		log.Fatalf("Failed to count due appointments: %v", err)
	}

	log.Printf("Found %d confirmed appointments scheduled for tomorrow", count)

	if count == 0 {
		log.Println("No reminders due. Exiting.")
		os.Exit(0)
	}

	sentCount, err := reminderService.SendReminders(ctx)
	if err != nil {
		log.Fatalf("Reminder publishing failed: %v", err)
	}

	log.Printf("✓ Reminder job completed: %d reminder events published", sentCount)
	log.Println("Reminder Job - Finished")
}
