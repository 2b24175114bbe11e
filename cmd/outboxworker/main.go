package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"interviewdesk/internal/config"
	"interviewdesk/internal/database"
	"interviewdesk/internal/meet"
	"interviewdesk/internal/outbox"
	"interviewdesk/internal/repository"
)

// Standalone outbox drainer. Run this instead of the API's in-process
// dispatcher when effects should survive API restarts independently.
func main() {
	cfg := config.MustLoad()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var notifier outbox.Notifier = outbox.LogNotifier{}
	if cfg.NotifyWebhookURL != "" {
		notifier = outbox.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}

	var meetLinker outbox.MeetLinker
	if mc, err := meet.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleTokenJSON); err == nil {
		meetLinker = mc
	} else {
		log.Printf("meet links disabled: %v", err)
	}

	dispatcher := outbox.NewDispatcher(
		outbox.NewRepository(db),
		notifier,
		meetLinker,
		repository.NewStudentBookingRepository(db),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("outbox worker started interval=%s", cfg.OutboxInterval)
	if err := dispatcher.Run(ctx, cfg.OutboxInterval); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Println("outbox worker stopped")
}
