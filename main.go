package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/idiya2016/event-dashboard/internal/config"
	"github.com/idiya2016/event-dashboard/internal/dashboard"
	"github.com/idiya2016/event-dashboard/internal/logger"
	"github.com/idiya2016/event-dashboard/internal/notify"
	"github.com/idiya2016/event-dashboard/internal/storage"
)

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting event dashboard core")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	bunDB, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("STORAGE", fmt.Sprintf("Failed to open snapshot store: %v", err))
	}
	defer bunDB.Close()
	logger.LogStorage("OPEN", cfg.Storage.Slot, fmt.Sprintf("Snapshot store ready at %s", cfg.Storage.Path))

	bus := notify.NewBus()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications := bus.Subscribe(ctx)
	go func() {
		for n := range notifications {
			logger.Info("NOTIFY", fmt.Sprintf("[%s] %s", n.Kind, n.Message))
		}
	}()

	app, err := dashboard.New(&storage.DB{Bun: bunDB, Slot: cfg.Storage.Slot}, bus, logger)
	if err != nil {
		logger.Fatal("APP", fmt.Sprintf("Failed to initialize dashboard: %v", err))
	}

	stats := app.Analytics()
	logger.Info("APP", fmt.Sprintf(
		"Restored %d events with %d attendees (%d confirmed, %d pending, %d declined)",
		stats.TotalEvents, stats.TotalAttendees,
		stats.ConfirmedAttendees, stats.PendingAttendees, stats.DeclinedAttendees,
	))
	logger.Info("APP", fmt.Sprintf("%d events in the next 7 days", len(stats.Upcoming)))
}
