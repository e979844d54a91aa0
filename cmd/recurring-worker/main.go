package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rupeerise/internal/amqp"
	"rupeerise/internal/config"
	"rupeerise/internal/log"
	"rupeerise/internal/services"
	"rupeerise/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig()).WithComponent(log.ComponentRecurring)
	log.SetDefault(logger)

	logger.Info("Starting recurring-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open SQLite repository", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	var publisher services.Publisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, materialized transactions will not be fanned out", log.FieldError, err)
		} else {
			defer amqpClient.Close()
			publisher = amqpClient
		}
	}

	ledger := services.NewLedgerService(repo, publisher)
	processor := services.NewRecurringProcessor(repo, ledger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	runOnce := func() {
		processed, err := processor.ProcessDue(ctx, time.Now())
		if err != nil {
			logger.Error("Recurring processing failed", log.FieldError, err)
			return
		}
		if processed > 0 {
			logger.Info("Recurring templates processed", "count", processed)
		}
	}

	// Process immediately on startup, then on the configured interval.
	runOnce()

	ticker := time.NewTicker(cfg.RecurringProcessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Recurring worker stopped")
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
