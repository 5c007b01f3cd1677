package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seu-repo/medsys/internal/adapter/cli"
	"github.com/seu-repo/medsys/internal/adapter/queue"
	"github.com/seu-repo/medsys/internal/adapter/storage/mongo"
	"github.com/seu-repo/medsys/internal/service/clinic"
	"github.com/seu-repo/medsys/pkg/config"
	"github.com/seu-repo/medsys/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "medsys: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Stdout belongs to the menu.
	log, err := logger.NewStderr(zapcore.WarnLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()
	db, err := mongo.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Warn("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	if cfg.Database.EnsureIndexes {
		if err := db.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	messageQueue := queue.NewNoopQueue()
	if cfg.NATS.Enabled {
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, cfg.NATS.MaxReconnects, cfg.NATS.ReconnectWait, log)
		if err != nil {
			log.Warn("NATS unavailable, events disabled", zap.Error(err))
			messageQueue = queue.NewNoopQueue()
		}
	}
	defer messageQueue.Close()

	service := clinic.NewService(
		mongo.NewPatientRepository(db, log),
		mongo.NewDoctorRepository(db, log),
		mongo.NewAppointmentRepository(db, log),
		messageQueue,
		log,
	)

	return cli.NewConsole(service, os.Stdin, os.Stdout, log).Run(ctx)
}
