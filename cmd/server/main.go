package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/adapter/http/fiber/router"
	"github.com/seu-repo/medsys/internal/adapter/queue"
	"github.com/seu-repo/medsys/internal/adapter/storage/mongo"
	"github.com/seu-repo/medsys/internal/observability/telemetry"
	"github.com/seu-repo/medsys/internal/service/clinic"
	"github.com/seu-repo/medsys/internal/service/health"
	"github.com/seu-repo/medsys/pkg/config"
	applogger "github.com/seu-repo/medsys/pkg/logger"
)

var seed = flag.Bool("seed", false, "insert the sample doctors when the medicos collection is empty")

func main() {
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Initialize Logger
	logger, err := applogger.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	logger.Info("Starting MedSys web dashboard",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(
			cfg.OpenTelemetry.ServiceName,
			cfg.App.Version,
			cfg.OpenTelemetry.Jaeger.Endpoint,
			cfg.OpenTelemetry.Jaeger.SamplerParam,
		)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize MongoDB
	ctx := context.Background()
	db, err := mongo.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	if cfg.Database.EnsureIndexes {
		if err := db.EnsureIndexes(ctx); err != nil {
			logger.Fatal("Failed to create indexes", zap.Error(err))
		}
	}
	if cfg.Database.Seed || *seed {
		if _, err := db.SeedDoctors(ctx, mongo.SampleDoctors(time.Now())); err != nil {
			logger.Fatal("Failed to seed doctors", zap.Error(err))
		}
	}

	// 5. Initialize Message Queue (NATS)
	messageQueue := queue.NewNoopQueue()
	if cfg.NATS.Enabled {
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, cfg.NATS.MaxReconnects, cfg.NATS.ReconnectWait, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
	}
	defer messageQueue.Close()

	// 6. Initialize Repositories and Services
	patientRepo := mongo.NewPatientRepository(db, logger)
	doctorRepo := mongo.NewDoctorRepository(db, logger)
	appointmentRepo := mongo.NewAppointmentRepository(db, logger)

	clinicService := clinic.NewService(patientRepo, doctorRepo, appointmentRepo, messageQueue, logger)
	healthOpts := []health.Option{health.WithSchema(db)}
	if p, ok := messageQueue.(health.Pinger); ok {
		healthOpts = append(healthOpts, health.WithPinger("nats", p))
	}
	healthService := health.NewService(cfg.App.Version, db, logger, healthOpts...)

	// 7. Initialize Fiber HTTP Server
	app := router.New(router.Deps{
		Config:  cfg,
		Service: clinicService,
		Health:  healthService,
		Log:     logger,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		logger.Info("Starting HTTP Server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 8. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
