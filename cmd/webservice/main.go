package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimikegami/shopigo/config"
	"github.com/alimikegami/shopigo/internal/app"
	"github.com/alimikegami/shopigo/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/shopigo/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/shopigo/internal/infrastructure/tracing"
	"github.com/alimikegami/shopigo/internal/repository"
	"github.com/alimikegami/shopigo/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.CreateNewConfig()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.TracingConfig.ServiceName).Logger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(cfg.TracingConfig.CollectorHost, cfg.TracingConfig.ServiceName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracing")
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown tracer provider")
			}
		}()
	}

	var repo repository.ProductRepository
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("Using the in-memory product store, data is not persisted")
		repo = repository.CreateNewMemoryRepository()
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		db, err := mongodb.ConnectToMongoDB(connectCtx, cfg.MongoDBConfig.ConnectionURI(), cfg.MongoDBConfig.DBName)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
			}
		}()

		log.Info().Str("database", cfg.MongoDBConfig.DBName).Msg("Connected to MongoDB")
		repo = repository.CreateNewMongoDBRepository(db)
	}

	var publisher service.EventPublisher
	if cfg.KafkaConfig.BrokerAddress != "" {
		producer := kafka.CreateKafkaProducer(cfg)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close kafka producer")
			}
		}()
		publisher = producer
	}

	application := app.App{
		Config:     cfg,
		Repository: repo,
		Publisher:  publisher,
	}
	application.NewServer()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped unexpectedly")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		if err := application.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server gracefully")
		}
	}
}
