// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"cinema-reservation/cmd"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/internal/wire"
	"cinema-reservation/internal/worker"
	"cinema-reservation/pkg/broker"
	"cinema-reservation/pkg/database"
	"cinema-reservation/pkg/lock"
	"cinema-reservation/pkg/payment"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// Sweeper lease; without Redis every replica sweeps
	var locker lock.Locker
	redisClient, err := lock.NewRedisClient(ctx, config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, sweeper runs without lease", zap.Error(err))
		locker = lock.NewLocalLocker()
	} else {
		defer redisClient.Close()
		hostname, _ := os.Hostname()
		locker = lock.NewRedisLocker(redisClient, hostname+"-"+uuid.NewString(), logger)
	}

	// Event publisher; without RabbitMQ events are only logged
	publisher, err := broker.NewRabbitPublisher(config.Broker.URL, []string{config.Broker.Queue}, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, booking events are logged only", zap.Error(err))
		publisher = broker.NewLogPublisher(logger)
	}
	defer publisher.Close()

	provider := payment.NewClient(payment.Config{
		BaseURL:     config.Payment.BaseURL,
		ClientID:    config.Payment.ClientID,
		APIKey:      config.Payment.APIKey,
		ChecksumKey: config.Payment.ChecksumKey,
		ReturnURL:   config.Payment.ReturnURL,
		Timeout:     config.Payment.RequestTimeout,
	}, logger)

	clock := utils.SystemClock()

	// Initialize all repositories
	repos := repository.NewRepository(db, config.Database.LockTimeout, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, usecase.Dependencies{
		Clock:     clock,
		Provider:  provider,
		Publisher: publisher,
	}, logger)

	// Hold sweeper
	var wg sync.WaitGroup
	sweeper := worker.NewHoldSweeper(repos.Hold, locker, clock, config.Booking, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Start(ctx)
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("HTTP server stopped with error", zap.Error(err))
	}

	stop()
	wg.Wait()
	logger.Info("Application stopped")
}
