package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MinhTam4728/customer-api/internal/api"
	mongodb "github.com/MinhTam4728/customer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/MinhTam4728/customer-api/internal/infrastructure/db/redis"
	"github.com/MinhTam4728/customer-api/internal/pkg/config"
	"github.com/MinhTam4728/customer-api/internal/seed"
	"github.com/MinhTam4728/customer-api/pkg/logger"

	_ "github.com/MinhTam4728/customer-api/docs"
)

// @title Customer API
// @version 1.0
// @description JWT-authenticated customer and order management service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	customerRepo := mongodb.NewCustomerRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create customer indexes")
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create order indexes")
	}

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, customerRepo, orderRepo, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
