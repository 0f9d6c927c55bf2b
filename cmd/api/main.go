package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecotrack/ecotrack-api/internal/api"
	"github.com/ecotrack/ecotrack-api/internal/core/service"
	"github.com/ecotrack/ecotrack-api/internal/infrastructure/config"
	mongodb "github.com/ecotrack/ecotrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ecotrack/ecotrack-api/internal/infrastructure/db/redis"
	"github.com/ecotrack/ecotrack-api/internal/infrastructure/queue"
	"github.com/ecotrack/ecotrack-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration invalid")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Wiring: repositories → services → router.
	authRepo := mongodb.NewAuthRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	calcRepo := mongodb.NewCalculationRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start()

	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	codec := service.NewJWTCodec(cfg.JWTSecret, service.DefaultTokenTTL)
	cache := redisdb.NewProductCache(rdb, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:        service.NewAuthService(authRepo, hasher, codec, dispatcher, log),
		TokenCodec:         codec,
		ProductService:     service.NewProductService(productRepo, cache, log),
		CalculationService: service.NewCalculationService(calcRepo, log),
		Mongo:              db,
		Redis:              rdb,
		Logger:             log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	// The server is drained, so no new audit events can arrive; flush the
	// buffered ones before exiting.
	dispatcher.Stop()
}
