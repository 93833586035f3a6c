package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"message-composer/internal/config"
	"message-composer/internal/db"
	apihttp "message-composer/internal/http"
	"message-composer/internal/repository"
	"message-composer/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var messageRepo repository.MessageRepository
	if cfg.HistoryEnabled() {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		messageRepo = repository.NewPgMessageRepository(pool)
	} else {
		logger.Info("message history disabled", zap.String("reason", "DATABASE_URL not set"))
	}

	var limiter service.GenerationRateLimiter
	if cfg.RedisAddr != "" && cfg.RateLimitPerMinute > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-process rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisGenerationRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute, cfg.RateLimitKeyPrefix)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewMemoryGenerationRateLimiter(cfg.RateLimitPerMinute)
	}

	composer := service.NewMessageComposer(service.DefaultTemplateCatalog(), nil)
	messageSvc := service.NewMessageService(logger, composer, messageRepo)

	statusHandler := apihttp.NewStatusHandler(cfg.ServiceVersion)
	messageHandler := apihttp.NewMessageHandler(logger, messageSvc)
	router, err := apihttp.NewRouter(logger, apihttp.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, limiter, statusHandler, messageHandler)
	if err != nil {
		logger.Fatal("router setup", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
