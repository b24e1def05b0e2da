package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/api/handlers"
	"github.com/contract-portal/backend/internal/cache/memory"
	"github.com/contract-portal/backend/internal/cache/redis"
	"github.com/contract-portal/backend/internal/lexicon"
	"github.com/contract-portal/backend/internal/metrics"
	"github.com/contract-portal/backend/internal/middleware/ratelimit"
	"github.com/contract-portal/backend/internal/middleware/security"
	"github.com/contract-portal/backend/internal/middleware/validation"
	"github.com/contract-portal/backend/internal/query"
	"github.com/contract-portal/backend/pkg/config"
	appLogger "github.com/contract-portal/backend/pkg/logger"
	"github.com/contract-portal/backend/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Contract Portal Query API")

	metrics.Init()

	lexicons := lexicon.NewProvider(lexicon.Paths{
		Keywords:    cfg.Lexicon.KeywordsPath,
		Corrections: cfg.Lexicon.CorrectionsPath,
	})

	responseCache, redisClient := buildCache(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	engine := query.NewEngine(lexicons, query.Options{
		Cache:          responseCache,
		MaxQueryLength: cfg.Pipeline.MaxQueryLength,
		NameTokenLimit: cfg.Pipeline.NameTokenLimit,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	rateLimiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: 120,
		Logger:               appLogger.Log,
	})
	defer rateLimiter.Stop()

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(rateLimiter.Middleware())
	app.Use(validation.Middleware(validation.Config{
		MaxQueryLength: cfg.Pipeline.MaxQueryLength,
		Logger:         appLogger.Log,
	}))

	var flusher handlers.CacheFlusher
	if f, ok := responseCache.(handlers.CacheFlusher); ok {
		flusher = f
	}

	queryHandler := handlers.NewQueryHandler(engine)
	lexiconHandler := handlers.NewLexiconHandler(lexicons, flusher)
	wsHandler := handlers.NewWebSocketHandler(engine)

	api := app.Group("/api/v1")

	api.Post("/query", queryHandler.HandleQuery)
	api.Get("/lexicon", lexiconHandler.GetLexicon)
	api.Post("/lexicon/reload", lexiconHandler.Reload)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api.Get("/ready", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(wsHandler.HandleConnection))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}

// buildCache picks the response cache backend. Redis is attempted with
// retries when enabled; if it stays unreachable the server falls back to the
// in-memory cache rather than refusing to start.
func buildCache(cfg *config.Config) (query.Cache, *redis.Client) {
	if !cfg.Cache.Enabled {
		appLogger.Info("Response cache disabled")
		return nil, nil
	}

	if cfg.Redis.Enabled {
		var client *redis.Client
		err := retry.Do(context.Background(), retry.Config{
			MaxAttempts:  5,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
			Logger:       appLogger.Log,
		}, func() error {
			var err error
			client, err = redis.NewClient(
				context.Background(),
				cfg.Redis.Host,
				cfg.Redis.Port,
				cfg.Redis.Password,
				cfg.Redis.DB,
				time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			)
			return err
		})
		if err == nil {
			return client, client
		}
		appLogger.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
	}

	appLogger.Info("Using in-memory response cache",
		zap.Int("max_entries", cfg.Cache.MaxEntries),
	)
	return memory.New(cfg.Cache.MaxEntries), nil
}
