// Package main is the entry point for the transfer API server. It wires the
// database, cache, outbound clients and the notification worker pool, then
// serves HTTP until interrupted.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"paymo/internal/config"
	"paymo/internal/logger"
	"paymo/internal/repositories"
	"paymo/internal/repositories/cache"
	"paymo/internal/routes"
	"paymo/internal/services/authorization"
	"paymo/internal/services/notification"
	"paymo/internal/services/transfer"
	"paymo/internal/services/user"
)

func main() {
	config.LoadEnv()

	if err := logger.Init(config.IsProduction()); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Log

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	log.Info("database connected and migrated")

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewService(redisClient, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))
	defer cacheService.Close()

	// Repositories.
	accountRepo := repositories.NewAccountRepository(db, cacheService)
	transferRepo := repositories.NewTransferRepository(db)
	userRepo := repositories.NewUserRepository(db)
	transferStore := repositories.NewTransferStore(db, cacheService)

	// Outbound clients.
	authClient := authorization.NewClient(
		config.GetEnv("AUTHORIZATION_URL", "https://util.devi.tools/api/v2/authorize"),
		config.GetDurationEnv("AUTHORIZATION_TIMEOUT", authorization.DefaultTimeout),
	)
	notifyClient := notification.NewClient(
		config.GetEnv("NOTIFICATION_URL", "https://util.devi.tools/api/v1/notify"),
		config.GetDurationEnv("NOTIFICATION_TIMEOUT", notification.DefaultRequestTimeout),
	)

	// Notification worker pool.
	dispatcher := notification.NewDispatcher(
		notifyClient,
		accountRepo,
		transferRepo,
		notification.DefaultPolicy(),
		config.GetIntEnv("NOTIFICATION_WORKERS", 4),
		log,
	)
	dispatcher.Start()

	// Services.
	jwtSecret := config.GetEnv("JWT_SECRET", "paymo-dev-secret")
	transferService := transfer.NewService(transferStore, authClient, dispatcher, log)
	userService := user.NewService(userRepo, accountRepo, jwtSecret, config.GetDurationEnv("TOKEN_TTL", 24*time.Hour))

	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        config.GetIntEnv("AUTH_RATE_LIMIT", 5),
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "too many requests, please try again later",
				})
			},
		}))
	}

	routes.SetupRoutes(app, routes.Deps{
		Transfer:  transferService,
		Users:     userService,
		Accounts:  accountRepo,
		Ledger:    transferRepo,
		JWTSecret: jwtSecret,
	})

	go func() {
		if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	dispatcher.Shutdown()
}
