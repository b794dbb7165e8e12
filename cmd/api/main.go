package main

import (
	"context"
	"log"

	"ai-tools-api/config"
	"ai-tools-api/internal/handler"
	appredis "ai-tools-api/internal/redis"
	"ai-tools-api/internal/repository"
	"ai-tools-api/internal/server"
	"ai-tools-api/internal/services"
	"ai-tools-api/pkg/database"
	"ai-tools-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(ctx, db); err != nil {
			l.Errorf("Failed to disconnect from database: %s", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	redisClient := appredis.NewClient(appredis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	limiter := appredis.NewRateLimiter(redisClient, appredis.DefaultRateLimitConfig())

	userRepo := repository.NewUserRepository(db)
	toolRepo := repository.NewToolRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	toolService := services.NewToolService(toolRepo)

	handlers := &server.Handlers{
		Auth:  handler.NewAuthHandler(authService, l),
		Tools: handler.NewToolHandler(toolService, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, limiter, db)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
