package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"contact-service/internal/application/services"
	"contact-service/internal/config"
	"contact-service/internal/delivery/handler"
	"contact-service/internal/infrastructure"
	"contact-service/internal/infrastructure/db/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL: ", err)
	}

	redisClient := infrastructure.NewRedisClient(cfg)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis: ", err)
	}

	tokens := infrastructure.NewTokenService(cfg.JWTSecret)
	userCache := infrastructure.NewRedisUserCache(redisClient)
	userRepo := postgres.NewUserRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	router := handler.Router{
		Auth:     services.NewAuthService(userRepo, userCache, tokens, cfg),
		Contacts: services.NewContactService(contactRepo),
		Health:   postgres.NewHealth(db),
		Limiter:  infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax),
	}

	e := router.Build()
	log.Println("server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
