package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/lyzehq/auth-service/config"
	"github.com/lyzehq/auth-service/internal/auth/handler"
	"github.com/lyzehq/auth-service/internal/auth/service"
	"github.com/lyzehq/auth-service/internal/auth/store"
	"github.com/lyzehq/auth-service/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	userStore := store.NewRESTUserStore(cfg.UserAPIBaseURL, time.Duration(cfg.StoreTimeoutSec)*time.Second, sugar)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHrs)
	authService := service.NewAuthService(userStore, tokenService, cfg.BcryptCost, sugar)
	authHandler := handler.NewAuthHandler(authService, tokenService.Expiry(), cfg.IsProduction())

	app := handler.NewApp()
	handler.RegisterRoutes(app, authHandler)

	sugar.Infow("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
