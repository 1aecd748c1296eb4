package main

import (
	"context"
	"log"

	"creatim-shop/internal/config"
	"creatim-shop/internal/db"
	cartrepo "creatim-shop/internal/repository/cart"
	sessionsvc "creatim-shop/internal/service/session"
	"go.uber.org/zap"
)

// Deletes carts untouched for 30 days. Meant to run from cron or an
// equivalent external scheduler; the API itself never cleans up.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	sessions := sessionsvc.New(cartrepo.NewPostgres(pool), logger)
	count, err := sessions.CleanupOldCarts(ctx)
	if err != nil {
		logger.Fatalw("cleanup old carts", "error", err)
	}
	logger.Infow("cleanup finished", "deleted", count)
}
