package main

import (
	"context"
	"log"

	"creatim-shop/internal/config"
	"creatim-shop/internal/db"
	"creatim-shop/internal/migrate"
	"go.uber.org/zap"
)

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

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalw("apply migrations", "error", err)
	}

	logger.Infow("migrations applied")
}
