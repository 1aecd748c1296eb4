package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"creatim-shop/internal/config"
	"creatim-shop/internal/db"
	"creatim-shop/internal/httpserver"
	cartrepo "creatim-shop/internal/repository/cart"
	catalogrepo "creatim-shop/internal/repository/catalog"
	orderrepo "creatim-shop/internal/repository/order"
	smsrepo "creatim-shop/internal/repository/sms"
	catalogsvc "creatim-shop/internal/service/catalog"
	ordersvc "creatim-shop/internal/service/order"
	purchasesvc "creatim-shop/internal/service/purchase"
	sessionsvc "creatim-shop/internal/service/session"
	smssvc "creatim-shop/internal/service/sms"
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
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalw("connect to db", "error", err)
	}
	defer dbpool.Close()

	cartRepo := cartrepo.NewPostgres(dbpool)
	catalogRepo := catalogrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	smsRepo := smsrepo.NewPostgres(dbpool)

	sessionService := sessionsvc.New(cartRepo, logger)
	catalogService := catalogsvc.New(catalogRepo)
	orderService := ordersvc.New(cartRepo, orderRepo, catalogService, logger)
	purchaseService := purchasesvc.New(cartRepo, orderRepo)
	smsService := smssvc.New(smsRepo, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		SessionSvc:  sessionService,
		CatalogSvc:  catalogService,
		OrderSvc:    orderService,
		PurchaseSvc: purchaseService,
		SMSSvc:      smsService,
	}, cfg.CORSAllowOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infow("starting http server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Infow("received signal, shutting down", "signal", sig.String())
	case err := <-serverErr:
		logger.Errorw("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("graceful shutdown failed", "error", err)
	} else {
		logger.Infow("server stopped")
	}
}
