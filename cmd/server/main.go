package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/clouddistrictclub/cloud-district-app/internal/api"
	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	db "github.com/clouddistrictclub/cloud-district-app/internal/db"
	rabbit "github.com/clouddistrictclub/cloud-district-app/internal/external/rabbitmq"
	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	services "github.com/clouddistrictclub/cloud-district-app/internal/services"
	tracing "github.com/clouddistrictclub/cloud-district-app/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err = cfg.RequireJWT(); err != nil {
		panic(err)
	}

	// log
	logger, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Tracing, "cloudz-api", logger)
	if err != nil {
		logger.Error("Tracer init", zap.Error(err))
		shutdownTracer = func() {}
	}
	defer shutdownTracer()

	tiers, err := config.LoadTiers(cfg.TierFile)
	if err != nil {
		panic(err)
	}

	// database
	storage, err := db.NewLoyaltyDB(cfg.Mongo, logger)
	if err != nil {
		panic(err)
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService(cfg.Cache)
	if err != nil {
		logger.Warn("Cache disabled", zap.Error(err))
	} else {
		cache = redis
		defer redis.Close()
	}

	// alerts
	var alerts interf.AlertPublisher
	publisher, err := rabbit.NewRabbitAlerts(cfg.Rabbit)
	if err != nil {
		logger.Warn("Ledger alerts disabled", zap.Error(err))
	} else {
		alerts = publisher
		defer publisher.Close()
	}

	serv := services.NewLoyaltyService(logger, storage, cache, alerts, tiers)

	// api handlers
	r := api.NewHandler(serv, *cfg, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "cloudz-api"),
		Addr:         ":" + cfg.Server.Port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen error", zap.Error(err))
			cancel()
		}
	}()
	logger.Info("Cloudz API started", zap.String("port", cfg.Server.Port))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}
	timeout, cancelTimeout := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelTimeout()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
