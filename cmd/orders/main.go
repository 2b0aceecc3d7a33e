// Job - обработка оплаченных заказов
// Опрос Kafka -> начисление Cloudz за покупку, реферальные бонусы и бонус за серию
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	db "github.com/clouddistrictclub/cloud-district-app/internal/db"
	kafka "github.com/clouddistrictclub/cloud-district-app/internal/external/kafka"
	rabbit "github.com/clouddistrictclub/cloud-district-app/internal/external/rabbitmq"
	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	services "github.com/clouddistrictclub/cloud-district-app/internal/services"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	logger, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	var reader interf.OrderReader
	reader, err = kafka.GetNewReader(cfg.Kafka)
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

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

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-interrupt
		cancel()
	}()

	if err := serv.ConsumeOrders(ctx, reader, cfg.Workers.Orders); err != nil {
		logger.Error("Order consumer stopped", zap.Error(err))
	}
}
