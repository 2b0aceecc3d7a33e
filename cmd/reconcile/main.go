// Job - сверка балансов всех счетов с суммой леджера
// При расхождении дописывается корректирующая запись и отправляется алерт
package main

import (
	"context"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	db "github.com/clouddistrictclub/cloud-district-app/internal/db"
	rabbit "github.com/clouddistrictclub/cloud-district-app/internal/external/rabbitmq"
	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	services "github.com/clouddistrictclub/cloud-district-app/internal/services"
	"go.uber.org/zap"
)

func main() {
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

	var alerts interf.AlertPublisher
	publisher, err := rabbit.NewRabbitAlerts(cfg.Rabbit)
	if err != nil {
		logger.Warn("Ledger alerts disabled", zap.Error(err))
	} else {
		alerts = publisher
		defer publisher.Close()
	}

	serv := services.NewLoyaltyService(logger, storage, nil, alerts, tiers)
	drifted, err := serv.ReconcileAll(context.Background(), cfg.Workers.Reconcile)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job reconcile is finished", zap.Int("drifted", len(drifted)))
}
