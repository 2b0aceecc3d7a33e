package cloudz

import (
	"context"
	"encoding/json"
	"fmt"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const alertsQueue = "ledger_alerts"

// RabbitAlerts публикует алерты по расхождениям в журнале
type RabbitAlerts struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitAlerts(cfg config.RabbitConfig) (rabbit *RabbitAlerts, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}

	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		alertsQueue, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitAlerts{conn, ch}, nil
}

func (r *RabbitAlerts) Close() {
	r.ch.Close()
	r.conn.Close()
}

func (r *RabbitAlerts) PublishLedgerAlert(ctx context.Context, alert models.LedgerAlert) error {
	msg, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	return r.ch.PublishWithContext(ctx,
		"",          // exchange
		alertsQueue, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         msg,
		})
}
