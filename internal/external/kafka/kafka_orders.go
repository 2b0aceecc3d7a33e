package cloudz

import (
	"context"
	"fmt"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaOrders читает события оплаты заказов. Offset коммитится вручную после обработки
type KafkaOrders struct {
	reader  *kafka.Reader
	offsets *offsetTracker
}

func GetNewReader(cfg config.KafkaConfig) (reader *KafkaOrders, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env KAFKA_ORDER_URL is not set")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("env KAFKA_ORDER_TOPIC is not set")
	}
	if cfg.Group == "" {
		return nil, fmt.Errorf("env KAFKA_ORDER_GROUP is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: cfg.Brokers(),
		Topic:   cfg.Topic,
		GroupID: cfg.Group,
		// коммит только через CommitMessages
		CommitInterval: 0,
	}
	return &KafkaOrders{reader: kafka.NewReader(kafkaconfig), offsets: newOffsetTracker()}, nil
}

func (k *KafkaOrders) GetNewMessage(ctx context.Context) (msg models.OrderMessage, err error) {
	m, err := k.reader.FetchMessage(ctx)
	if err != nil {
		return msg, err
	}
	msg = models.OrderMessage{
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Value:     string(m.Value),
	}
	k.offsets.fetched(msg.Partition, msg.Offset)
	return msg, nil
}

// CommitMessage отмечает сообщение обработанным и коммитит непрерывный префикс партиции
func (k *KafkaOrders) CommitMessage(ctx context.Context, msg models.OrderMessage) error {
	offset, ok := k.offsets.done(msg.Partition, msg.Offset)
	if !ok {
		return nil
	}
	return k.reader.CommitMessages(ctx, kafka.Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    offset,
	})
}

func (k *KafkaOrders) CloseReader() {
	k.reader.Close()
}
