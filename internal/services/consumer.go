package cloudz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"go.uber.org/zap"
)

const orderAttempts = 5

var orderRetryDelay = time.Second

// ConsumeOrders читает события оплаты до отмены ctx. Сообщение коммитится после обработки,
// незакоммиченное придет повторно. Возвращается, когда завершены все начатые обработки
func (s *LoyaltyService) ConsumeOrders(ctx context.Context, reader interf.OrderReader, workers int) error {
	if workers < 1 {
		workers = 1
	}
	// начатая обработка и коммит доводятся до конца после остановки
	work := context.WithoutCancel(ctx)

	wg := &sync.WaitGroup{}
	defer wg.Wait()
	semaphore := make(chan struct{}, workers)

	for {
		msg, err := reader.GetNewMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read order event: %w", err)
		}

		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			// не начато и не закоммичено
			return nil
		}
		wg.Add(1)
		go func(msg models.OrderMessage) {
			defer wg.Done()
			defer func() { <-semaphore }()
			s.consumeOrder(ctx, work, reader, msg)
		}(msg)
	}
}

func (s *LoyaltyService) consumeOrder(ctx, work context.Context, reader interf.OrderReader, msg models.OrderMessage) {
	fields := []zap.Field{zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset)}
	for attempt := 1; ; attempt++ {
		result, err := s.HandleOrderPaidEvent(work, msg.Value)
		if err == nil {
			s.logger.Info("Order paid event processed", append(fields,
				zap.String("order", result.OrderID.String()),
				zap.Bool("applied", result.Applied),
				zap.Int("entries", len(result.Entries)))...)
			break
		}
		if errors.Is(err, models.ErrInvalidOrder) || errors.Is(err, models.ErrNotFound) {
			// повтор не поможет
			s.logger.Error("Order paid event rejected", append(fields, zap.Error(err), zap.String("event", msg.Value))...)
			break
		}
		if attempt == orderAttempts {
			s.logger.Error("Order paid event left uncommitted", append(fields, zap.Error(err), zap.Int("attempts", attempt))...)
			return
		}
		s.logger.Warn("Order paid event failed", append(fields, zap.Error(err), zap.Int("attempt", attempt))...)

		select {
		case <-time.After(orderRetryDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return
		}
	}

	if err := reader.CommitMessage(work, msg); err != nil {
		s.logger.Error("Commit order event", append(fields, zap.Error(err))...)
	}
}
