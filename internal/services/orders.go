package cloudz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	referredBonus = 1000
	referrerBonus = 2000
)

// ключи идемпотентности
func purchaseKey(orderId uuid.UUID) string {
	return "order:" + orderId.String() + ":purchase"
}

func referralKey(orderId uuid.UUID) string {
	return "order:" + orderId.String() + ":referral"
}

func referrerKey(orderId uuid.UUID) string {
	return "order:" + orderId.String() + ":referrer"
}

func streakKey(userId uuid.UUID, week isoWeek) string {
	return fmt.Sprintf("streak:%s:%d-W%02d", userId, week.year, week.week)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// баллы за заказ: 1 за каждую целую единицу валюты
func PurchasePoints(total float64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Floor(total))
}

// Создание заказа с проверкой остатков и погашением скидки
func (s *LoyaltyService) CreateOrder(ctx context.Context, userId uuid.UUID, in models.NewOrder) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, fmt.Errorf("order has no items: %w", models.ErrInvalidOrder)
	}
	if in.Total < 0 || math.IsNaN(in.Total) || math.IsInf(in.Total, 0) {
		return models.Order{}, fmt.Errorf("order total %v: %w", in.Total, models.ErrInvalidOrder)
	}
	if _, err := s.db.GetAccount(ctx, userId); err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("item %s quantity %d: %w", item.ProductID, item.Quantity, models.ErrInvalidOrder)
		}
		product, err := s.db.GetProduct(ctx, item.ProductID)
		if err != nil {
			return models.Order{}, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		if !product.IsActive {
			return models.Order{}, fmt.Errorf("product %s is not available: %w", product.ID, models.ErrInvalidOrder)
		}
		if product.Stock < item.Quantity {
			return models.Order{}, fmt.Errorf("%s: only %d in stock: %w", product.Name, product.Stock, models.ErrInsufficientStock)
		}
		if item.Name == "" {
			item.Name = product.Name
		}
		if item.Price == 0 {
			item.Price = product.Price
		}
		items[i] = item
	}

	order := models.Order{
		ID:                  uuid.New(),
		UserID:              userId,
		Items:               items,
		Total:               in.Total,
		PickupTime:          in.PickupTime,
		PaymentMethod:       in.PaymentMethod,
		Status:              models.StatusPendingPayment,
		LoyaltyPointsEarned: PurchasePoints(in.Total),
		CreatedAt:           s.now(),
	}

	// скидка
	if in.RewardID != nil {
		redemption, err := s.ConsumeReward(ctx, userId, *in.RewardID, order.ID)
		if err != nil {
			return models.Order{}, err
		}
		order.RewardID = &redemption.ID
		order.RewardDiscount = redemption.RewardAmount
		order.LoyaltyPointsUsed = redemption.PointsSpent
	}

	err := s.db.CreateOrder(ctx, order)
	if err != nil {
		if order.RewardID != nil {
			if rerr := s.db.ReleaseRedemption(ctx, *order.RewardID); rerr != nil {
				s.Log("Release redemption", "CreateOrder", rerr)
			}
		}
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *LoyaltyService) GetOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error) {
	orders, err := s.db.ListOrders(ctx, userId)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Смена статуса заказа, переход в Paid начисляет баллы
func (s *LoyaltyService) UpdateOrderStatus(ctx context.Context, orderId uuid.UUID, status string) (models.Order, *models.PaidResult, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, nil, fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}
	prev, err := s.db.SetOrderStatus(ctx, orderId, status)
	if err != nil {
		return models.Order{}, nil, err
	}
	order := prev
	order.Status = status
	if status != models.StatusPaid || prev.Status == models.StatusPaid {
		return order, nil, nil
	}

	if order.PaidAt == nil {
		paidAt := s.now()
		if err := s.db.SetOrderPaidAt(ctx, orderId, paidAt); err != nil {
			return order, nil, err
		}
		order.PaidAt = &paidAt
	}
	result, err := s.applyOrderPaid(ctx, order, true)
	if err != nil {
		return order, nil, err
	}
	return order, &result, nil
}

// Событие оплаты из Kafka. Доставка at-least-once, повтор не меняет баланс
func (s *LoyaltyService) HandleOrderPaidEvent(ctx context.Context, orderJson string) (models.PaidResult, error) {
	var event models.OrderPaidEvent
	if err := json.Unmarshal([]byte(orderJson), &event); err != nil {
		return models.PaidResult{}, fmt.Errorf("unmarshal order event: %w: %w", models.ErrInvalidOrder, err)
	}
	if event.OrderID == uuid.Nil || event.UserID == uuid.Nil {
		return models.PaidResult{}, fmt.Errorf("order event without ids: %w", models.ErrInvalidOrder)
	}
	paidAt := s.now()
	if event.PaidAt != nil {
		paidAt = event.PaidAt.UTC()
	}

	order := models.Order{
		ID:                  event.OrderID,
		UserID:              event.UserID,
		Items:               event.Items,
		Total:               event.Total,
		Status:              models.StatusPendingPayment,
		LoyaltyPointsEarned: PurchasePoints(event.Total),
		RewardID:            event.RewardID,
		CreatedAt:           paidAt,
	}
	if err := s.db.UpsertOrder(ctx, order); err != nil {
		return models.PaidResult{}, err
	}
	prev, err := s.db.SetOrderStatus(ctx, order.ID, models.StatusPaid)
	if err != nil {
		return models.PaidResult{}, err
	}
	if prev.UserID != order.UserID {
		return models.PaidResult{}, fmt.Errorf("order %s belongs to another account: %w", order.ID, models.ErrInvalidOrder)
	}
	transition := prev.Status != models.StatusPaid
	if prev.PaidAt == nil {
		if err := s.db.SetOrderPaidAt(ctx, order.ID, paidAt); err != nil {
			return models.PaidResult{}, err
		}
		prev.PaidAt = &paidAt
	}
	prev.Status = models.StatusPaid

	return s.applyOrderPaid(ctx, prev, transition)
}

// ApplyOrderPaid - начисления при переходе заказа в Paid
func (s *LoyaltyService) ApplyOrderPaid(ctx context.Context, order models.Order) (models.PaidResult, error) {
	return s.applyOrderPaid(ctx, order, true)
}

// transition - статус заказа сменился именно сейчас
func (s *LoyaltyService) applyOrderPaid(ctx context.Context, order models.Order, transition bool) (models.PaidResult, error) {
	result := models.PaidResult{OrderID: order.ID, Entries: []models.LedgerEntry{}}

	unlock := s.locks.Lock(order.UserID)
	defer unlock()

	// покупка
	points := PurchasePoints(order.Total)
	if points > 0 {
		entry, err := s.appendEntry(ctx, order.UserID, models.PurchaseReward, points,
			"Order #"+shortID(order.ID), purchaseKey(order.ID))
		switch {
		case errors.Is(err, models.ErrDuplicateLedgerKey):
		case err != nil:
			return result, err
		default:
			result.Applied = true
			result.Entries = append(result.Entries, entry)
		}
	} else if transition {
		result.Applied = true
	}

	// остатки
	if result.Applied {
		for _, item := range order.Items {
			if err := s.db.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				s.logger.Error("Decrement stock",
					zap.String("service", "ApplyOrderPaid"),
					zap.String("order", order.ID.String()),
					zap.String("product", item.ProductID.String()),
					zap.Error(err))
			}
		}
	}

	referee, referrer, err := s.applyReferralBonus(ctx, order, &result)
	if err != nil {
		return result, err
	}

	if err := s.applyStreakBonus(ctx, order, &result); err != nil {
		return result, err
	}
	unlock()

	// рефереру - под его собственной блокировкой
	if referrer != nil {
		entry, err := s.creditReferrer(ctx, *referrer, referee, order.ID)
		if err != nil {
			return result, err
		}
		if entry != nil {
			result.Entries = append(result.Entries, *entry)
		}
	}
	return result, nil
}

// Приветственный бонус приглашенному. Возвращает реферера, если ему положено начисление
func (s *LoyaltyService) applyReferralBonus(ctx context.Context, order models.Order, result *models.PaidResult) (models.Account, *uuid.UUID, error) {
	account, err := s.db.GetAccount(ctx, order.UserID)
	if err != nil {
		return account, nil, err
	}
	if account.ReferredBy == nil {
		return account, nil, nil
	}

	key := referralKey(order.ID)
	if account.ReferralRewardIssued {
		// повтор: бонус этого заказа уже выдан, но рефереру могло не дойти
		exists, err := s.db.LedgerKeyExists(ctx, key)
		if err != nil || !exists {
			return account, nil, err
		}
		return account, account.ReferredBy, nil
	}

	swapped, err := s.db.MarkReferralRewardIssued(ctx, account.ID)
	if err != nil || !swapped {
		return account, nil, err
	}
	entry, err := s.appendEntry(ctx, account.ID, models.ReferralBonus, referredBonus, "Welcome bonus (referred)", key)
	if err != nil && !errors.Is(err, models.ErrDuplicateLedgerKey) {
		if rerr := s.db.ResetReferralRewardIssued(ctx, account.ID); rerr != nil {
			s.Log("Reset referral flag", "applyReferralBonus", rerr)
		}
		return account, nil, err
	}
	if err == nil {
		result.Entries = append(result.Entries, entry)
		s.referralHistory(ctx, account.ID, models.ReferralWelcomeTierID, models.ReferralWelcomeTierName, referredBonus)
	}
	result.ReferralIssued = true
	s.logger.Info("Referral bonus issued",
		zap.String("user", account.ID.String()),
		zap.String("referrer", account.ReferredBy.String()),
		zap.String("order", order.ID.String()))
	return account, account.ReferredBy, nil
}

func (s *LoyaltyService) creditReferrer(ctx context.Context, referrerId uuid.UUID, referee models.Account, orderId uuid.UUID) (*models.LedgerEntry, error) {
	unlock := s.locks.Lock(referrerId)
	defer unlock()

	entry, err := s.appendEntry(ctx, referrerId, models.ReferralBonus, referrerBonus,
		"Referral reward for user #"+shortID(referee.ID), referrerKey(orderId))
	if errors.Is(err, models.ErrDuplicateLedgerKey) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.IncrementReferralStats(ctx, referrerId, 1, referrerBonus); err != nil {
		s.Log("Referral stats", "creditReferrer", err)
	}
	s.referralHistory(ctx, referrerId, models.ReferralRewardTierID, models.ReferralRewardTierName, referrerBonus)
	return &entry, nil
}

// строка истории наград о реферальном начислении
func (s *LoyaltyService) referralHistory(ctx context.Context, userId uuid.UUID, tierId string, tierName string, points int64) {
	row := models.Redemption{
		ID:           uuid.New(),
		UserID:       userId,
		TierID:       tierId,
		TierName:     tierName,
		Used:         true,
		CreatedAt:    s.now(),
		Type:         models.RedemptionReferralEarned,
		PointsEarned: points,
	}
	if err := s.db.InsertRedemption(ctx, row); err != nil {
		s.Log("Referral history", "referralHistory", err)
	}
}

// Бонус за серию, только когда заказ увеличил серию
func (s *LoyaltyService) applyStreakBonus(ctx context.Context, order models.Order, result *models.PaidResult) error {
	paidAt := s.now()
	if order.PaidAt != nil {
		paidAt = order.PaidAt.UTC()
	}
	orders, err := s.db.PaidOrders(ctx, order.UserID)
	if err != nil {
		return err
	}
	// один бонус на неделю, повтор отсекает ключ недели
	after := CalculateStreak(append(paidTimes(orders, order.ID), paidAt), paidAt)
	result.Streak = after.Streak

	if after.CurrentBonus == 0 {
		return nil
	}
	entry, err := s.appendEntry(ctx, order.UserID, models.StreakBonus, after.CurrentBonus,
		fmt.Sprintf("%d-week streak bonus", after.Streak), streakKey(order.UserID, weekOf(paidAt)))
	if errors.Is(err, models.ErrDuplicateLedgerKey) {
		return nil
	}
	if err != nil {
		return err
	}
	result.Entries = append(result.Entries, entry)
	return nil
}
