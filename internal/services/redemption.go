package cloudz

import (
	"context"
	"errors"
	"fmt"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const rewardHistoryLimit = 100

// Каталог уровней относительно текущего баланса
func (s *LoyaltyService) GetTierCatalog(ctx context.Context, userId uuid.UUID) (models.TierCatalog, error) {
	balance, err := s.GetBalance(ctx, userId)
	if err != nil {
		return models.TierCatalog{}, err
	}
	tiers := s.tiers.All()
	catalog := models.TierCatalog{
		Balance: balance,
		Tiers:   make([]models.TierStatus, len(tiers)),
	}
	for i, t := range tiers {
		status := models.TierStatus{Tier: t, Unlocked: balance >= t.PointsRequired}
		if !status.Unlocked {
			status.PointsNeeded = t.PointsRequired - balance
		}
		catalog.Tiers[i] = status
	}
	return catalog, nil
}

// Погашение уровня: списание баллов и выпуск скидки
func (s *LoyaltyService) RedeemTier(ctx context.Context, userId uuid.UUID, tierId string) (models.RedeemResult, error) {
	tier, ok := s.tiers.Get(tierId)
	if !ok {
		return models.RedeemResult{}, fmt.Errorf("tier %s: %w", tierId, models.ErrNotFound)
	}

	unlock := s.locks.Lock(userId)
	defer unlock()

	account, err := s.db.GetAccount(ctx, userId)
	if err != nil {
		return models.RedeemResult{}, err
	}

	_, err = s.db.FindActiveRedemption(ctx, userId, tier.ID)
	if err == nil {
		return models.RedeemResult{}, fmt.Errorf("tier %s already has an unused reward: %w", tier.ID, models.ErrDuplicateActiveReward)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.RedeemResult{}, err
	}

	if account.Balance < tier.PointsRequired {
		return models.RedeemResult{}, fmt.Errorf("tier %s requires %d Cloudz, balance is %d: %w",
			tier.ID, tier.PointsRequired, account.Balance, models.ErrInsufficientBalance)
	}

	entry, err := s.appendEntry(ctx, userId, models.TierRedemption, -tier.PointsRequired,
		fmt.Sprintf("Redeemed %s ($%.2f off)", tier.Name, tier.Reward), "")
	if err != nil {
		return models.RedeemResult{}, err
	}

	redemption := models.Redemption{
		ID:           uuid.New(),
		UserID:       userId,
		TierID:       tier.ID,
		TierName:     tier.Name,
		PointsSpent:  tier.PointsRequired,
		RewardAmount: tier.Reward,
		CreatedAt:    s.now(),
	}
	err = s.db.InsertRedemption(ctx, redemption)
	if err != nil {
		// возврат списанных баллов
		_, rerr := s.appendEntry(ctx, userId, models.TierRedemption, tier.PointsRequired,
			fmt.Sprintf("Refund for %s redemption", tier.Name), "")
		if rerr != nil {
			s.logger.Error("Redemption refund",
				zap.String("service", "RedeemTier"),
				zap.String("user", userId.String()),
				zap.String("tier", tier.ID),
				zap.Error(rerr))
		}
		return models.RedeemResult{}, fmt.Errorf("insert redemption: %w", err)
	}

	return models.RedeemResult{
		RedemptionID:     redemption.ID,
		TierName:         tier.Name,
		DiscountAmount:   tier.Reward,
		PointsSpent:      tier.PointsRequired,
		RemainingBalance: entry.BalanceAfter,
	}, nil
}

// Неиспользованные скидки
func (s *LoyaltyService) ActiveRewards(ctx context.Context, userId uuid.UUID) ([]models.Redemption, error) {
	rewards, err := s.db.ListRedemptions(ctx, userId, true, rewardHistoryLimit)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []models.Redemption{}
	}
	return rewards, nil
}

// История погашений
func (s *LoyaltyService) RedemptionHistory(ctx context.Context, userId uuid.UUID) ([]models.Redemption, error) {
	rewards, err := s.db.ListRedemptions(ctx, userId, false, rewardHistoryLimit)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []models.Redemption{}
	}
	return rewards, nil
}

// Погашение скидки при оформлении заказа
func (s *LoyaltyService) ConsumeReward(ctx context.Context, userId uuid.UUID, rewardId uuid.UUID, orderId uuid.UUID) (models.Redemption, error) {
	unlock := s.locks.Lock(userId)
	defer unlock()

	redemption, err := s.db.ConsumeRedemption(ctx, rewardId, userId, orderId, s.now())
	if errors.Is(err, models.ErrNotFound) {
		return models.Redemption{}, fmt.Errorf("reward %s: %w", rewardId, models.ErrInvalidReward)
	}
	if err != nil {
		return models.Redemption{}, err
	}
	return redemption, nil
}
