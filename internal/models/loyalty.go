package cloudz

import (
	"time"

	"github.com/google/uuid"
)

// Типы записей леджера
type LedgerType string

const (
	PurchaseReward  LedgerType = "purchase_reward"
	ReferralBonus   LedgerType = "referral_bonus"
	TierRedemption  LedgerType = "tier_redemption"
	AdminAdjustment LedgerType = "admin_adjustment"
	StreakBonus     LedgerType = "streak_bonus"
)

func (t LedgerType) Valid() bool {
	switch t {
	case PurchaseReward, ReferralBonus, TierRedemption, AdminAdjustment, StreakBonus:
		return true
	}
	return false
}

type NewAccount struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	ReferralCode string     `json:"referralCode,omitempty"`
}

// Счет клиента (часть, относящаяся к программе лояльности)
type Account struct {
	ID                    uuid.UUID  `bson:"id" json:"id"`
	Email                 string     `bson:"email" json:"email"`
	FirstName             string     `bson:"firstName" json:"firstName"`
	LastName              string     `bson:"lastName" json:"lastName"`
	Balance               int64      `bson:"balance" json:"loyaltyPoints"` // Cloudz
	ReferralCode          string     `bson:"referralCode" json:"referralCode"`
	ReferredBy            *uuid.UUID `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	ReferralCount         int64      `bson:"referralCount" json:"referralCount"`
	ReferralRewardsEarned int64      `bson:"referralRewardsEarned" json:"referralRewardsEarned"`
	ReferralRewardIssued  bool       `bson:"referralRewardIssued" json:"referralRewardIssued"`
	CreatedAt             time.Time  `bson:"createdAt" json:"createdAt"`
}

// Запись леджера - неизменяемая
type LedgerEntry struct {
	ID             uuid.UUID  `bson:"id" json:"id"`
	UserID         uuid.UUID  `bson:"userId" json:"userId"`
	Type           LedgerType `bson:"type" json:"type"`
	Amount         int64      `bson:"amount" json:"amount"`             // >0 начисление, <0 списание
	BalanceAfter   int64      `bson:"balanceAfter" json:"balanceAfter"` // баланс сразу после записи
	Reference      string     `bson:"reference" json:"reference"`
	IdempotencyKey string     `bson:"idempotencyKey,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}

// Запись леджера для админки
type AdminLedgerEntry struct {
	LedgerEntry
	UserEmail string `json:"userEmail"`
}

// Фильтр леджера для админки
type LedgerFilter struct {
	UserID *uuid.UUID
	Type   LedgerType
	Skip   int64
	Limit  int64
}

type AdminLedgerPage struct {
	Entries []AdminLedgerEntry `json:"entries"`
	Total   int64              `json:"total"`
	Skip    int64              `json:"skip"`
	Limit   int64              `json:"limit"`
}

// Погашение уровня
type Redemption struct {
	ID           uuid.UUID  `bson:"id" json:"id"`
	UserID       uuid.UUID  `bson:"userId" json:"userId"`
	TierID       string     `bson:"tierId" json:"tierId"`
	TierName     string     `bson:"tierName" json:"tierName"`
	PointsSpent  int64      `bson:"pointsSpent" json:"pointsSpent"`
	RewardAmount float64    `bson:"rewardAmount" json:"rewardAmount"`
	Used         bool       `bson:"used" json:"used"`
	OrderID      *uuid.UUID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UsedAt       *time.Time `bson:"usedAt,omitempty" json:"usedAt,omitempty"`
	Type         string     `bson:"type,omitempty" json:"type,omitempty"`
	PointsEarned int64      `bson:"pointsEarned,omitempty" json:"pointsEarned,omitempty"`
}

// Записи истории о реферальных начислениях. Хранятся использованными,
// поэтому не попадают в активные скидки и в уникальный индекс уровня
const (
	RedemptionReferralEarned = "referral_earned"
	ReferralWelcomeTierID    = "referral_bonus"
	ReferralWelcomeTierName  = "Referral Welcome Bonus"
	ReferralRewardTierID     = "referral_reward"
	ReferralRewardTierName   = "Referral Reward"
)

// Уровень каталога наград
type Tier struct {
	ID             string  `yaml:"id" json:"id"`
	Name           string  `yaml:"name" json:"name"`
	PointsRequired int64   `yaml:"pointsRequired" json:"pointsRequired"`
	Reward         float64 `yaml:"reward" json:"rewardAmount"`
	Icon           string  `yaml:"icon" json:"icon"`
	Color          string  `yaml:"color" json:"color"`
}

type TierStatus struct {
	Tier
	Unlocked     bool  `json:"unlocked"`
	PointsNeeded int64 `json:"pointsNeeded"`
}

type TierCatalog struct {
	Balance int64        `json:"userPoints"`
	Tiers   []TierStatus `json:"tiers"`
}

type RedeemResult struct {
	RedemptionID     uuid.UUID `json:"rewardId"`
	TierName         string    `json:"tierName"`
	DiscountAmount   float64   `json:"rewardAmount"`
	PointsSpent      int64     `json:"pointsSpent"`
	RemainingBalance int64     `json:"remainingPoints"`
}

// Серия недель с оплаченными заказами
type Streak struct {
	Streak          int   `json:"streak"`
	CurrentBonus    int64 `json:"currentBonus"`
	NextBonus       int64 `json:"nextBonus"`
	DaysUntilExpiry int   `json:"daysUntilExpiry"`
	ISOWeek         int   `json:"isoWeek"`
	ISOYear         int   `json:"isoYear"`
}

type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	DisplayName   string  `json:"displayName"`
	Points        int64   `json:"points"`
	ReferralCount int64   `json:"referralCount"`
	Tier          *string `json:"tier"`
	TierColor     string  `json:"tierColor"`
	IsCurrentUser bool    `json:"isCurrentUser"`
}

type Leaderboard struct {
	ByPoints    []LeaderboardEntry `json:"byPoints"`
	ByReferrals []LeaderboardEntry `json:"byReferrals"`
}

// Результат сверки баланса с леджером
type Reconciliation struct {
	UserID     uuid.UUID    `json:"userId"`
	Balance    int64        `json:"balance"`
	LedgerSum  int64        `json:"ledgerSum"`
	Drift      int64        `json:"drift"`
	Corrective *LedgerEntry `json:"corrective,omitempty"`
}

// Оповещение о расхождении баланса и леджера
type LedgerAlert struct {
	UserID uuid.UUID `json:"userId"`
	Kind   string    `json:"kind"`
	Amount int64     `json:"amount"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

const (
	AlertInconsistentWrite = "inconsistent_ledger_write"
	AlertReconciled        = "ledger_drift_corrected"
)
