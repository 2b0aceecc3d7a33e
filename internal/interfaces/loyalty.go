package cloudz

import (
	"context"
	"time"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_loyalty_test.go -package=cloudz . CacheStorage,AlertPublisher,OrderReader
//go:generate mockgen -destination=./../api/mock_service_test.go -package=cloudz . LoyaltyAPI

type AccountStorage interface {
	CreateAccount(ctx context.Context, account models.Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error)
	GetAccountByReferralCode(ctx context.Context, code string) (models.Account, error)
	GetAccounts(ctx context.Context, ids []uuid.UUID) ([]models.Account, error)
	ListAccountIDs(ctx context.Context) ([]uuid.UUID, error)
	// для списаний (amount < 0) баланс не может уйти ниже нуля
	IncrementBalance(ctx context.Context, id uuid.UUID, amount int64) (balance int64, err error)
	// false -> true, возвращает true только если флаг переключил этот вызов
	MarkReferralRewardIssued(ctx context.Context, id uuid.UUID) (bool, error)
	ResetReferralRewardIssued(ctx context.Context, id uuid.UUID) error
	IncrementReferralStats(ctx context.Context, id uuid.UUID, count int64, earned int64) error
	TopByBalance(ctx context.Context, limit int64) ([]models.Account, error)
	TopByReferrals(ctx context.Context, limit int64) ([]models.Account, error)
}

type LedgerStorage interface {
	InsertLedgerEntry(ctx context.Context, entry models.LedgerEntry) error
	GetLedger(ctx context.Context, userId uuid.UUID) ([]models.LedgerEntry, error)
	ListLedger(ctx context.Context, filter models.LedgerFilter) (entries []models.LedgerEntry, total int64, err error)
	SumLedger(ctx context.Context, userId uuid.UUID) (int64, error)
	LedgerKeyExists(ctx context.Context, key string) (bool, error)
}

type RedemptionStorage interface {
	InsertRedemption(ctx context.Context, redemption models.Redemption) error
	FindActiveRedemption(ctx context.Context, userId uuid.UUID, tierId string) (models.Redemption, error)
	ConsumeRedemption(ctx context.Context, id uuid.UUID, userId uuid.UUID, orderId uuid.UUID, usedAt time.Time) (models.Redemption, error)
	ReleaseRedemption(ctx context.Context, id uuid.UUID) error
	ListRedemptions(ctx context.Context, userId uuid.UUID, activeOnly bool, limit int64) ([]models.Redemption, error)
}

type OrderStorage interface {
	CreateOrder(ctx context.Context, order models.Order) error
	UpsertOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error)
	// возвращает заказ до изменения
	SetOrderStatus(ctx context.Context, id uuid.UUID, status string) (previous models.Order, err error)
	SetOrderPaidAt(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	// оплаченные и не отмененные заказы
	PaidOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error)
}

type ProductStorage interface {
	CreateProduct(ctx context.Context, product models.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int64) (models.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int64) error
}

type LoyaltyStorage interface {
	AccountStorage
	LedgerStorage
	RedemptionStorage
	OrderStorage
	ProductStorage
}

type CacheStorage interface {
	GetBalance(ctx context.Context, userId uuid.UUID) (points int64, err error)
	SetBalance(ctx context.Context, userId uuid.UUID, points int64) error
	InvalidateBalance(ctx context.Context, userId uuid.UUID) error
}

type AlertPublisher interface {
	PublishLedgerAlert(ctx context.Context, alert models.LedgerAlert) error
}

// сообщение коммитится только после обработки
type OrderReader interface {
	GetNewMessage(ctx context.Context) (msg models.OrderMessage, err error)
	CommitMessage(ctx context.Context, msg models.OrderMessage) error
	CloseReader()
}

// операции сервиса, доступные через HTTP
type LoyaltyAPI interface {
	RegisterAccount(ctx context.Context, in models.NewAccount) (models.Account, error)
	GetAccount(ctx context.Context, userId uuid.UUID) (models.Account, error)
	GetTierCatalog(ctx context.Context, userId uuid.UUID) (models.TierCatalog, error)
	RedeemTier(ctx context.Context, userId uuid.UUID, tierId string) (models.RedeemResult, error)
	ActiveRewards(ctx context.Context, userId uuid.UUID) ([]models.Redemption, error)
	RedemptionHistory(ctx context.Context, userId uuid.UUID) ([]models.Redemption, error)
	GetLedger(ctx context.Context, userId uuid.UUID) ([]models.LedgerEntry, error)
	GetStreak(ctx context.Context, userId uuid.UUID) (models.Streak, error)
	GetLeaderboard(ctx context.Context, current uuid.UUID) (models.Leaderboard, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error)
	CreateOrder(ctx context.Context, userId uuid.UUID, in models.NewOrder) (models.Order, error)
	GetOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderId uuid.UUID, status string) (models.Order, *models.PaidResult, error)
	GetAdminLedger(ctx context.Context, filter models.LedgerFilter) (models.AdminLedgerPage, error)
	SetBalance(ctx context.Context, userId uuid.UUID, balance int64) (*models.LedgerEntry, error)
	Reconcile(ctx context.Context, userId uuid.UUID) (models.Reconciliation, error)
	ReconcileAll(ctx context.Context, workers int) ([]models.Reconciliation, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int64) (models.Product, error)
}
