package cloudz

import (
	"time"

	"github.com/google/uuid"
)

// Статусы заказа
const (
	StatusPendingPayment = "Pending Payment"
	StatusPaid           = "Paid"
	StatusReady          = "Ready for Pickup"
	StatusCompleted      = "Completed"
	StatusCancelled      = "Cancelled"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case StatusPendingPayment, StatusPaid, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID uuid.UUID `bson:"productId" json:"productId"`
	Name      string    `bson:"name" json:"name"`
	Quantity  int64     `bson:"quantity" json:"quantity"`
	Price     float64   `bson:"price" json:"price"`
}

// Заказ - копия данных Order-Management, нужна для расчета серий
type Order struct {
	ID                  uuid.UUID   `bson:"id" json:"id"`
	UserID              uuid.UUID   `bson:"userId" json:"userId"`
	Items               []OrderItem `bson:"items" json:"items"`
	Total               float64     `bson:"total" json:"total"`
	PickupTime          string      `bson:"pickupTime" json:"pickupTime"`
	PaymentMethod       string      `bson:"paymentMethod" json:"paymentMethod"`
	Status              string      `bson:"status" json:"status"`
	LoyaltyPointsEarned int64       `bson:"loyaltyPointsEarned" json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int64       `bson:"loyaltyPointsUsed" json:"loyaltyPointsUsed"`
	RewardID            *uuid.UUID  `bson:"rewardId,omitempty" json:"rewardId,omitempty"`
	RewardDiscount      float64     `bson:"rewardDiscount" json:"rewardDiscount"`
	CreatedAt           time.Time   `bson:"createdAt" json:"createdAt"`
	PaidAt              *time.Time  `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

type NewOrder struct {
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PickupTime    string      `json:"pickupTime"`
	PaymentMethod string      `json:"paymentMethod"`
	RewardID      *uuid.UUID  `json:"rewardId,omitempty"`
}

// OrderMessage - сообщение очереди оплат с координатами для коммита
type OrderMessage struct {
	Topic     string
	Partition int
	Offset    int64
	Value     string
}

// Событие оплаты заказа (Kafka)
type OrderPaidEvent struct {
	OrderID  uuid.UUID   `json:"orderId"`
	UserID   uuid.UUID   `json:"userId"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	RewardID *uuid.UUID  `json:"rewardId,omitempty"`
	PaidAt   *time.Time  `json:"paidAt,omitempty"`
}

// Результат обработки оплаты
type PaidResult struct {
	OrderID        uuid.UUID     `json:"orderId"`
	Applied        bool          `json:"applied"`
	Entries        []LedgerEntry `json:"entries"`
	ReferralIssued bool          `json:"referralIssued"`
	Streak         int           `json:"streak"`
}

type Product struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	BrandName string    `bson:"brandName" json:"brandName"`
	Category  string    `bson:"category" json:"category"`
	Price     float64   `bson:"price" json:"price"`
	Stock     int64     `bson:"stock" json:"stock"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
}
