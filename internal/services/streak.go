package cloudz

import (
	"context"
	"time"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
)

type isoWeek struct {
	year int
	week int
}

func weekOf(t time.Time) isoWeek {
	y, w := t.UTC().ISOWeek()
	return isoWeek{y, w}
}

// StreakBonus - бонус за достижение серии длиной n недель
func StreakBonus(n int) int64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 50
	case n == 3:
		return 100
	case n == 4:
		return 200
	default:
		return 500
	}
}

// CalculateStreak считает подряд идущие ISO недели с оплаченными заказами.
// Если в текущей неделе заказа еще нет, серия считается от прошлой недели.
func CalculateStreak(paid []time.Time, now time.Time) models.Streak {
	now = now.UTC()
	weeks := make(map[isoWeek]struct{}, len(paid))
	for _, t := range paid {
		weeks[weekOf(t)] = struct{}{}
	}

	cursor := now
	if _, ok := weeks[weekOf(cursor)]; !ok {
		// grace
		cursor = cursor.AddDate(0, 0, -7)
	}
	streak := 0
	for {
		if _, ok := weeks[weekOf(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -7)
	}

	current := weekOf(now)
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return models.Streak{
		Streak:          streak,
		CurrentBonus:    StreakBonus(streak),
		NextBonus:       StreakBonus(streak + 1),
		DaysUntilExpiry: 7 - weekday,
		ISOWeek:         current.week,
		ISOYear:         current.year,
	}
}

func paidTimes(orders []models.Order, exclude uuid.UUID) []time.Time {
	times := make([]time.Time, 0, len(orders))
	for _, o := range orders {
		if o.ID == exclude || o.PaidAt == nil || o.Status == models.StatusCancelled {
			continue
		}
		times = append(times, *o.PaidAt)
	}
	return times
}

// Текущая серия пользователя
func (s *LoyaltyService) GetStreak(ctx context.Context, userId uuid.UUID) (models.Streak, error) {
	if _, err := s.db.GetAccount(ctx, userId); err != nil {
		return models.Streak{}, err
	}
	orders, err := s.db.PaidOrders(ctx, userId)
	if err != nil {
		return models.Streak{}, err
	}
	return CalculateStreak(paidTimes(orders, uuid.Nil), s.now()), nil
}
