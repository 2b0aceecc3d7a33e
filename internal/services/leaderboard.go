package cloudz

import (
	"context"
	"strings"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const leaderboardLimit = 20

// "Имя Ф."
func DisplayName(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" {
		return "Member"
	}
	if last == "" {
		return first
	}
	r := []rune(last)
	return first + " " + strings.ToUpper(string(r[0])) + "."
}

// Рейтинг по баллам и по приглашениям
func (s *LoyaltyService) GetLeaderboard(ctx context.Context, current uuid.UUID) (models.Leaderboard, error) {
	var byPoints, byReferrals []models.Account

	g, errorctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := s.db.TopByBalance(errorctx, leaderboardLimit)
		byPoints = accounts
		return err
	})
	g.Go(func() error {
		accounts, err := s.db.TopByReferrals(errorctx, leaderboardLimit)
		byReferrals = accounts
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Leaderboard{}, err
	}

	board := models.Leaderboard{
		ByPoints:    make([]models.LeaderboardEntry, 0, len(byPoints)),
		ByReferrals: make([]models.LeaderboardEntry, 0, len(byReferrals)),
	}
	for _, a := range byPoints {
		board.ByPoints = append(board.ByPoints, s.leaderboardEntry(len(board.ByPoints)+1, a, current))
	}
	for _, a := range byReferrals {
		if a.ReferralCount <= 0 {
			continue
		}
		board.ByReferrals = append(board.ByReferrals, s.leaderboardEntry(len(board.ByReferrals)+1, a, current))
	}
	return board, nil
}

func (s *LoyaltyService) leaderboardEntry(rank int, a models.Account, current uuid.UUID) models.LeaderboardEntry {
	entry := models.LeaderboardEntry{
		Rank:          rank,
		DisplayName:   DisplayName(a.FirstName, a.LastName),
		Points:        a.Balance,
		ReferralCount: a.ReferralCount,
		TierColor:     config.NoTierColor,
		IsCurrentUser: a.ID == current,
	}
	if tier, ok := s.tiers.Highest(a.Balance); ok {
		name := tier.Name
		entry.Tier = &name
		if tier.Color != "" {
			entry.TierColor = tier.Color
		}
	}
	return entry
}
