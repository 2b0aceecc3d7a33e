package cloudz

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralLength   = 7
	referralAttempts = 10
)

// Реферальный код: 7 символов [A-Z0-9]
func NewReferralCode() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(referralAlphabet)))
	for i := 0; i < referralLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(referralAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Регистрация счета
func (s *LoyaltyService) RegisterAccount(ctx context.Context, in models.NewAccount) (models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return models.Account{}, fmt.Errorf("email %q: %w", in.Email, models.ErrInvalidAccount)
	}

	account := models.Account{
		ID:        uuid.New(),
		Email:     email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: s.now(),
	}
	if in.ID != nil && *in.ID != uuid.Nil {
		account.ID = *in.ID
		_, err := s.db.GetAccount(ctx, account.ID)
		if err == nil {
			return models.Account{}, fmt.Errorf("account %s: %w", account.ID, models.ErrDuplicateAccount)
		}
		if !errors.Is(err, models.ErrNotFound) {
			return models.Account{}, err
		}
	}

	// реферер
	if code := NormalizeReferralCode(in.ReferralCode); code != "" {
		referrer, err := s.db.GetAccountByReferralCode(ctx, code)
		if errors.Is(err, models.ErrNotFound) {
			return models.Account{}, fmt.Errorf("referral code %s: %w", code, models.ErrInvalidReferralCode)
		}
		if err != nil {
			return models.Account{}, err
		}
		if referrer.ID != account.ID {
			account.ReferredBy = &referrer.ID
		}
	}

	for i := 0; i < referralAttempts; i++ {
		code, err := NewReferralCode()
		if err != nil {
			return models.Account{}, err
		}
		_, err = s.db.GetAccountByReferralCode(ctx, code)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return models.Account{}, err
		}
		account.ReferralCode = code

		err = s.db.CreateAccount(ctx, account)
		if errors.Is(err, models.ErrDuplicateReferralCode) {
			// гонка за код
			continue
		}
		if errors.Is(err, models.ErrDuplicateAccount) {
			return models.Account{}, fmt.Errorf("account %s: %w", account.ID, err)
		}
		if err != nil {
			return models.Account{}, err
		}
		s.logger.Info("Account registered",
			zap.String("user", account.ID.String()),
			zap.Bool("referred", account.ReferredBy != nil))
		return account, nil
	}
	return models.Account{}, fmt.Errorf("could not generate unique referral code")
}

func (s *LoyaltyService) GetAccount(ctx context.Context, userId uuid.UUID) (models.Account, error) {
	return s.db.GetAccount(ctx, userId)
}
