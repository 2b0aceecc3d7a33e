package cloudz

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrDuplicateActiveReward   = errors.New("duplicate active reward")
	ErrInvalidReward           = errors.New("invalid or already used reward")
	ErrInconsistentLedgerWrite = errors.New("inconsistent ledger write")
	ErrInvalidReferralCode     = errors.New("invalid referral code")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrDuplicateLedgerKey      = errors.New("ledger entry already recorded")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidOrder            = errors.New("invalid order")
	ErrInvalidAccount          = errors.New("invalid account")
	ErrDuplicateAccount        = errors.New("account already exists")
	ErrDuplicateReferralCode   = errors.New("referral code already taken")
	ErrInvalidProduct          = errors.New("invalid product")
)
