package domain

import "errors"

// Business-rule errors shared across services. Handlers map these to
// response codes; anything else is treated as a storage failure.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrStoreNotFound       = errors.New("store not found")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRankNotFound        = errors.New("rank not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidRank          = errors.New("rank has invalid rate configuration")
	ErrInvalidPaymentAmount = errors.New("total payment must be positive")
	ErrInvalidPointType     = errors.New("point type must be CLASSIC or PERCENTAGE")

	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInsufficientStock  = errors.New("insufficient reward stock")
	ErrRewardExpired      = errors.New("reward expired")
	ErrNoEligibleRank     = errors.New("no eligible rank for balance")

	// ErrConcurrencyConflict marks lock or serialization contention; safe to retry.
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
)
