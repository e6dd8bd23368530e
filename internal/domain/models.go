package domain

import (
	"time"

	"github.com/google/uuid"
)

// Point accrual modes for a transaction.
const (
	PointTypeClassic    string = "CLASSIC"
	PointTypePercentage string = "PERCENTAGE"
)

type Rank struct {
	ID                  int       `db:"id"`
	Name                string    `db:"name"`
	RequiredPoints      int       `db:"required_points"`
	PurchaseUnitAmount  int       `db:"purchase_unit_amount"`
	FixedPointRate      int       `db:"fixed_point_rate"`
	PercentageRate      int       `db:"percentage_rate"`
	MaxPercentagePoints int       `db:"max_percentage_points"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PointsEarned int       `db:"points_earned"`
	RankID       int       `db:"rank_id"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Store struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	IsActive   bool      `db:"is_active"`
	IsApproved bool      `db:"is_approved"`
	CreatedAt  time.Time `db:"created_at"`
}

type Transaction struct {
	ID           uuid.UUID `db:"id"`
	UserID       int       `db:"user_id"`
	StoreID      uuid.UUID `db:"store_id"`
	TotalPayment float64   `db:"total_payment"`
	PointType    string    `db:"point_type"`
	CreatedAt    time.Time `db:"created_at"`
}

// PointsHistory is an append-only ledger row: one delta per accrual event.
// TransactionID goes null when the tagged transaction is deleted
// administratively; the delta itself is never removed.
type PointsHistory struct {
	ID            int64         `db:"id"`
	UserID        int           `db:"user_id"`
	TransactionID uuid.NullUUID `db:"transaction_id"`
	PointsEarned  int           `db:"points_earned"`
	CreatedAt     time.Time     `db:"created_at"`
}

type RankHistory struct {
	ID        int64     `db:"id"`
	UserID    int       `db:"user_id"`
	RankID    int       `db:"rank_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Reward struct {
	ID             uuid.UUID  `db:"id"`
	StoreID        uuid.UUID  `db:"store_id"`
	Name           string     `db:"name"`
	PointsRequired int        `db:"points_required"`
	Quantity       int        `db:"quantity"`
	ExpiredAt      *time.Time `db:"expired_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type Redemption struct {
	ID           uuid.UUID `db:"id"`
	UserID       int       `db:"user_id"`
	RewardID     uuid.UUID `db:"reward_id"`
	StoreID      uuid.UUID `db:"store_id"`
	Quantity     int       `db:"quantity"`
	PointRewards int       `db:"point_rewards"`
	CreatedAt    time.Time `db:"created_at"`
}

// StoreUser marks that a user has transacted with a store at least once.
type StoreUser struct {
	UserID    int       `db:"user_id"`
	StoreID   uuid.UUID `db:"store_id"`
	CreatedAt time.Time `db:"created_at"`
}
