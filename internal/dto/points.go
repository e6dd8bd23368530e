package dto

import "time"

type PointsBalanceResponseDTO struct {
	UserID       int                     `json:"user_id"`
	PointsEarned int                     `json:"points_earned" example:"2000"`
	RankID       int                     `json:"rank_id" example:"2"`
	History      []PointsHistoryEntryDTO `json:"history"`
}

type PointsHistoryEntryDTO struct {
	TransactionID string    `json:"transaction_id"`
	PointsEarned  int       `json:"points_earned" example:"10"`
	CreatedAt     time.Time `json:"created_at"`
}
