package dto

import "time"

type CreateTransactionRequestDTO struct {
	UserID       int     `json:"user_id" example:"1"`
	StoreID      string  `json:"store_id" example:"1f1e8aca-9f0b-4f0e-8f39-1bb4e5a7d401"`
	TotalPayment float64 `json:"total_payment" example:"250000"`
	PointType    string  `json:"point_type" example:"CLASSIC"`
}

type TransactionResponseDTO struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	StoreID      string    `json:"store_id"`
	TotalPayment float64   `json:"total_payment"`
	PointType    string    `json:"point_type"`
	CreatedAt    time.Time `json:"created_at"`
}
