package dto

import "time"

type CreateRedemptionRequestDTO struct {
	UserID   int    `json:"user_id" example:"1"`
	RewardID string `json:"reward_id" example:"34c9f87e-21c5-41f5-b376-1d4252c2c35a"`
	StoreID  string `json:"store_id" example:"1f1e8aca-9f0b-4f0e-8f39-1bb4e5a7d401"`
	Quantity int    `json:"quantity" example:"1"`
}

type RedemptionResponseDTO struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	RewardID     string    `json:"reward_id"`
	StoreID      string    `json:"store_id"`
	Quantity     int       `json:"quantity"`
	PointRewards int       `json:"point_rewards"`
	CreatedAt    time.Time `json:"created_at"`
}
