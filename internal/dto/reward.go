package dto

import "time"

type CreateRewardRequestDTO struct {
	StoreID        string     `json:"store_id" example:"1f1e8aca-9f0b-4f0e-8f39-1bb4e5a7d401"`
	Name           string     `json:"name" example:"Free coffee"`
	PointsRequired int        `json:"points_required" example:"500"`
	Quantity       int        `json:"quantity" example:"10"`
	ExpiredAt      *time.Time `json:"expired_at,omitempty"`
}

type RewardResponseDTO struct {
	ID             string     `json:"id"`
	StoreID        string     `json:"store_id"`
	Name           string     `json:"name"`
	PointsRequired int        `json:"points_required"`
	Quantity       int        `json:"quantity"`
	ExpiredAt      *time.Time `json:"expired_at,omitempty"`
}
