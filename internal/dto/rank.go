package dto

type RankRequestDTO struct {
	Name                string `json:"name" example:"Silver"`
	RequiredPoints      int    `json:"required_points" example:"2000"`
	PurchaseUnitAmount  int    `json:"purchase_unit_amount" example:"100000"`
	FixedPointRate      int    `json:"fixed_point_rate" example:"10"`
	PercentageRate      int    `json:"percentage_rate" example:"2"`
	MaxPercentagePoints int    `json:"max_percentage_points" example:"100"`
}

type RankResponseDTO struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	RequiredPoints      int    `json:"required_points"`
	PurchaseUnitAmount  int    `json:"purchase_unit_amount"`
	FixedPointRate      int    `json:"fixed_point_rate"`
	PercentageRate      int    `json:"percentage_rate"`
	MaxPercentagePoints int    `json:"max_percentage_points"`
}
