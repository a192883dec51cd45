package dto

import "time"

type CreateItemRequestDTO struct {
	Name          string `json:"name" validate:"required" example:"Vintage clock"`
	Description   string `json:"description" example:"Brass, working"`
	StartingPrice int64  `json:"starting_price" validate:"gte=0" example:"100"`
	XPReward      int64  `json:"xp_reward" validate:"gte=0" example:"25"`
	SellerID      *int   `json:"seller_id,omitempty" validate:"omitempty,gt=0" example:"9"`
}

type ItemResponseDTO struct {
	ID            string `json:"id" example:"0a6b3c8e-2d4f-4e1a-8c7b-5f9e1d2c3b4a"`
	Name          string `json:"name" example:"Vintage clock"`
	Description   string `json:"description" example:"Brass, working"`
	StartingPrice int64  `json:"starting_price" example:"100"`
	XPReward      int64  `json:"xp_reward" example:"25"`
	SellerID      *int   `json:"seller_id,omitempty" example:"9"`
}

type CreateAuctionRequestDTO struct {
	ItemID        string    `json:"item_id" validate:"required,uuid" example:"0a6b3c8e-2d4f-4e1a-8c7b-5f9e1d2c3b4a"`
	StartTime     time.Time `json:"start_time" validate:"required" example:"2026-10-16T11:00:00Z"`
	EndTime       time.Time `json:"end_time" validate:"required,gtfield=StartTime" example:"2026-10-16T12:00:00Z"`
	StartingPrice int64     `json:"starting_price" validate:"gte=0" example:"0"`
}

type GrantPowerUpRequestDTO struct {
	OwnerID   int        `json:"owner_id" validate:"gt=0" example:"7"`
	Type      string     `json:"type" validate:"required,oneof=price_freeze bid_shield sniper_extend discount" example:"discount"`
	Uses      int        `json:"uses" validate:"min=1" example:"1"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" example:"2026-12-31T00:00:00Z"`
}

type FlushResponseDTO struct {
	Accounts        int   `json:"accounts" example:"2"`
	CurrencyApplied int64 `json:"currency_applied" example:"0"`
	XPApplied       int64 `json:"xp_applied" example:"25"`
	CurrencyClamped int64 `json:"currency_clamped" example:"0"`
	XPClamped       int64 `json:"xp_clamped" example:"0"`
	Failed          []int `json:"failed,omitempty" example:"3"`
}
