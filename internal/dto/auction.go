package dto

import "time"

type PlaceBidRequestDTO struct {
	Amount          int64    `json:"amount" validate:"gt=0" example:"130"`
	ExpectedVersion *int64   `json:"expected_version,omitempty" validate:"omitempty,gte=0" example:"1"`
	PowerUps        []string `json:"power_ups,omitempty" validate:"omitempty,dive,uuid" example:"3f0c2a9e-8f1d-4a53-9a2b-1c1e5d0f7b11"`
}

type PlaceBidResponseDTO struct {
	BidID   string              `json:"bid_id" example:"9b2e4c55-7a7e-4c1f-b0e8-4d2d8f3f5e21"`
	Price   int64               `json:"price" example:"130"`
	Charged int64               `json:"charged" example:"117"`
	Version int64               `json:"version" example:"2"`
	EndTime time.Time           `json:"end_time" example:"2026-10-16T12:00:30Z"`
	Effects []EffectResponseDTO `json:"effects,omitempty"`
}

type StaleBidResponseDTO struct {
	Error   string `json:"error" example:"stale bid"`
	Price   int64  `json:"price" example:"120"`
	Version int64  `json:"version" example:"1"`
}

type BidBlockedResponseDTO struct {
	Error   string    `json:"error" example:"bid blocked by price_freeze of user 7 until 2026-10-16T12:00:10Z"`
	Effect  string    `json:"effect" example:"price_freeze"`
	OwnerID int       `json:"owner_id" example:"7"`
	Until   time.Time `json:"until" example:"2026-10-16T12:00:10Z"`
}

type AuctionResponseDTO struct {
	ID                   string    `json:"id" example:"6d1f0e1a-1b7c-4b8e-9f53-2b0f4b8a6c10"`
	Status               string    `json:"status" example:"active"`
	CurrentPrice         int64     `json:"current_price" example:"120"`
	CurrentHighestBidder *int      `json:"current_highest_bidder,omitempty" example:"7"`
	StartTime            time.Time `json:"start_time" example:"2026-10-16T11:00:00Z"`
	EndTime              time.Time `json:"end_time" example:"2026-10-16T12:00:00Z"`
	Version              int64     `json:"version" example:"1"`
}

type BidResponseDTO struct {
	ID         string    `json:"id" example:"9b2e4c55-7a7e-4c1f-b0e8-4d2d8f3f5e21"`
	BidderID   int       `json:"bidder_id" example:"7"`
	Amount     int64     `json:"amount" example:"120"`
	AcceptedAt time.Time `json:"accepted_at" example:"2026-10-16T11:30:00Z"`
	Version    int64     `json:"version" example:"1"`
}
