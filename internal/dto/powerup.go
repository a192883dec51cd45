package dto

import (
	"time"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

type ActivatePowerUpRequestDTO struct {
	AuctionID string `json:"auction_id" validate:"required,uuid" example:"6d1f0e1a-1b7c-4b8e-9f53-2b0f4b8a6c10"`
}

type EffectResponseDTO struct {
	Type    string     `json:"type" example:"price_freeze"`
	Until   *time.Time `json:"until,omitempty" example:"2026-10-16T12:00:10Z"`
	EndTime *time.Time `json:"end_time,omitempty" example:"2026-10-16T12:00:30Z"`
	Percent int64      `json:"percent,omitempty" example:"10"`
	Charged int64      `json:"charged,omitempty" example:"117"`
}

type PowerUpResponseDTO struct {
	ID        string     `json:"id" example:"3f0c2a9e-8f1d-4a53-9a2b-1c1e5d0f7b11"`
	Type      string     `json:"type" example:"sniper_extend"`
	UsesLeft  int        `json:"uses_left" example:"1"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" example:"2026-12-31T00:00:00Z"`
	IsUsed    bool       `json:"is_used" example:"false"`
}

func NewEffectResponseDTO(e domain.Effect) EffectResponseDTO {
	out := EffectResponseDTO{Type: string(e.Type())}
	switch v := e.(type) {
	case domain.PriceFreeze:
		out.Until = &v.Until
	case domain.BidShield:
		out.Until = &v.Until
	case domain.SniperExtend:
		out.EndTime = &v.NewEndTime
	case domain.Discount:
		out.Percent = v.Percent
		out.Charged = v.ChargedAmount
	}
	return out
}
