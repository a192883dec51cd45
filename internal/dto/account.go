package dto

import "time"

type AccountResponseDTO struct {
	Currency       int64 `json:"currency" example:"370"`
	XP             int64 `json:"xp" example:"25"`
	StagedCurrency int64 `json:"staged_currency" example:"-130"`
	StagedXP       int64 `json:"staged_xp" example:"25"`
}

type LedgerEntryResponseDTO struct {
	AuctionID string    `json:"auction_id" example:"6d1f0e1a-1b7c-4b8e-9f53-2b0f4b8a6c10"`
	Currency  int64     `json:"currency" example:"-130"`
	XP        int64     `json:"xp" example:"25"`
	Reason    string    `json:"reason" example:"auction_won"`
	CreatedAt time.Time `json:"created_at" example:"2026-10-16T12:00:01Z"`
}
