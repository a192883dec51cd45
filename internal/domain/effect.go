package domain

import (
	"time"

	"github.com/google/uuid"
)

// Effect is the resolved outcome of a power-up. The set of variants is closed:
// only types in this package implement it.
type Effect interface {
	Type() PowerUpType
	sealed()
}

// PriceFreeze rejects bids from anyone but its owner until Until.
type PriceFreeze struct {
	Until time.Time
}

// BidShield protects the owner's leading bid from being overtaken until Until.
type BidShield struct {
	Until time.Time
}

// SniperExtend pushes the auction end forward by Delta.
type SniperExtend struct {
	Delta      time.Duration
	NewEndTime time.Time
}

// Discount lowers what the winner is charged without touching the displayed price.
type Discount struct {
	Percent       int64
	ChargedAmount int64
}

func (PriceFreeze) Type() PowerUpType  { return PowerUpPriceFreeze }
func (BidShield) Type() PowerUpType    { return PowerUpBidShield }
func (SniperExtend) Type() PowerUpType { return PowerUpSniperExtend }
func (Discount) Type() PowerUpType     { return PowerUpDiscount }

func (PriceFreeze) sealed()  {}
func (BidShield) sealed()    {}
func (SniperExtend) sealed() {}
func (Discount) sealed()     {}

// Blocks reports whether an active auction effect rejects a bid from bidderID at now.
func (e AuctionEffect) Blocks(bidderID int, now time.Time) bool {
	if e.OwnerID == bidderID || !now.Before(e.ExpiresAt) {
		return false
	}
	return e.Type == PowerUpPriceFreeze || e.Type == PowerUpBidShield
}

// AppliedEffect is an effect resolved from a consumed power-up instance.
type AppliedEffect struct {
	PowerUpID uuid.UUID
	OwnerID   int
	Effect    Effect
}
