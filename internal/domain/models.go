package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuctionStatus string

const (
	StatusScheduled AuctionStatus = "scheduled"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusSettled   AuctionStatus = "settled"
	StatusCancelled AuctionStatus = "cancelled"
)

var statusRank = map[AuctionStatus]int{
	StatusScheduled: 0,
	StatusActive:    1,
	StatusEnded:     2,
	StatusSettled:   3,
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Cancellation is only reachable from scheduled or active.
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	if next == StatusCancelled {
		return s == StatusScheduled || s == StatusActive
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

func (s AuctionStatus) Terminal() bool {
	return s == StatusSettled || s == StatusCancelled
}

type PowerUpType string

const (
	PowerUpPriceFreeze  PowerUpType = "price_freeze"
	PowerUpBidShield    PowerUpType = "bid_shield"
	PowerUpSniperExtend PowerUpType = "sniper_extend"
	PowerUpDiscount     PowerUpType = "discount"
)

func (t PowerUpType) Valid() bool {
	switch t {
	case PowerUpPriceFreeze, PowerUpBidShield, PowerUpSniperExtend, PowerUpDiscount:
		return true
	}
	return false
}

type Account struct {
	UserID              int       `db:"user_id"`
	CurrencyBalance     int64     `db:"currency_balance"`
	XPBalance           int64     `db:"xp_balance"`
	StagedCurrencyDelta int64     `db:"staged_currency_delta"`
	StagedXPDelta       int64     `db:"staged_xp_delta"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (a Account) HasStaged() bool {
	return a.StagedCurrencyDelta != 0 || a.StagedXPDelta != 0
}

type AuctionItem struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	StartingPrice int64     `db:"starting_price"`
	XPReward      int64     `db:"xp_reward"`
	SellerID      *int      `db:"seller_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type Auction struct {
	ID                   uuid.UUID     `db:"id"`
	ItemID               uuid.UUID     `db:"item_id"`
	Status               AuctionStatus `db:"status"`
	StartTime            time.Time     `db:"start_time"`
	EndTime              time.Time     `db:"end_time"`
	StartingPrice        int64         `db:"starting_price"`
	CurrentPrice         int64         `db:"current_price"`
	ChargeAmount         int64         `db:"charge_amount"`
	CurrentHighestBidder *int          `db:"current_highest_bidder"`
	Version              int64         `db:"version"`
	XPReward             int64         `db:"xp_reward"`
	SellerID             *int          `db:"seller_id"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
	SettledAt            *time.Time    `db:"settled_at"`
}

// AcceptsBidsAt reports whether a bid arriving at now may still be accepted.
func (a Auction) AcceptsBidsAt(now time.Time) bool {
	return a.Status == StatusActive && now.Before(a.EndTime)
}

func (a Auction) IsLeader(userID int) bool {
	return a.CurrentHighestBidder != nil && *a.CurrentHighestBidder == userID
}

type Bid struct {
	ID               uuid.UUID `db:"id"`
	AuctionID        uuid.UUID `db:"auction_id"`
	BidderID         int       `db:"bidder_id"`
	Amount           int64     `db:"amount"`
	ChargedAmount    int64     `db:"charged_amount"`
	AcceptedAt       time.Time `db:"accepted_at"`
	ResultingVersion int64     `db:"resulting_version"`
}

type PowerUp struct {
	ID        uuid.UUID   `db:"id"`
	OwnerID   int         `db:"owner_id"`
	Type      PowerUpType `db:"type"`
	UsesLeft  int         `db:"uses_left"`
	ExpiresAt *time.Time  `db:"expires_at"`
	IsUsed    bool        `db:"is_used"`
	CreatedAt time.Time   `db:"created_at"`
}

// Inert instances are excluded from resolution.
func (p PowerUp) Inert() bool {
	return p.IsUsed || p.UsesLeft <= 0
}

func (p PowerUp) ExpiredAt(now time.Time) bool {
	return p.ExpiresAt != nil && !now.Before(*p.ExpiresAt)
}

type AuctionEffect struct {
	ID          uuid.UUID   `db:"id"`
	AuctionID   uuid.UUID   `db:"auction_id"`
	PowerUpID   uuid.UUID   `db:"power_up_id"`
	OwnerID     int         `db:"owner_id"`
	Type        PowerUpType `db:"type"`
	ActivatedAt time.Time   `db:"activated_at"`
	ExpiresAt   time.Time   `db:"expires_at"`
}

const (
	LedgerReasonAuctionWon  = "auction_won"
	LedgerReasonAuctionSold = "auction_sold"
)

type LedgerEntry struct {
	ID            uuid.UUID `db:"id"`
	UserID        int       `db:"user_id"`
	AuctionID     uuid.UUID `db:"auction_id"`
	CurrencyDelta int64     `db:"currency_delta"`
	XPDelta       int64     `db:"xp_delta"`
	Reason        string    `db:"reason"`
	CreatedAt     time.Time `db:"created_at"`
}

// FlushedAccount is the outcome of applying one account's staged deltas.
type FlushedAccount struct {
	UserID          int
	PrevCurrency    int64
	PrevXP          int64
	StagedCurrency  int64
	StagedXP        int64
	CurrencyBalance int64
	XPBalance       int64
}

// CurrencyClamped is the part of a negative staged amount absorbed by the zero floor.
func (f FlushedAccount) CurrencyClamped() int64 {
	return clamped(f.PrevCurrency, f.StagedCurrency, f.CurrencyBalance)
}

func (f FlushedAccount) XPClamped() int64 {
	return clamped(f.PrevXP, f.StagedXP, f.XPBalance)
}

func clamped(prev, staged, after int64) int64 {
	return after - (prev + staged)
}
