package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrStaleBid          = errors.New("stale bid")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrBidBlocked        = errors.New("bid blocked")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidAuction    = errors.New("invalid auction")
	ErrInvalidTransition = errors.New("invalid auction status transition")
	ErrAuctionNotEnded   = errors.New("auction is not ended")

	ErrPowerUpNotFound     = errors.New("power-up not found")
	ErrPowerUpNotOwned     = errors.New("power-up is not owned by caller")
	ErrPowerUpExpired      = errors.New("power-up expired")
	ErrPowerUpExhausted    = errors.New("power-up exhausted")
	ErrEffectNotApplicable = errors.New("power-up effect not applicable")
	ErrDuplicatePowerUp    = errors.New("power-up applied more than once")
	ErrInvalidPowerUp      = errors.New("invalid power-up")

	ErrSettlementDeferred  = errors.New("settlement deferred")
	ErrFlushPartialFailure = errors.New("flush partially failed")
)

// StaleBidError carries the fresh baseline the caller should retry with.
type StaleBidError struct {
	CurrentPrice int64
	Version      int64
}

func (e *StaleBidError) Error() string {
	return fmt.Sprintf("stale bid: current price %d, version %d", e.CurrentPrice, e.Version)
}

func (e *StaleBidError) Unwrap() error {
	return ErrStaleBid
}

type AuctionNotActiveError struct {
	Status AuctionStatus
}

func (e *AuctionNotActiveError) Error() string {
	return fmt.Sprintf("auction is not active: status %s", e.Status)
}

func (e *AuctionNotActiveError) Unwrap() error {
	return ErrAuctionNotActive
}

// BidBlockedError names the effect that interfered, so it can be shown to the bidder.
type BidBlockedError struct {
	Effect  PowerUpType
	OwnerID int
	Until   time.Time
}

func (e *BidBlockedError) Error() string {
	return fmt.Sprintf("bid blocked by %s of user %d until %s", e.Effect, e.OwnerID, e.Until.UTC().Format(time.RFC3339))
}

func (e *BidBlockedError) Unwrap() error {
	return ErrBidBlocked
}

type FlushFailure struct {
	UserID int
	Err    error
}

type FlushPartialFailureError struct {
	Failures []FlushFailure
}

func (e *FlushPartialFailureError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("user %d: %v", f.UserID, f.Err))
	}
	return fmt.Sprintf("flush failed for %d account(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e *FlushPartialFailureError) Unwrap() error {
	return ErrFlushPartialFailure
}
