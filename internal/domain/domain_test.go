package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/peterldowns/testy/check"
)

func TestAuctionStatus_CanTransitionTo(t *testing.T) {
	check.True(t, StatusScheduled.CanTransitionTo(StatusActive))
	check.True(t, StatusActive.CanTransitionTo(StatusEnded))
	check.True(t, StatusEnded.CanTransitionTo(StatusSettled))
	check.True(t, StatusScheduled.CanTransitionTo(StatusCancelled))
	check.True(t, StatusActive.CanTransitionTo(StatusCancelled))

	// no skipping and no moving backwards
	check.False(t, StatusScheduled.CanTransitionTo(StatusEnded))
	check.False(t, StatusEnded.CanTransitionTo(StatusActive))
	check.False(t, StatusSettled.CanTransitionTo(StatusEnded))
	check.False(t, StatusEnded.CanTransitionTo(StatusCancelled))
	check.False(t, StatusCancelled.CanTransitionTo(StatusActive))
	check.False(t, StatusSettled.CanTransitionTo(StatusCancelled))
}

func TestAuction_AcceptsBidsAt(t *testing.T) {
	end := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	a := Auction{Status: StatusActive, EndTime: end}

	check.True(t, a.AcceptsBidsAt(end.Add(-time.Second)))
	check.False(t, a.AcceptsBidsAt(end))

	a.Status = StatusEnded
	check.False(t, a.AcceptsBidsAt(end.Add(-time.Hour)))
}

func TestPowerUp_InertAndExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(time.Minute)

	p := PowerUp{UsesLeft: 1, ExpiresAt: &exp}
	check.False(t, p.Inert())
	check.False(t, p.ExpiredAt(now))
	check.True(t, p.ExpiredAt(exp))

	p.UsesLeft = 0
	check.True(t, p.Inert())

	p = PowerUp{UsesLeft: 3, IsUsed: true}
	check.True(t, p.Inert())
	check.False(t, p.ExpiredAt(now))
}

func TestAuctionEffect_Blocks(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	freeze := AuctionEffect{Type: PowerUpPriceFreeze, OwnerID: 1, ExpiresAt: now.Add(10 * time.Second)}

	check.True(t, freeze.Blocks(2, now))
	check.False(t, freeze.Blocks(1, now))
	check.False(t, freeze.Blocks(2, now.Add(10*time.Second)))

	shield := AuctionEffect{Type: PowerUpBidShield, OwnerID: 1, ExpiresAt: now.Add(time.Second)}
	check.True(t, shield.Blocks(3, now))

	extend := AuctionEffect{Type: PowerUpSniperExtend, OwnerID: 1, ExpiresAt: now.Add(time.Hour)}
	check.False(t, extend.Blocks(3, now))
}

func TestEffect_Type(t *testing.T) {
	effects := []Effect{PriceFreeze{}, BidShield{}, SniperExtend{}, Discount{}}
	want := []PowerUpType{PowerUpPriceFreeze, PowerUpBidShield, PowerUpSniperExtend, PowerUpDiscount}
	for i, e := range effects {
		check.Equal(t, want[i], e.Type())
		check.True(t, e.Type().Valid())
	}
	check.False(t, PowerUpType("teleport").Valid())
}

func TestFlushedAccount_Clamped(t *testing.T) {
	f := FlushedAccount{PrevCurrency: 100, StagedCurrency: -130, CurrencyBalance: 0, PrevXP: 5, StagedXP: 10, XPBalance: 15}
	check.Equal(t, int64(30), f.CurrencyClamped())
	check.Equal(t, int64(0), f.XPClamped())
}

func TestTypedErrors(t *testing.T) {
	var err error = &StaleBidError{CurrentPrice: 120, Version: 1}
	check.True(t, errors.Is(err, ErrStaleBid))

	var stale *StaleBidError
	check.True(t, errors.As(err, &stale))
	check.Equal(t, int64(120), stale.CurrentPrice)

	err = &BidBlockedError{Effect: PowerUpBidShield, OwnerID: 7, Until: time.Date(2026, 1, 1, 0, 0, 15, 0, time.UTC)}
	check.True(t, errors.Is(err, ErrBidBlocked))
	check.Equal(t, "bid blocked by bid_shield of user 7 until 2026-01-01T00:00:15Z", err.Error())

	err = &AuctionNotActiveError{Status: StatusEnded}
	check.True(t, errors.Is(err, ErrAuctionNotActive))

	err = &FlushPartialFailureError{Failures: []FlushFailure{{UserID: 3, Err: errors.New("boom")}}}
	check.True(t, errors.Is(err, ErrFlushPartialFailure))
	check.Equal(t, "flush failed for 1 account(s): user 3: boom", err.Error())
}
