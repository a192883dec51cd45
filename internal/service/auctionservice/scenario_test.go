package auctionservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	memrepo "github.com/GlebRadaev/auctionhouse/internal/repo/mem-repo"
	"github.com/GlebRadaev/auctionhouse/internal/service/powerupservice"
)

type house struct {
	store    *memrepo.Store
	auctions *Service
	powerUps *powerupservice.Service
}

func newHouse(now time.Time) *house {
	store := memrepo.New()
	pus := powerupservice.New(store, store.PowerUps(), store.Auctions(), store.Effects(), powerupservice.DefaultRules())
	s := New(store, store.Auctions(), store.Items(), store.Bids(), store.Effects(), pus)
	s.clock = func() time.Time { return now }
	return &house{store: store, auctions: s, powerUps: pus}
}

// openAuction creates an item priced at 100 and an auction for it that is already active.
func (h *house) openAuction(t *testing.T, now, end time.Time) *domain.Auction {
	t.Helper()
	ctx := context.Background()
	item, err := h.auctions.CreateItem(ctx, CreateItemRequest{Name: "Painting", StartingPrice: 100, XPReward: 50})
	require.NoError(t, err)
	a, err := h.auctions.CreateAuction(ctx, CreateAuctionRequest{ItemID: item.ID, StartTime: now.Add(-time.Minute), EndTime: end})
	require.NoError(t, err)
	ok, err := h.store.Auctions().Activate(ctx, a.ID, now)
	require.NoError(t, err)
	require.True(t, ok)
	return a
}

func TestPlaceBid_StaleRetry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	res, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 120, ExpectedVersion: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Version)

	_, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 2, Amount: 115, ExpectedVersion: 0})
	var stale *domain.StaleBidError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, int64(120), stale.CurrentPrice)
	assert.Equal(t, int64(1), stale.Version)

	res, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 2, Amount: 130, ExpectedVersion: stale.Version})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Version)
	assert.Equal(t, int64(130), res.Price)

	state, err := h.auctions.GetAuctionState(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentHighestBidder)
	assert.Equal(t, 2, *state.CurrentHighestBidder)

	bids, err := h.auctions.ListBids(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.Equal(t, int64(1), bids[0].ResultingVersion)
	assert.Equal(t, int64(2), bids[1].ResultingVersion)
}

func TestPlaceBid_AmountMustExceedPrice(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	for _, amount := range []int64{1, 99, 100} {
		_, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: amount})
		assert.ErrorIs(t, err, domain.ErrBidTooLow, "amount %d", amount)
	}
	_, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 101})
	assert.NoError(t, err)
}

func TestPlaceBid_ConcurrentBidders(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	const bidders = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []int64
	)
	wg.Add(bidders)
	for i := range bidders {
		go func(bidder int, amount int64) {
			defer wg.Done()
			_, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: bidder, Amount: amount, ExpectedVersion: 0})
			if err == nil {
				mu.Lock()
				winners = append(winners, amount)
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, domain.ErrStaleBid) || errors.Is(err, domain.ErrBidTooLow), "unexpected error: %v", err)
		}(i+1, int64(101+i))
	}
	wg.Wait()

	require.Len(t, winners, 1)
	state, err := h.auctions.GetAuctionState(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.Version)
	assert.Equal(t, winners[0], state.CurrentPrice)
}

func TestPlaceBid_ConcurrentRetriesKeepPriceMonotonic(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	const bidders = 10
	var wg sync.WaitGroup
	wg.Add(bidders)
	for i := range bidders {
		go func(bidder int) {
			defer wg.Done()
			version := int64(0)
			for step := int64(1); step <= 5; step++ {
				amount := 100 + int64(bidder)*10 + step
				_, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: bidder, Amount: amount, ExpectedVersion: version})
				var stale *domain.StaleBidError
				if errors.As(err, &stale) {
					version = stale.Version
					continue
				}
				if err == nil {
					version++
				}
			}
		}(i + 1)
	}
	wg.Wait()

	bids, err := h.auctions.ListBids(ctx, a.ID)
	require.NoError(t, err)
	require.NotEmpty(t, bids)
	for i := 1; i < len(bids); i++ {
		assert.Equal(t, bids[i-1].ResultingVersion+1, bids[i].ResultingVersion)
		assert.Greater(t, bids[i].Amount, bids[i-1].Amount)
	}

	state, err := h.auctions.GetAuctionState(ctx, a.ID)
	require.NoError(t, err)
	last := bids[len(bids)-1]
	assert.Equal(t, last.Amount, state.CurrentPrice)
	assert.Equal(t, last.ResultingVersion, state.Version)
	assert.Equal(t, last.BidderID, *state.CurrentHighestBidder)
}

func TestPlaceBid_ClosedAuctions(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)

	ended := h.openAuction(t, now, now.Add(time.Hour))
	ok, err := h.store.Auctions().End(ctx, ended.ID, now.Add(2*time.Hour))
	require.NoError(t, err)
	require.True(t, ok)

	settled := h.openAuction(t, now, now.Add(time.Hour))
	_, err = h.store.Auctions().End(ctx, settled.ID, now.Add(2*time.Hour))
	require.NoError(t, err)
	_, err = h.store.Auctions().MarkSettled(ctx, settled.ID, now.Add(2*time.Hour))
	require.NoError(t, err)

	cancelled := h.openAuction(t, now, now.Add(time.Hour))
	require.NoError(t, h.auctions.CancelAuction(ctx, cancelled.ID))

	expired := h.openAuction(t, now, now)

	for _, id := range []uuid.UUID{ended.ID, settled.ID, cancelled.ID, expired.ID} {
		_, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: id, BidderID: 1, Amount: 500})
		assert.ErrorIs(t, err, domain.ErrAuctionNotActive)
	}

	assert.ErrorIs(t, h.auctions.CancelAuction(ctx, settled.ID), domain.ErrInvalidTransition)
	assert.ErrorIs(t, h.auctions.CancelAuction(ctx, ended.ID), domain.ErrInvalidTransition)
}

func TestPlaceBid_SniperExtend(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	end := now.Add(20 * time.Second)
	a := h.openAuction(t, now, end)

	sniper, err := h.powerUps.Grant(ctx, 1, domain.PowerUpSniperExtend, 1, nil)
	require.NoError(t, err)

	res, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 150, PowerUpIDs: []uuid.UUID{sniper.ID}})
	require.NoError(t, err)
	assert.Equal(t, end.Add(30*time.Second), res.EndTime)
	assert.Equal(t, int64(2), res.Version)

	// the old deadline no longer ends the auction
	ok, err := h.store.Auctions().End(ctx, a.ID, end)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 2, Amount: 160, PowerUpIDs: []uuid.UUID{sniper.ID}, ExpectedVersion: 2})
	assert.ErrorIs(t, err, domain.ErrPowerUpNotOwned)

	p, err := h.store.PowerUps().Get(ctx, sniper.ID)
	require.NoError(t, err)
	assert.True(t, p.Inert())
}

func TestPlaceBid_DiscountAndRollback(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	discount, err := h.powerUps.Grant(ctx, 1, domain.PowerUpDiscount, 1, nil)
	require.NoError(t, err)

	past := now.Add(-time.Second)
	stale, err := h.powerUps.Grant(ctx, 1, domain.PowerUpBidShield, 1, &past)
	require.NoError(t, err)

	// the discount is consumed before the expired shield fails, and is given back
	_, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 200, PowerUpIDs: []uuid.UUID{discount.ID, stale.ID}})
	require.ErrorIs(t, err, domain.ErrPowerUpExpired)
	p, err := h.store.PowerUps().Get(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.UsesLeft)

	res, err := h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 200, PowerUpIDs: []uuid.UUID{discount.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(200), res.Price)
	assert.Equal(t, int64(180), res.Charged)

	stored, err := h.store.Auctions().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), stored.CurrentPrice)
	assert.Equal(t, int64(180), stored.ChargeAmount)
}

func TestPlaceBid_FreezeBlocksOthers(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	h := newHouse(now)
	a := h.openAuction(t, now, now.Add(time.Hour))

	freeze, err := h.powerUps.Grant(ctx, 1, domain.PowerUpPriceFreeze, 1, nil)
	require.NoError(t, err)
	_, err = h.powerUps.Activate(ctx, freeze.ID, 1, a.ID)
	require.NoError(t, err)

	_, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 2, Amount: 150, ExpectedVersion: 1})
	var blocked *domain.BidBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 1, blocked.OwnerID)

	_, err = h.auctions.PlaceBid(ctx, PlaceBidRequest{AuctionID: a.ID, BidderID: 1, Amount: 150, ExpectedVersion: 1})
	assert.NoError(t, err)
}
