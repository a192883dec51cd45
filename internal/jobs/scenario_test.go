package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	memrepo "github.com/GlebRadaev/auctionhouse/internal/repo/mem-repo"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/ledgerservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/powerupservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
)

type world struct {
	store     *memrepo.Store
	auctions  *auctionservice.Service
	powerUps  *powerupservice.Service
	ledger    *ledgerservice.Service
	lifecycle *LifecycleManager
}

func newWorld(t *testing.T) *world {
	store := memrepo.New()
	pus := powerupservice.New(store, store.PowerUps(), store.Auctions(), store.Effects(), powerupservice.DefaultRules())
	pool := NewWorkerPool(4)
	t.Cleanup(pool.Close)
	return &world{
		store:     store,
		auctions:  auctionservice.New(store, store.Auctions(), store.Items(), store.Bids(), store.Effects(), pus),
		powerUps:  pus,
		ledger:    ledgerservice.New(store.Accounts(), store.Ledger(), ledgerservice.Config{}),
		lifecycle: NewLifecycleManager(store.Auctions(), settlementservice.New(store, store.Auctions(), store.Accounts(), store.Ledger()), pool, time.Second, 100),
	}
}

func (w *world) sweepAt(t *testing.T, at time.Time) SweepReport {
	t.Helper()
	w.lifecycle.clock = func() time.Time { return at }
	report, err := w.lifecycle.Sweep(context.Background())
	require.NoError(t, err)
	return report
}

func (w *world) schedule(t *testing.T, seller int, start, end time.Time) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	item, err := w.auctions.CreateItem(ctx, auctionservice.CreateItemRequest{Name: "Clock", StartingPrice: 100, XPReward: 25, SellerID: &seller})
	require.NoError(t, err)
	a, err := w.auctions.CreateAuction(ctx, auctionservice.CreateAuctionRequest{ItemID: item.ID, StartTime: start, EndTime: end})
	require.NoError(t, err)
	return a.ID
}

func TestScenario_StaleRetryThroughSettlement(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	start := time.Now().Add(time.Second)
	end := start.Add(time.Minute)
	const alice, bob, seller = 1, 2, 9

	require.NoError(t, w.store.Accounts().Stage(ctx, bob, 500, 0, start))
	_, err := w.ledger.Flush(ctx)
	require.NoError(t, err)

	id := w.schedule(t, seller, start, end)
	assert.Equal(t, SweepReport{Activated: 1}, w.sweepAt(t, start))

	_, err = w.auctions.PlaceBid(ctx, auctionservice.PlaceBidRequest{AuctionID: id, BidderID: alice, Amount: 120})
	require.NoError(t, err)
	_, err = w.auctions.PlaceBid(ctx, auctionservice.PlaceBidRequest{AuctionID: id, BidderID: bob, Amount: 115})
	var stale *domain.StaleBidError
	require.ErrorAs(t, err, &stale)
	_, err = w.auctions.PlaceBid(ctx, auctionservice.PlaceBidRequest{AuctionID: id, BidderID: bob, Amount: 130, ExpectedVersion: stale.Version})
	require.NoError(t, err)

	assert.Equal(t, SweepReport{Ended: 1, Settled: 1}, w.sweepAt(t, end))
	assert.Equal(t, SweepReport{}, w.sweepAt(t, end.Add(time.Second)))

	bobAccount, err := w.ledger.GetAccount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(-130), bobAccount.StagedCurrencyDelta)
	assert.Equal(t, int64(25), bobAccount.StagedXPDelta)
	assert.Equal(t, int64(500), bobAccount.CurrencyBalance)

	report, err := w.ledger.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Accounts)

	bobAccount, err = w.ledger.GetAccount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(370), bobAccount.CurrencyBalance)
	assert.Equal(t, int64(25), bobAccount.XPBalance)

	sellerAccount, err := w.ledger.GetAccount(ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, int64(130), sellerAccount.CurrencyBalance)

	aliceAccount, err := w.ledger.GetAccount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, &domain.Account{UserID: alice}, aliceAccount)

	state, err := w.auctions.GetAuctionState(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSettled, state.Status)
}

func TestScenario_SniperExtendOutlivesStaleDeadline(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	start := time.Now().Add(-time.Minute)
	end := time.Now().Add(20 * time.Second)
	const sniper, seller = 1, 9

	id := w.schedule(t, seller, start, end)
	assert.Equal(t, SweepReport{Activated: 1}, w.sweepAt(t, time.Now()))

	p, err := w.powerUps.Grant(ctx, sniper, domain.PowerUpSniperExtend, 1, nil)
	require.NoError(t, err)
	res, err := w.auctions.PlaceBid(ctx, auctionservice.PlaceBidRequest{AuctionID: id, BidderID: sniper, Amount: 150, PowerUpIDs: []uuid.UUID{p.ID}})
	require.NoError(t, err)
	newEnd := end.Add(30 * time.Second)
	assert.Equal(t, newEnd, res.EndTime)

	// a sweep that read the old deadline must not end the auction
	assert.Equal(t, SweepReport{}, w.sweepAt(t, end))
	state, err := w.auctions.GetAuctionState(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, state.Status)

	assert.Equal(t, SweepReport{Ended: 1, Settled: 1}, w.sweepAt(t, newEnd))
}

func TestScenario_NoBidsSettlesWithoutLedger(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	now := time.Now()
	id := w.schedule(t, 9, now.Add(-time.Hour), now.Add(-time.Minute))

	assert.Equal(t, SweepReport{Activated: 1}, w.sweepAt(t, now))
	assert.Equal(t, SweepReport{Ended: 1, Settled: 1}, w.sweepAt(t, now))

	entries, err := w.ledger.ListEntries(ctx, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	state, err := w.auctions.GetAuctionState(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSettled, state.Status)
}
