package repo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"github.com/GlebRadaev/auctionhouse/internal/testutil"
)

func TestPostgres_BidCompareAndSet(t *testing.T) {
	pool := testutil.StartPostgresContainer(t)
	repos := New(pg.New(pool), pg.NewTXManager(pool))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	item := &domain.AuctionItem{ID: uuid.New(), Name: "Lamp", StartingPrice: 100, XPReward: 50, CreatedAt: now}
	require.NoError(t, repos.Items.Create(ctx, item))

	a, err := repos.Auctions.Create(ctx, &domain.Auction{
		ID:            uuid.New(),
		ItemID:        item.ID,
		Status:        domain.StatusActive,
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(time.Minute),
		StartingPrice: 100,
		XPReward:      50,
		CreatedAt:     now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.Version)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for bidder := 1; bidder <= 10; bidder++ {
		wg.Add(1)
		go func(bidder int) {
			defer wg.Done()
			amount := int64(100 + bidder)
			err := repos.TXManager.Begin(ctx, func(ctx context.Context) error {
				updated, err := repos.Auctions.ApplyBid(ctx, a.ID, 0, bidder, amount, amount, now)
				if err != nil || updated == nil {
					return err
				}
				wins.Add(1)
				return repos.Bids.Append(ctx, &domain.Bid{
					ID:               uuid.New(),
					AuctionID:        a.ID,
					BidderID:         bidder,
					Amount:           amount,
					ChargedAmount:    amount,
					AcceptedAt:       now,
					ResultingVersion: updated.Version,
				})
			})
			assert.NoError(t, err)
		}(bidder)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	bids, err := repos.Bids.ListByAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	state, err := repos.Auctions.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.Version)
	assert.Equal(t, bids[0].Amount, state.CurrentPrice)
	assert.True(t, state.IsLeader(bids[0].BidderID))

	ended, err := repos.Auctions.End(ctx, a.ID, now)
	require.NoError(t, err)
	assert.False(t, ended, "deadline not reached")
}

func TestPostgres_StageAndFlush(t *testing.T) {
	pool := testutil.StartPostgresContainer(t)
	repos := New(pg.New(pool), pg.NewTXManager(pool))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repos.Accounts.Stage(ctx, 1, 50, 5, now))
	require.NoError(t, repos.Accounts.Stage(ctx, 1, -80, 5, now))

	ids, err := repos.Accounts.ListStaged(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	flushed, err := repos.Accounts.Flush(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, flushed)
	assert.Equal(t, int64(0), flushed.CurrencyBalance)
	assert.Equal(t, int64(30), flushed.CurrencyClamped())
	assert.Equal(t, int64(10), flushed.XPBalance)

	again, err := repos.Accounts.Flush(ctx, 1, now)
	require.NoError(t, err)
	assert.Nil(t, again)
}
