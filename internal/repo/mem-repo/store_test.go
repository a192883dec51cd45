package memrepo

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
)

func seedAuction(t *testing.T, s *Store, now time.Time) *domain.Auction {
	t.Helper()
	item := &domain.AuctionItem{ID: uuid.New(), Name: "Lamp", StartingPrice: 100, CreatedAt: now}
	require.NoError(t, s.Items().Create(context.Background(), item))
	a, err := s.Auctions().Create(context.Background(), &domain.Auction{
		ID:            uuid.New(),
		ItemID:        item.ID,
		Status:        domain.StatusActive,
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(time.Minute),
		StartingPrice: 100,
		CreatedAt:     now,
	})
	require.NoError(t, err)
	return a
}

func TestStore_BeginRollsBackOnError(t *testing.T) {
	s := New()
	now := time.Now()

	err := s.Begin(context.Background(), func(ctx context.Context) error {
		require.NoError(t, s.Accounts().Stage(ctx, 1, -100, 10, now))
		return errors.New("stage failed")
	})
	assert.Error(t, err)

	account, err := s.Accounts().Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestStore_BeginCommits(t *testing.T) {
	s := New()
	now := time.Now()

	err := s.Begin(context.Background(), func(ctx context.Context) error {
		// nested Begin joins the outer transaction instead of deadlocking
		return s.Begin(ctx, func(ctx context.Context) error {
			return s.Accounts().Stage(ctx, 1, -100, 10, now)
		})
	})
	require.NoError(t, err)

	account, err := s.Accounts().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-100), account.StagedCurrencyDelta)
	assert.Equal(t, int64(10), account.StagedXPDelta)
}

func TestStore_BeginRestoresOnPanic(t *testing.T) {
	s := New()

	assert.Panics(t, func() {
		_ = s.Begin(context.Background(), func(ctx context.Context) error {
			_ = s.Accounts().Stage(ctx, 1, 5, 5, time.Now())
			panic("boom")
		})
	})

	account, err := s.Accounts().Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestAuctionRepo_ApplyBidIsCompareAndSet(t *testing.T) {
	s := New()
	now := time.Now()
	a := seedAuction(t, s, now)

	const bidders = 20
	var wg sync.WaitGroup
	wins := make(chan int64, bidders)
	for i := 1; i <= bidders; i++ {
		wg.Add(1)
		go func(bidder int) {
			defer wg.Done()
			amount := int64(100 + bidder)
			updated, err := s.Auctions().ApplyBid(context.Background(), a.ID, 0, bidder, amount, amount, now)
			assert.NoError(t, err)
			if updated != nil {
				wins <- updated.Version
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var versions []int64
	for v := range wins {
		versions = append(versions, v)
	}
	assert.Equal(t, []int64{1}, versions)
}

func TestAuctionRepo_Guards(t *testing.T) {
	s := New()
	now := time.Now()
	a := seedAuction(t, s, now)
	repo := s.Auctions()
	ctx := context.Background()

	updated, err := repo.ApplyBid(ctx, a.ID, 0, 2, 100, 100, now)
	assert.NoError(t, err)
	assert.Nil(t, updated, "equal amount must not pass the price guard")

	ended, err := repo.End(ctx, a.ID, now)
	assert.NoError(t, err)
	assert.False(t, ended, "deadline not reached")

	extended, err := repo.ExtendEnd(ctx, a.ID, a.EndTime, a.EndTime.Add(30*time.Second), now)
	require.NoError(t, err)
	require.NotNil(t, extended)

	ended, err = repo.End(ctx, a.ID, a.EndTime.Add(time.Second))
	assert.NoError(t, err)
	assert.False(t, ended, "stale deadline must not end an extended auction")

	ended, err = repo.End(ctx, a.ID, extended.EndTime)
	assert.NoError(t, err)
	assert.True(t, ended)

	cancelled, err := repo.Cancel(ctx, a.ID, now)
	assert.NoError(t, err)
	assert.False(t, cancelled)

	settled, err := repo.MarkSettled(ctx, a.ID, now)
	assert.NoError(t, err)
	assert.True(t, settled)

	settled, err = repo.MarkSettled(ctx, a.ID, now)
	assert.NoError(t, err)
	assert.False(t, settled)
}

func TestAccountRepo_FlushClampsAndResets(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()
	repo := s.Accounts()

	require.NoError(t, repo.Stage(ctx, 1, 50, 0, now))
	_, err := repo.Flush(ctx, 1, now)
	require.NoError(t, err)

	require.NoError(t, repo.Stage(ctx, 1, -80, 10, now))
	flushed, err := repo.Flush(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), flushed.CurrencyBalance)
	assert.Equal(t, int64(30), flushed.CurrencyClamped())
	assert.Equal(t, int64(10), flushed.XPBalance)

	again, err := repo.Flush(ctx, 1, now)
	assert.NoError(t, err)
	assert.Nil(t, again)

	ids, err := repo.ListStaged(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPowerUpRepo_Consume(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()
	expired := now.Add(-time.Second)
	repo := s.PowerUps()

	live := &domain.PowerUp{ID: uuid.New(), OwnerID: 1, Type: domain.PowerUpDiscount, UsesLeft: 1, CreatedAt: now}
	old := &domain.PowerUp{ID: uuid.New(), OwnerID: 1, Type: domain.PowerUpDiscount, UsesLeft: 1, ExpiresAt: &expired, CreatedAt: now}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, old))

	p, err := repo.Consume(ctx, live.ID, 2, now)
	assert.NoError(t, err)
	assert.Nil(t, p, "not owned")

	p, err = repo.Consume(ctx, live.ID, 1, now)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.IsUsed)
	assert.Equal(t, 0, p.UsesLeft)

	p, err = repo.Consume(ctx, live.ID, 1, now)
	assert.NoError(t, err)
	assert.Nil(t, p, "exhausted")

	p, err = repo.Consume(ctx, old.ID, 1, now)
	assert.NoError(t, err)
	assert.Nil(t, p, "expired")
}

func TestBidRepo_AppendRejectsDuplicateVersion(t *testing.T) {
	s := New()
	ctx := context.Background()
	auctionID := uuid.New()
	bid := &domain.Bid{ID: uuid.New(), AuctionID: auctionID, BidderID: 1, Amount: 120, ResultingVersion: 1}

	require.NoError(t, s.Bids().Append(ctx, bid))
	dup := *bid
	dup.ID = uuid.New()
	assert.ErrorIs(t, s.Bids().Append(ctx, &dup), domain.ErrStaleBid)

	bids, err := s.Bids().ListByAuction(ctx, auctionID)
	assert.NoError(t, err)
	assert.Len(t, bids, 1)
}
