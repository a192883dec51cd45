package memrepo

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

type AccountRepo struct{ s *Store }

func (r *AccountRepo) Get(ctx context.Context, userID int) (*domain.Account, error) {
	var out *domain.Account
	r.s.with(ctx, func(st *state) {
		if a, ok := st.accounts[userID]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r *AccountRepo) Stage(ctx context.Context, userID int, currencyDelta, xpDelta int64, now time.Time) error {
	r.s.with(ctx, func(st *state) {
		a := st.accounts[userID]
		a.UserID = userID
		a.StagedCurrencyDelta += currencyDelta
		a.StagedXPDelta += xpDelta
		a.UpdatedAt = now
		st.accounts[userID] = a
	})
	return nil
}

func (r *AccountRepo) ListStaged(ctx context.Context, limit int) ([]int, error) {
	var staged []domain.Account
	r.s.with(ctx, func(st *state) {
		for _, a := range st.accounts {
			if a.HasStaged() {
				staged = append(staged, a)
			}
		}
	})
	sort.Slice(staged, func(i, j int) bool {
		if staged[i].UpdatedAt.Equal(staged[j].UpdatedAt) {
			return staged[i].UserID < staged[j].UserID
		}
		return staged[i].UpdatedAt.Before(staged[j].UpdatedAt)
	})
	var ids []int
	for _, a := range staged {
		if len(ids) == limit {
			break
		}
		ids = append(ids, a.UserID)
	}
	return ids, nil
}

func (r *AccountRepo) Flush(ctx context.Context, userID int, now time.Time) (*domain.FlushedAccount, error) {
	var out *domain.FlushedAccount
	r.s.with(ctx, func(st *state) {
		a, ok := st.accounts[userID]
		if !ok || !a.HasStaged() {
			return
		}
		f := domain.FlushedAccount{
			UserID:          userID,
			PrevCurrency:    a.CurrencyBalance,
			PrevXP:          a.XPBalance,
			StagedCurrency:  a.StagedCurrencyDelta,
			StagedXP:        a.StagedXPDelta,
			CurrencyBalance: max(0, a.CurrencyBalance+a.StagedCurrencyDelta),
			XPBalance:       max(0, a.XPBalance+a.StagedXPDelta),
		}
		a.CurrencyBalance, a.XPBalance = f.CurrencyBalance, f.XPBalance
		a.StagedCurrencyDelta, a.StagedXPDelta = 0, 0
		a.UpdatedAt = now
		st.accounts[userID] = a
		out = &f
	})
	return out, nil
}

type ItemRepo struct{ s *Store }

func (r *ItemRepo) Create(ctx context.Context, item *domain.AuctionItem) error {
	if item.StartingPrice < 0 || item.XPReward < 0 {
		return domain.ErrInvalidAuction
	}
	r.s.with(ctx, func(st *state) {
		st.items[item.ID] = *item
	})
	return nil
}

func (r *ItemRepo) Get(ctx context.Context, id uuid.UUID) (*domain.AuctionItem, error) {
	var out *domain.AuctionItem
	r.s.with(ctx, func(st *state) {
		if item, ok := st.items[id]; ok {
			out = &item
		}
	})
	return out, nil
}

type AuctionRepo struct{ s *Store }

func (r *AuctionRepo) Create(ctx context.Context, a *domain.Auction) (*domain.Auction, error) {
	if !a.EndTime.After(a.StartTime) || a.StartingPrice < 0 {
		return nil, domain.ErrInvalidAuction
	}
	var err error
	var out *domain.Auction
	r.s.with(ctx, func(st *state) {
		if _, ok := st.items[a.ItemID]; !ok {
			err = domain.ErrItemNotFound
			return
		}
		created := *a
		created.CurrentPrice = a.StartingPrice
		created.ChargeAmount = a.StartingPrice
		created.CurrentHighestBidder = nil
		created.Version = 0
		created.UpdatedAt = a.CreatedAt
		st.auctions[a.ID] = created
		out = &created
	})
	return out, err
}

func (r *AuctionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	var out *domain.Auction
	r.s.with(ctx, func(st *state) {
		if a, ok := st.auctions[id]; ok {
			out = &a
		}
	})
	return out, nil
}

// GetForUpdate is Get: a transaction already holds the store lock.
func (r *AuctionRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	return r.Get(ctx, id)
}

// update applies fn to the auction when guard holds and returns the new row.
func (r *AuctionRepo) update(ctx context.Context, id uuid.UUID, guard func(domain.Auction) bool, fn func(*domain.Auction)) *domain.Auction {
	var out *domain.Auction
	r.s.with(ctx, func(st *state) {
		a, ok := st.auctions[id]
		if !ok || !guard(a) {
			return
		}
		fn(&a)
		st.auctions[id] = a
		out = &a
	})
	return out
}

func (r *AuctionRepo) ApplyBid(ctx context.Context, id uuid.UUID, expectedVersion int64, bidderID int, amount, charge int64, now time.Time) (*domain.Auction, error) {
	guard := func(a domain.Auction) bool {
		return a.Version == expectedVersion && a.AcceptsBidsAt(now) && a.CurrentPrice < amount
	}
	return r.update(ctx, id, guard, func(a *domain.Auction) {
		bidder := bidderID
		a.CurrentPrice = amount
		a.ChargeAmount = charge
		a.CurrentHighestBidder = &bidder
		a.Version++
		a.UpdatedAt = now
	}), nil
}

func (r *AuctionRepo) BumpVersion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Auction, error) {
	guard := func(a domain.Auction) bool { return a.Status == domain.StatusActive }
	return r.update(ctx, id, guard, func(a *domain.Auction) {
		a.Version++
		a.UpdatedAt = now
	}), nil
}

func (r *AuctionRepo) ExtendEnd(ctx context.Context, id uuid.UUID, oldEnd, newEnd, now time.Time) (*domain.Auction, error) {
	guard := func(a domain.Auction) bool { return a.EndTime.Equal(oldEnd) && a.AcceptsBidsAt(now) }
	return r.update(ctx, id, guard, func(a *domain.Auction) {
		a.EndTime = newEnd
		a.Version++
		a.UpdatedAt = now
	}), nil
}

func (r *AuctionRepo) transition(ctx context.Context, id uuid.UUID, guard func(domain.Auction) bool, next domain.AuctionStatus, now time.Time) bool {
	return r.update(ctx, id, guard, func(a *domain.Auction) {
		a.Status = next
		a.UpdatedAt = now
		if next == domain.StatusSettled {
			settledAt := now
			a.SettledAt = &settledAt
		}
	}) != nil
}

func (r *AuctionRepo) Activate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	guard := func(a domain.Auction) bool { return a.Status == domain.StatusScheduled && !a.StartTime.After(now) }
	return r.transition(ctx, id, guard, domain.StatusActive, now), nil
}

func (r *AuctionRepo) End(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	guard := func(a domain.Auction) bool { return a.Status == domain.StatusActive && !a.EndTime.After(now) }
	return r.transition(ctx, id, guard, domain.StatusEnded, now), nil
}

func (r *AuctionRepo) MarkSettled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	guard := func(a domain.Auction) bool { return a.Status == domain.StatusEnded }
	return r.transition(ctx, id, guard, domain.StatusSettled, now), nil
}

func (r *AuctionRepo) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	guard := func(a domain.Auction) bool { return a.Status.CanTransitionTo(domain.StatusCancelled) }
	return r.transition(ctx, id, guard, domain.StatusCancelled, now), nil
}

func (r *AuctionRepo) FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Auction, error) {
	var due []domain.Auction
	r.s.with(ctx, func(st *state) {
		for _, a := range st.auctions {
			switch {
			case a.Status == domain.StatusScheduled && !a.StartTime.After(now),
				a.Status == domain.StatusActive && !a.EndTime.After(now),
				a.Status == domain.StatusEnded:
				due = append(due, a)
			}
		}
	})
	sort.Slice(due, func(i, j int) bool { return due[i].UpdatedAt.Before(due[j].UpdatedAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

type BidRepo struct{ s *Store }

func (r *BidRepo) Append(ctx context.Context, bid *domain.Bid) error {
	var err error
	r.s.with(ctx, func(st *state) {
		for _, b := range st.bids {
			if b.AuctionID == bid.AuctionID && b.ResultingVersion == bid.ResultingVersion {
				err = &domain.StaleBidError{CurrentPrice: bid.Amount, Version: bid.ResultingVersion}
				return
			}
		}
		st.bids = append(st.bids, *bid)
	})
	return err
}

func (r *BidRepo) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error) {
	var bids []domain.Bid
	r.s.with(ctx, func(st *state) {
		for _, b := range st.bids {
			if b.AuctionID == auctionID {
				bids = append(bids, b)
			}
		}
	})
	sort.Slice(bids, func(i, j int) bool { return bids[i].ResultingVersion < bids[j].ResultingVersion })
	return bids, nil
}

type PowerUpRepo struct{ s *Store }

func (r *PowerUpRepo) Create(ctx context.Context, p *domain.PowerUp) error {
	if p.UsesLeft < 0 || !p.Type.Valid() {
		return domain.ErrInvalidPowerUp
	}
	r.s.with(ctx, func(st *state) {
		st.powerUps[p.ID] = *p
	})
	return nil
}

func (r *PowerUpRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PowerUp, error) {
	var out *domain.PowerUp
	r.s.with(ctx, func(st *state) {
		if p, ok := st.powerUps[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *PowerUpRepo) Consume(ctx context.Context, id uuid.UUID, ownerID int, now time.Time) (*domain.PowerUp, error) {
	var out *domain.PowerUp
	r.s.with(ctx, func(st *state) {
		p, ok := st.powerUps[id]
		if !ok || p.OwnerID != ownerID || p.Inert() || p.ExpiredAt(now) {
			return
		}
		p.UsesLeft--
		p.IsUsed = p.UsesLeft == 0
		st.powerUps[id] = p
		out = &p
	})
	return out, nil
}

func (r *PowerUpRepo) ListByOwner(ctx context.Context, ownerID int) ([]domain.PowerUp, error) {
	var out []domain.PowerUp
	r.s.with(ctx, func(st *state) {
		for _, p := range st.powerUps {
			if p.OwnerID == ownerID {
				out = append(out, p)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type EffectRepo struct{ s *Store }

func (r *EffectRepo) Create(ctx context.Context, e *domain.AuctionEffect) error {
	var err error
	r.s.with(ctx, func(st *state) {
		if _, ok := st.auctions[e.AuctionID]; !ok {
			err = domain.ErrAuctionNotFound
			return
		}
		st.effects = append(st.effects, *e)
	})
	return err
}

func (r *EffectRepo) ListActive(ctx context.Context, auctionID uuid.UUID, now time.Time) ([]domain.AuctionEffect, error) {
	var out []domain.AuctionEffect
	r.s.with(ctx, func(st *state) {
		for _, e := range st.effects {
			if e.AuctionID == auctionID && e.ExpiresAt.After(now) {
				out = append(out, e)
			}
		}
	})
	return out, nil
}

type LedgerRepo struct{ s *Store }

func (r *LedgerRepo) Append(ctx context.Context, e *domain.LedgerEntry) error {
	r.s.with(ctx, func(st *state) {
		st.ledger = append(st.ledger, *e)
	})
	return nil
}

func (r *LedgerRepo) ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	r.s.with(ctx, func(st *state) {
		for _, e := range slices.Backward(st.ledger) {
			if len(out) == limit {
				return
			}
			if e.UserID == userID {
				out = append(out, e)
			}
		}
	})
	return out, nil
}
