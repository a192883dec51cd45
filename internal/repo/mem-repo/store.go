// Package memrepo keeps the whole ledger in process memory. Every repository
// call and every transaction runs under a single store lock, so conditional
// writes observe the same guards as the Postgres statements.
package memrepo

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

type txKey struct{}

type state struct {
	accounts map[int]domain.Account
	items    map[uuid.UUID]domain.AuctionItem
	auctions map[uuid.UUID]domain.Auction
	powerUps map[uuid.UUID]domain.PowerUp
	bids     []domain.Bid
	effects  []domain.AuctionEffect
	ledger   []domain.LedgerEntry
}

func (st *state) clone() state {
	return state{
		accounts: maps.Clone(st.accounts),
		items:    maps.Clone(st.items),
		auctions: maps.Clone(st.auctions),
		powerUps: maps.Clone(st.powerUps),
		bids:     slices.Clone(st.bids),
		effects:  slices.Clone(st.effects),
		ledger:   slices.Clone(st.ledger),
	}
}

type Store struct {
	mu sync.Mutex
	st state
}

func New() *Store {
	return &Store{
		st: state{
			accounts: make(map[int]domain.Account),
			items:    make(map[uuid.UUID]domain.AuctionItem),
			auctions: make(map[uuid.UUID]domain.Auction),
			powerUps: make(map[uuid.UUID]domain.PowerUp),
		},
	}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// Begin implements pg.TXManager. The store stays locked for the whole of fn
// and its state is restored if fn fails or panics.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

// with runs fn under the store lock unless ctx already belongs to a transaction on s.
func (s *Store) with(ctx context.Context, fn func(st *state)) {
	if s.inTx(ctx) {
		fn(&s.st)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.st)
}

func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s: s} }
func (s *Store) Items() *ItemRepo       { return &ItemRepo{s: s} }
func (s *Store) Auctions() *AuctionRepo { return &AuctionRepo{s: s} }
func (s *Store) Bids() *BidRepo         { return &BidRepo{s: s} }
func (s *Store) PowerUps() *PowerUpRepo { return &PowerUpRepo{s: s} }
func (s *Store) Effects() *EffectRepo   { return &EffectRepo{s: s} }
func (s *Store) Ledger() *LedgerRepo    { return &LedgerRepo{s: s} }
