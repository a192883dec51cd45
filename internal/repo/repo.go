package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	accountrepo "github.com/GlebRadaev/auctionhouse/internal/repo/account-repo"
	auctionrepo "github.com/GlebRadaev/auctionhouse/internal/repo/auction-repo"
	bidrepo "github.com/GlebRadaev/auctionhouse/internal/repo/bid-repo"
	effectrepo "github.com/GlebRadaev/auctionhouse/internal/repo/effect-repo"
	itemrepo "github.com/GlebRadaev/auctionhouse/internal/repo/item-repo"
	ledgerrepo "github.com/GlebRadaev/auctionhouse/internal/repo/ledger-repo"
	memrepo "github.com/GlebRadaev/auctionhouse/internal/repo/mem-repo"
	poweruprepo "github.com/GlebRadaev/auctionhouse/internal/repo/powerup-repo"
)

type AccountRepo interface {
	Get(ctx context.Context, userID int) (*domain.Account, error)
	Stage(ctx context.Context, userID int, currencyDelta, xpDelta int64, now time.Time) error
	ListStaged(ctx context.Context, limit int) ([]int, error)
	Flush(ctx context.Context, userID int, now time.Time) (*domain.FlushedAccount, error)
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.AuctionItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.AuctionItem, error)
}

type AuctionRepo interface {
	Create(ctx context.Context, a *domain.Auction) (*domain.Auction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	ApplyBid(ctx context.Context, id uuid.UUID, expectedVersion int64, bidderID int, amount, charge int64, now time.Time) (*domain.Auction, error)
	BumpVersion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Auction, error)
	ExtendEnd(ctx context.Context, id uuid.UUID, oldEnd, newEnd, now time.Time) (*domain.Auction, error)
	Activate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	End(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	MarkSettled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Auction, error)
}

type BidRepo interface {
	Append(ctx context.Context, bid *domain.Bid) error
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error)
}

type PowerUpRepo interface {
	Create(ctx context.Context, p *domain.PowerUp) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PowerUp, error)
	Consume(ctx context.Context, id uuid.UUID, ownerID int, now time.Time) (*domain.PowerUp, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.PowerUp, error)
}

type EffectRepo interface {
	Create(ctx context.Context, e *domain.AuctionEffect) error
	ListActive(ctx context.Context, auctionID uuid.UUID, now time.Time) ([]domain.AuctionEffect, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
	ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
}

type Repositories struct {
	TXManager pg.TXManager
	Accounts  AccountRepo
	Items     ItemRepo
	Auctions  AuctionRepo
	Bids      BidRepo
	PowerUps  PowerUpRepo
	Effects   EffectRepo
	Ledger    LedgerRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TXManager: txManager,
		Accounts:  accountrepo.New(conn),
		Items:     itemrepo.New(conn),
		Auctions:  auctionrepo.New(conn),
		Bids:      bidrepo.New(conn),
		PowerUps:  poweruprepo.New(conn),
		Effects:   effectrepo.New(conn),
		Ledger:    ledgerrepo.New(conn),
	}
}

// NewMemory backs every repository with one in-process store.
func NewMemory() *Repositories {
	store := memrepo.New()
	return &Repositories{
		TXManager: store,
		Accounts:  store.Accounts(),
		Items:     store.Items(),
		Auctions:  store.Auctions(),
		Bids:      store.Bids(),
		PowerUps:  store.PowerUps(),
		Effects:   store.Effects(),
		Ledger:    store.Ledger(),
	}
}
