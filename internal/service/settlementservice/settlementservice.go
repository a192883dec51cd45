package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type AuctionRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	MarkSettled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type AccountRepo interface {
	Stage(ctx context.Context, userID int, currencyDelta, xpDelta int64, now time.Time) error
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
}

type SettlementResult struct {
	AuctionID      uuid.UUID
	WinnerID       *int
	Charged        int64
	XP             int64
	AlreadySettled bool
}

type Service struct {
	txManager pg.TXManager
	auctions  AuctionRepo
	accounts  AccountRepo
	ledger    LedgerRepo
	clock     func() time.Time
}

func New(txManager pg.TXManager, auctions AuctionRepo, accounts AccountRepo, ledger LedgerRepo) *Service {
	return &Service{
		txManager: txManager,
		auctions:  auctions,
		accounts:  accounts,
		ledger:    ledger,
		clock:     time.Now,
	}
}

var errLostRace = errors.New("auction settled concurrently")

// Settle stages the winner's debit and XP reward and the seller's credit for
// an ended auction, then marks it settled. Staging and the status change
// commit together, so an auction is settled at most once.
func (s *Service) Settle(ctx context.Context, auctionID uuid.UUID) (*SettlementResult, error) {
	a, err := s.auctions.Get(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSettlementDeferred, err)
	}
	if a == nil {
		return nil, domain.ErrAuctionNotFound
	}
	result := &SettlementResult{AuctionID: a.ID, WinnerID: a.CurrentHighestBidder}
	switch a.Status {
	case domain.StatusSettled:
		result.AlreadySettled = true
		return result, nil
	case domain.StatusEnded:
	default:
		return nil, domain.ErrAuctionNotEnded
	}

	now := s.clock()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if a.CurrentHighestBidder != nil {
			if err := s.stage(ctx, a, now); err != nil {
				return err
			}
		}
		ok, err := s.auctions.MarkSettled(ctx, a.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errLostRace
		}
		return nil
	})
	if errors.Is(err, errLostRace) {
		result.AlreadySettled = true
		return result, nil
	}
	if err != nil {
		zap.L().Error("failed to settle auction", zap.String("auction_id", a.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrSettlementDeferred, err)
	}

	if a.CurrentHighestBidder != nil {
		result.Charged = a.ChargeAmount
		result.XP = a.XPReward
	}
	zap.L().Info("auction settled",
		zap.String("auction_id", a.ID.String()),
		zap.Int64("charged", result.Charged),
		zap.Int64("xp", result.XP))
	return result, nil
}

func (s *Service) stage(ctx context.Context, a *domain.Auction, now time.Time) error {
	winner := *a.CurrentHighestBidder
	if err := s.accounts.Stage(ctx, winner, -a.ChargeAmount, a.XPReward, now); err != nil {
		return err
	}
	if err := s.ledger.Append(ctx, &domain.LedgerEntry{
		ID:            uuid.New(),
		UserID:        winner,
		AuctionID:     a.ID,
		CurrencyDelta: -a.ChargeAmount,
		XPDelta:       a.XPReward,
		Reason:        domain.LedgerReasonAuctionWon,
		CreatedAt:     now,
	}); err != nil {
		return err
	}

	if a.SellerID == nil || a.ChargeAmount == 0 {
		return nil
	}
	seller := *a.SellerID
	if err := s.accounts.Stage(ctx, seller, a.ChargeAmount, 0, now); err != nil {
		return err
	}
	return s.ledger.Append(ctx, &domain.LedgerEntry{
		ID:            uuid.New(),
		UserID:        seller,
		AuctionID:     a.ID,
		CurrencyDelta: a.ChargeAmount,
		Reason:        domain.LedgerReasonAuctionSold,
		CreatedAt:     now,
	})
}
