package auctionservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

//go:generate mockgen -source=auctionservice.go -destination=mock_auctionservice.go -package=auctionservice

type AuctionRepo interface {
	Create(ctx context.Context, a *domain.Auction) (*domain.Auction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	ApplyBid(ctx context.Context, id uuid.UUID, expectedVersion int64, bidderID int, amount, charge int64, now time.Time) (*domain.Auction, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.AuctionItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.AuctionItem, error)
}

type BidRepo interface {
	Append(ctx context.Context, bid *domain.Bid) error
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error)
}

type EffectRepo interface {
	ListActive(ctx context.Context, auctionID uuid.UUID, now time.Time) ([]domain.AuctionEffect, error)
}

type PowerUps interface {
	ConsumeForBid(ctx context.Context, actorID int, ids []uuid.UUID, a *domain.Auction, amount int64, now time.Time) ([]domain.AppliedEffect, error)
	ApplyAuctionEffects(ctx context.Context, applied []domain.AppliedEffect, a *domain.Auction, now time.Time) (*domain.Auction, error)
}

type PlaceBidRequest struct {
	AuctionID       uuid.UUID
	BidderID        int
	Amount          int64
	ExpectedVersion int64
	PowerUpIDs      []uuid.UUID
}

type BidResult struct {
	BidID   uuid.UUID
	Price   int64
	Charged int64
	Version int64
	EndTime time.Time
	Effects []domain.Effect
}

type AuctionState struct {
	ID                   uuid.UUID
	Status               domain.AuctionStatus
	CurrentPrice         int64
	CurrentHighestBidder *int
	StartTime            time.Time
	EndTime              time.Time
	Version              int64
}

type CreateItemRequest struct {
	Name          string
	Description   string
	StartingPrice int64
	XPReward      int64
	SellerID      *int
}

type CreateAuctionRequest struct {
	ItemID        uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	StartingPrice int64
}

type Service struct {
	txManager pg.TXManager
	auctions  AuctionRepo
	items     ItemRepo
	bids      BidRepo
	effects   EffectRepo
	powerUps  PowerUps
	clock     func() time.Time
}

func New(txManager pg.TXManager, auctions AuctionRepo, items ItemRepo, bids BidRepo, effects EffectRepo, powerUps PowerUps) *Service {
	return &Service{
		txManager: txManager,
		auctions:  auctions,
		items:     items,
		bids:      bids,
		effects:   effects,
		powerUps:  powerUps,
		clock:     time.Now,
	}
}

// PlaceBid accepts a bid only if it is made against the auction's current
// version. Losing a race is reported as a StaleBidError carrying the fresh
// price and version; retrying is up to the caller.
func (s *Service) PlaceBid(ctx context.Context, req PlaceBidRequest) (*BidResult, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidBid
	}
	seen := make(map[uuid.UUID]struct{}, len(req.PowerUpIDs))
	for _, id := range req.PowerUpIDs {
		if _, ok := seen[id]; ok {
			return nil, domain.ErrDuplicatePowerUp
		}
		seen[id] = struct{}{}
	}

	now := s.clock()
	a, err := s.auctions.Get(ctx, req.AuctionID)
	if err != nil {
		return nil, err
	}
	if err := precheck(a, req, now); err != nil {
		return nil, err
	}

	effects, err := s.effects.ListActive(ctx, a.ID, now)
	if err != nil {
		return nil, err
	}
	for _, e := range effects {
		if e.Blocks(req.BidderID, now) {
			return nil, &domain.BidBlockedError{Effect: e.Type, OwnerID: e.OwnerID, Until: e.ExpiresAt}
		}
	}

	var result *BidResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		applied, err := s.powerUps.ConsumeForBid(ctx, req.BidderID, req.PowerUpIDs, a, req.Amount, now)
		if err != nil {
			return err
		}
		charge := req.Amount
		for _, ae := range applied {
			if d, ok := ae.Effect.(domain.Discount); ok {
				charge = d.ChargedAmount
			}
		}

		updated, err := s.auctions.ApplyBid(ctx, a.ID, req.ExpectedVersion, req.BidderID, req.Amount, charge, now)
		if err != nil {
			return err
		}
		if updated == nil {
			return s.rejection(ctx, req, now)
		}
		bidVersion := updated.Version

		final, err := s.powerUps.ApplyAuctionEffects(ctx, applied, updated, now)
		if err != nil {
			return err
		}

		bid := &domain.Bid{
			ID:               uuid.New(),
			AuctionID:        a.ID,
			BidderID:         req.BidderID,
			Amount:           req.Amount,
			ChargedAmount:    charge,
			AcceptedAt:       now,
			ResultingVersion: bidVersion,
		}
		if err := s.bids.Append(ctx, bid); err != nil {
			return err
		}

		result = &BidResult{
			BidID:   bid.ID,
			Price:   final.CurrentPrice,
			Charged: charge,
			Version: final.Version,
			EndTime: final.EndTime,
		}
		for _, ae := range applied {
			result.Effects = append(result.Effects, ae.Effect)
		}
		return nil
	})
	if err != nil {
		zap.L().Debug("bid rejected",
			zap.String("auction_id", req.AuctionID.String()),
			zap.Int("bidder_id", req.BidderID),
			zap.Int64("amount", req.Amount),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("bid accepted",
		zap.String("auction_id", req.AuctionID.String()),
		zap.Int("bidder_id", req.BidderID),
		zap.Int64("amount", req.Amount),
		zap.Int64("version", result.Version))
	return result, nil
}

func precheck(a *domain.Auction, req PlaceBidRequest, now time.Time) error {
	switch {
	case a == nil:
		return domain.ErrAuctionNotFound
	case !a.AcceptsBidsAt(now):
		return &domain.AuctionNotActiveError{Status: a.Status}
	case req.ExpectedVersion != a.Version:
		return &domain.StaleBidError{CurrentPrice: a.CurrentPrice, Version: a.Version}
	case req.Amount <= a.CurrentPrice:
		return domain.ErrBidTooLow
	}
	return nil
}

// rejection explains why the conditional update matched no row.
func (s *Service) rejection(ctx context.Context, req PlaceBidRequest, now time.Time) error {
	fresh, err := s.auctions.Get(ctx, req.AuctionID)
	if err != nil {
		return err
	}
	if err := precheck(fresh, req, now); err != nil {
		return err
	}
	return &domain.StaleBidError{CurrentPrice: fresh.CurrentPrice, Version: fresh.Version}
}

func (s *Service) GetAuctionState(ctx context.Context, id uuid.UUID) (*AuctionState, error) {
	a, err := s.auctions.Get(ctx, id)
	if err != nil {
		zap.L().Error("failed to get auction", zap.Error(err))
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAuctionNotFound
	}
	return &AuctionState{
		ID:                   a.ID,
		Status:               a.Status,
		CurrentPrice:         a.CurrentPrice,
		CurrentHighestBidder: a.CurrentHighestBidder,
		StartTime:            a.StartTime,
		EndTime:              a.EndTime,
		Version:              a.Version,
	}, nil
}

func (s *Service) ListBids(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error) {
	a, err := s.auctions.Get(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAuctionNotFound
	}
	bids, err := s.bids.ListByAuction(ctx, auctionID)
	if err != nil {
		zap.L().Error("failed to list bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*domain.AuctionItem, error) {
	if strings.TrimSpace(req.Name) == "" || req.StartingPrice < 0 || req.XPReward < 0 {
		return nil, domain.ErrInvalidAuction
	}
	item := &domain.AuctionItem{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		XPReward:      req.XPReward,
		SellerID:      req.SellerID,
		CreatedAt:     s.clock(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// CreateAuction schedules an auction for an item. A zero starting price means
// the item's own starting price.
func (s *Service) CreateAuction(ctx context.Context, req CreateAuctionRequest) (*domain.Auction, error) {
	if !req.EndTime.After(req.StartTime) || req.StartingPrice < 0 {
		return nil, domain.ErrInvalidAuction
	}
	item, err := s.items.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	price := req.StartingPrice
	if price == 0 {
		price = item.StartingPrice
	}
	if price < item.StartingPrice {
		return nil, domain.ErrInvalidAuction
	}

	a, err := s.auctions.Create(ctx, &domain.Auction{
		ID:            uuid.New(),
		ItemID:        item.ID,
		Status:        domain.StatusScheduled,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StartingPrice: price,
		XPReward:      item.XPReward,
		SellerID:      item.SellerID,
		CreatedAt:     s.clock(),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("auction scheduled",
		zap.String("auction_id", a.ID.String()),
		zap.Time("start_time", a.StartTime),
		zap.Time("end_time", a.EndTime))
	return a, nil
}

func (s *Service) CancelAuction(ctx context.Context, id uuid.UUID) error {
	ok, err := s.auctions.Cancel(ctx, id, s.clock())
	if err != nil {
		return err
	}
	if ok {
		zap.L().Info("auction cancelled", zap.String("auction_id", id.String()))
		return nil
	}
	a, err := s.auctions.Get(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrAuctionNotFound
	}
	return fmt.Errorf("%w: auction is %s", domain.ErrInvalidTransition, a.Status)
}
