package powerupservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

//go:generate mockgen -source=powerupservice.go -destination=mock_powerupservice.go -package=powerupservice

type PowerUpRepo interface {
	Create(ctx context.Context, p *domain.PowerUp) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PowerUp, error)
	Consume(ctx context.Context, id uuid.UUID, ownerID int, now time.Time) (*domain.PowerUp, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.PowerUp, error)
}

type AuctionRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Auction, error)
	BumpVersion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Auction, error)
	ExtendEnd(ctx context.Context, id uuid.UUID, oldEnd, newEnd, now time.Time) (*domain.Auction, error)
}

type EffectRepo interface {
	Create(ctx context.Context, e *domain.AuctionEffect) error
}

type Service struct {
	txManager pg.TXManager
	powerUps  PowerUpRepo
	auctions  AuctionRepo
	effects   EffectRepo
	resolver  *Resolver
	clock     func() time.Time
}

func New(txManager pg.TXManager, powerUps PowerUpRepo, auctions AuctionRepo, effects EffectRepo, rules Rules) *Service {
	return &Service{
		txManager: txManager,
		powerUps:  powerUps,
		auctions:  auctions,
		effects:   effects,
		resolver:  NewResolver(rules),
		clock:     time.Now,
	}
}

// Activate spends one use of a power-up against an auction outside of a bid.
// The auction row stays locked from resolution until the side effect is written.
func (s *Service) Activate(ctx context.Context, powerUpID uuid.UUID, actorID int, auctionID uuid.UUID) (domain.Effect, error) {
	var effect domain.Effect
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.clock()

		p, err := s.powerUps.Get(ctx, powerUpID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrPowerUpNotFound
		}
		a, err := s.auctions.GetForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}

		effect, err = s.resolver.Resolve(p, ActionContext{ActorID: actorID, Auction: a, Now: now})
		if err != nil {
			return err
		}
		if err := s.consume(ctx, p, actorID, a, now); err != nil {
			return err
		}

		applied := domain.AppliedEffect{PowerUpID: p.ID, OwnerID: actorID, Effect: effect}
		if _, err := s.apply(ctx, applied, a, now); err != nil {
			return err
		}
		if blocksBids(effect) {
			// bids prepared against the old version must re-read and observe the effect
			updated, err := s.auctions.BumpVersion(ctx, a.ID, now)
			if err != nil {
				return err
			}
			if updated == nil {
				return &domain.AuctionNotActiveError{Status: a.Status}
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Info("power-up activation rejected",
			zap.String("power_up_id", powerUpID.String()),
			zap.Int("actor_id", actorID),
			zap.Error(err))
		return nil, err
	}
	zap.L().Info("power-up activated",
		zap.String("power_up_id", powerUpID.String()),
		zap.String("auction_id", auctionID.String()),
		zap.String("effect", string(effect.Type())))
	return effect, nil
}

// ConsumeForBid resolves and consumes the power-ups attached to a bid. It must
// run inside the bid transaction so a rejected bid gives the uses back.
func (s *Service) ConsumeForBid(ctx context.Context, actorID int, ids []uuid.UUID, a *domain.Auction, amount int64, now time.Time) ([]domain.AppliedEffect, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seenIDs := make(map[uuid.UUID]struct{}, len(ids))
	seenTypes := make(map[domain.PowerUpType]struct{}, len(ids))
	applied := make([]domain.AppliedEffect, 0, len(ids))

	for _, id := range ids {
		if _, ok := seenIDs[id]; ok {
			return nil, domain.ErrDuplicatePowerUp
		}
		seenIDs[id] = struct{}{}

		p, err := s.powerUps.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrPowerUpNotFound
		}
		if _, ok := seenTypes[p.Type]; ok {
			return nil, domain.ErrDuplicatePowerUp
		}
		seenTypes[p.Type] = struct{}{}

		effect, err := s.resolver.Resolve(p, ActionContext{ActorID: actorID, Auction: a, Now: now, BidAmount: &amount})
		if err != nil {
			return nil, err
		}
		if err := s.consume(ctx, p, actorID, a, now); err != nil {
			return nil, err
		}
		applied = append(applied, domain.AppliedEffect{PowerUpID: p.ID, OwnerID: actorID, Effect: effect})
	}
	return applied, nil
}

// ApplyAuctionEffects writes the auction-time side effects of power-ups that
// came with an accepted bid and returns the auction as it ends up.
func (s *Service) ApplyAuctionEffects(ctx context.Context, applied []domain.AppliedEffect, a *domain.Auction, now time.Time) (*domain.Auction, error) {
	current := a
	for _, ae := range applied {
		updated, err := s.apply(ctx, ae, current, now)
		if err != nil {
			return nil, err
		}
		current = updated
	}
	return current, nil
}

func (s *Service) consume(ctx context.Context, p *domain.PowerUp, actorID int, a *domain.Auction, now time.Time) error {
	consumed, err := s.powerUps.Consume(ctx, p.ID, actorID, now)
	if err != nil {
		return err
	}
	if consumed != nil {
		return nil
	}
	// lost a race with another use of the same instance
	fresh, err := s.powerUps.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	if fresh == nil {
		return domain.ErrPowerUpNotFound
	}
	if _, err := s.resolver.Resolve(fresh, ActionContext{ActorID: actorID, Auction: a, Now: now}); errors.Is(err, domain.ErrPowerUpNotOwned) || errors.Is(err, domain.ErrPowerUpExpired) {
		return err
	}
	return domain.ErrPowerUpExhausted
}

func (s *Service) apply(ctx context.Context, ae domain.AppliedEffect, a *domain.Auction, now time.Time) (*domain.Auction, error) {
	switch e := ae.Effect.(type) {
	case domain.PriceFreeze:
		return a, s.createEffect(ctx, ae, a.ID, e.Until, now)
	case domain.BidShield:
		return a, s.createEffect(ctx, ae, a.ID, e.Until, now)
	case domain.SniperExtend:
		updated, err := s.auctions.ExtendEnd(ctx, a.ID, a.EndTime, e.NewEndTime, now)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, &domain.AuctionNotActiveError{Status: a.Status}
		}
		zap.L().Info("auction extended",
			zap.String("auction_id", a.ID.String()),
			zap.Time("end_time", updated.EndTime))
		return updated, nil
	case domain.Discount:
		return a, nil
	}
	return nil, domain.ErrInvalidPowerUp
}

func (s *Service) createEffect(ctx context.Context, ae domain.AppliedEffect, auctionID uuid.UUID, until, now time.Time) error {
	return s.effects.Create(ctx, &domain.AuctionEffect{
		ID:          uuid.New(),
		AuctionID:   auctionID,
		PowerUpID:   ae.PowerUpID,
		OwnerID:     ae.OwnerID,
		Type:        ae.Effect.Type(),
		ActivatedAt: now,
		ExpiresAt:   until,
	})
}

func blocksBids(e domain.Effect) bool {
	t := e.Type()
	return t == domain.PowerUpPriceFreeze || t == domain.PowerUpBidShield
}

// Grant hands a new power-up instance to a user.
func (s *Service) Grant(ctx context.Context, ownerID int, t domain.PowerUpType, uses int, expiresAt *time.Time) (*domain.PowerUp, error) {
	if ownerID <= 0 || uses <= 0 || !t.Valid() {
		return nil, domain.ErrInvalidPowerUp
	}
	p := &domain.PowerUp{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      t,
		UsesLeft:  uses,
		ExpiresAt: expiresAt,
		CreatedAt: s.clock(),
	}
	if err := s.powerUps.Create(ctx, p); err != nil {
		zap.L().Error("failed to grant power-up", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *Service) ListOwned(ctx context.Context, ownerID int) ([]domain.PowerUp, error) {
	powerUps, err := s.powerUps.ListByOwner(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to list power-ups", zap.Error(err))
		return nil, err
	}
	return powerUps, nil
}
